package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvDefault(t *testing.T) {
	t.Setenv("ZENITH_TEST_STR", "set")

	assert.Equal(t, "set", EnvDefault("ZENITH_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", EnvDefault("ZENITH_TEST_MISSING", "fallback"))

	t.Setenv("ZENITH_TEST_STR", "")
	assert.Equal(t, "fallback", EnvDefault("ZENITH_TEST_STR", "fallback"))
}

func TestEnvIntDefault(t *testing.T) {
	t.Setenv("ZENITH_TEST_INT", "42")
	assert.Equal(t, 42, EnvIntDefault("ZENITH_TEST_INT", 7))

	assert.Equal(t, 7, EnvIntDefault("ZENITH_TEST_INT_MISSING", 7))

	t.Setenv("ZENITH_TEST_INT", "not-a-number")
	assert.Equal(t, 7, EnvIntDefault("ZENITH_TEST_INT", 7))
}

func TestCSV(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "single", in: "localhost:9092", want: []string{"localhost:9092"}},
		{name: "multiple with spaces", in: "a:9092, b:9092 ,c:9092", want: []string{"a:9092", "b:9092", "c:9092"}},
		{name: "stray commas", in: ",a:9092,,", want: []string{"a:9092"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CSV(tt.in))
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ZENITH_API_URL", "")
	t.Setenv("ZENITH_HTTP_TIMEOUT", "")
	t.Setenv("KAFKA_BROKERS", "")

	cfg := Load()
	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, 10, cfg.HTTPTimeoutSeconds)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.NotEmpty(t, cfg.StorePath)
}
