package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL string

	StorePath string

	LogLevel string

	HTTPTimeoutSeconds int

	KafkaBrokers []string
}

func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	return Config{
		APIBaseURL:         EnvDefault("ZENITH_API_URL", "http://localhost:8080"),
		StorePath:          EnvDefault("ZENITH_STORE_PATH", defaultStorePath()),
		LogLevel:           EnvDefault("LOG_LEVEL", "info"),
		HTTPTimeoutSeconds: EnvIntDefault("ZENITH_HTTP_TIMEOUT", 10),
		KafkaBrokers:       CSV(os.Getenv("KAFKA_BROKERS")),
	}
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "storefront.db"
	}
	return filepath.Join(home, ".zenith", "storefront.db")
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if os.Getenv(key) != "" {
		return os.Getenv(key)
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
