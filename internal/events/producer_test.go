package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProducer_NoBrokersIsNoOp(t *testing.T) {
	t.Parallel()

	p := NewProducer(nil)
	assert.Nil(t, p.writer)

	// must not panic or block
	p.Publish(context.Background(), "add_to_cart", map[string]any{"productID": 1})
	assert.NoError(t, p.Close())
}

func TestProducer_KeyPartitioning(t *testing.T) {
	t.Parallel()

	p := NewProducer(nil)

	assert.Equal(t, "42", p.key(map[string]any{"userID": 42, "productID": 1}))

	// anonymous events partition by client instance, never by a missing field
	assert.Equal(t, p.clientID, p.key(map[string]any{"productID": 1}))
	assert.Equal(t, p.clientID, p.key(nil))
	assert.NotEmpty(t, p.clientID)
}
