package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/zenithlab/storefront-client/internal/logging"
)

const Topic = "storefront_activity"

// Producer emits best-effort activity events (add-to-cart, order placed).
// Failures are logged and swallowed; the storefront never blocks on
// analytics. With no brokers configured the producer is a no-op.
type Producer struct {
	writer   *kafka.Writer
	clientID string
}

func NewProducer(brokers []string) *Producer {
	p := &Producer{clientID: uuid.NewString()}
	if len(brokers) == 0 {
		return p
	}
	p.writer = &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
	return p
}

// Publish sends one event keyed by the user. It never returns an error.
func (p *Producer) Publish(ctx context.Context, eventType string, fields map[string]any) {
	if p.writer == nil {
		return
	}

	event := map[string]any{
		"type":      eventType,
		"client_id": p.clientID,
		"ts":        time.Now().Unix(),
	}
	for k, v := range fields {
		event[k] = v
	}

	data, err := json.Marshal(event)
	if err != nil {
		logging.FromContext(ctx).Error("event_encode_error", "error", err)
		return
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(p.key(fields)),
		Value: data,
	}
	if err := p.writer.WriteMessages(pubCtx, msg); err != nil {
		logging.FromContext(ctx).Error("event_publish_error", "type", eventType, "error", err)
	}
}

// key partitions by user when the event carries one, otherwise by this
// client instance.
func (p *Producer) key(fields map[string]any) string {
	if v, ok := fields["userID"]; ok {
		return fmt.Sprint(v)
	}
	return p.clientID
}

func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
