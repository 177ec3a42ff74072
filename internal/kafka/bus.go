package kafka

import "context"

// Bus publishes typed messages to a topic. The zero-value noop bus is used
// when Kafka is disabled, so callers never branch on configuration.
type Bus interface {
	Publish(ctx context.Context, topic string, msgType string, payload any) error
}
