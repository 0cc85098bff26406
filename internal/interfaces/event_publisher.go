package interfaces

import "context"

// EventPublisher publishes status-change events keyed by order id.
type EventPublisher interface {
	Publish(ctx context.Context, key, value []byte) error
}
