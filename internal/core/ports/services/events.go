package services

import "context"

// EventPublisher publishes domain events to an external broker. Publish
// failures are logged by callers and never fail the business operation.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event any) error
}
