// Package events provides event publisher implementations for the
// ports/services.EventPublisher interface.
package events

import (
	"context"

	portssvc "github.com/awesomegic/bank_account_system/internal/core/ports/services"
)

// NoopPublisher discards every event. Used by the console, by tests, and by
// the server when no broker is configured.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that drops all events.
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

// Publish discards the event and always succeeds.
func (p *NoopPublisher) Publish(ctx context.Context, topic string, event any) error {
	return nil
}

var _ portssvc.EventPublisher = (*NoopPublisher)(nil)
