package service

import (
	"context"
)

// EventPublisher records triggered rain actions on an event bus so that a
// real downstream action can consume them later.
type EventPublisher interface {
	// PublishRainEvent publishes a triggered rain action.
	PublishRainEvent(ctx context.Context, event *RainEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
