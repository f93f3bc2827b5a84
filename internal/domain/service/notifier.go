package service

import (
	"context"
	"time"
)

// RainEvent describes a triggered rain action.
type RainEvent struct {
	Location    string    `json:"location"`
	Date        string    `json:"date"`
	Probability int       `json:"probability"`
	Message     string    `json:"message"`
	TriggeredAt time.Time `json:"triggered_at"`
}

// Notifier is the hook point fired when the rain threshold rule triggers.
// Implementations decide what the action actually does.
type Notifier interface {
	Notify(ctx context.Context, event *RainEvent) error
}
