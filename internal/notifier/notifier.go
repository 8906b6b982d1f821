package notifier

import (
	"context"

	"FinSentinel/internal/model"
)

// Notification is the payload handed to the delivery channel for one
// un-suppressed insight.
type Notification struct {
	Title      string         `json:"title"`
	Body       string         `json:"body"`
	Priority   model.Priority `json:"priority"`
	CategoryID string         `json:"category_id,omitempty"`
}

// Notifier delivers notifications to the user-facing channel. Delivery
// failures never invalidate the computed insight.
type Notifier interface {
	Send(ctx context.Context, n *Notification) error
}

// NoopNotifier swallows notifications; used when no channel is configured or
// smart notifications are disabled.
type NoopNotifier struct{}

func NewNoopNotifier() *NoopNotifier { return &NoopNotifier{} }

func (n *NoopNotifier) Send(_ context.Context, _ *Notification) error { return nil }
