package service

import (
	"context"
	"time"
)

// VerificationEvent is the payload handed to the notification pipeline when a
// user registers. The downstream consumer renders and sends the verification
// email; delivery guarantees are its concern, not this service's.
type VerificationEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// EventPublisher defines the interface for publishing events to a message queue.
// Publishing is best-effort from the caller's perspective: a failed publish is
// logged by the caller and never rolls back the mutation it accompanies.
type EventPublisher interface {
	// PublishVerificationEvent publishes a verification event for async email delivery.
	PublishVerificationEvent(ctx context.Context, event *VerificationEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
