package service

import (
	"context"
)

// PushMessage is one push delivery addressed to a device token.
type PushMessage struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

// PushBatchResult reports per-message outcomes of a batch, in input order.
type PushBatchResult struct {
	SuccessCount  int
	FailureCount  int
	Delivered     []bool
	InvalidTokens []string
}

// PushService defines the interface for push notification delivery.
type PushService interface {
	// SendSingleNotification delivers one message.
	SendSingleNotification(ctx context.Context, message PushMessage) error

	// SendBatchNotification delivers many messages. A returned error means the batch as a whole failed.
	SendBatchNotification(ctx context.Context, messages []PushMessage) (*PushBatchResult, error)
}
