package notification

import (
	"context"

	"sessionplanner/models"

	"firebase.google.com/go/v4/messaging"
)

// Notifier delivers a session reminder to the attendee.
type Notifier interface {
	SendReminder(ctx context.Context, p models.ReminderPayload) error
}

// MessageSender is the part of *messaging.Client used for pushes.
type MessageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}
