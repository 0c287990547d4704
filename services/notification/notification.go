package notification

import (
	"context"
	"fmt"

	"sessionplanner/models"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// FCMNotifier pushes reminders through Firebase Cloud Messaging. Reminders
// without a device token are only logged.
type FCMNotifier struct {
	Sender MessageSender
	Logger *zap.Logger
}

func NewFCMNotifier(sender MessageSender, logger *zap.Logger) *FCMNotifier {
	return &FCMNotifier{Sender: sender, Logger: logger}
}

func (n *FCMNotifier) SendReminder(ctx context.Context, p models.ReminderPayload) error {
	if p.DeviceToken == "" {
		n.Logger.Info("No device token on reminder, skipping push",
			zap.String("bookingId", p.BookingID), zap.String("sessionId", p.SessionID))
		return nil
	}

	id, err := n.Sender.Send(ctx, BuildReminderMessage(p))
	if err != nil {
		return fmt.Errorf("failed to send FCM reminder for session %s: %w", p.SessionID, err)
	}
	n.Logger.Debug("Reminder push sent", zap.String("messageId", id), zap.String("sessionId", p.SessionID))
	return nil
}

// BuildReminderMessage builds a high priority push for a reminder.
func BuildReminderMessage(p models.ReminderPayload) *messaging.Message {
	return &messaging.Message{
		Token: p.DeviceToken,
		Notification: &messaging.Notification{
			Title: p.Title,
			Body:  p.Body,
		},
		Data: map[string]string{
			"type":      "session_reminder",
			"bookingId": p.BookingID,
			"sessionId": p.SessionID,
			"fireDate":  p.FireDate,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}
}

// LogNotifier only logs reminders. Used when Firebase is not configured.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n LogNotifier) SendReminder(_ context.Context, p models.ReminderPayload) error {
	n.Logger.Info("Session reminder",
		zap.String("bookingId", p.BookingID),
		zap.String("sessionId", p.SessionID),
		zap.String("attendee", p.AttendeeName),
		zap.String("title", p.Title),
		zap.String("body", p.Body),
	)
	return nil
}
