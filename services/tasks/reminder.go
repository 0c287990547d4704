package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"sessionplanner/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask builds a reminder task processed at fireAt. The task id is
// derived from booking and session so re-scheduling the same reminder is a no-op.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode reminder payload: %w", err)
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID(fmt.Sprintf("reminder:%s:%s", payload.BookingID, payload.SessionID)),
		asynq.MaxRetry(3),
	}

	return task, opts, nil
}

// ParseReminderPayload decodes the payload of a reminder task.
func ParseReminderPayload(task *asynq.Task) (models.ReminderPayload, error) {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid reminder payload: %w", err)
	}
	return p, nil
}
