package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sessionplanner/models"
	"sessionplanner/services/matching"

	"github.com/hibiken/asynq"
)

const DefaultReminderLead = 15 * time.Minute

// ReminderScheduler queues "starts soon" reminders for a confirmed booking group.
type ReminderScheduler interface {
	ScheduleReminders(ctx context.Context, groupID string, sessions []models.Session, userDetails map[string]interface{}) error
}

// Enqueuer is the part of *asynq.Client the scheduler needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// PlannedReminder is one reminder with the instant it should fire.
type PlannedReminder struct {
	Payload models.ReminderPayload
	FireAt  time.Time
}

type AsynqReminderScheduler struct {
	Queue    Enqueuer
	LeadTime time.Duration
	Now      func() time.Time
}

func NewAsynqReminderScheduler(client *asynq.Client, lead time.Duration) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{Queue: client, LeadTime: lead}
}

func (s *AsynqReminderScheduler) ScheduleReminders(ctx context.Context, groupID string, sessions []models.Session, userDetails map[string]interface{}) error {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	lead := s.LeadTime
	if lead <= 0 {
		lead = DefaultReminderLead
	}

	var errs []error
	for _, r := range PlanReminders(groupID, sessions, userDetails, lead, now) {
		task, opts, err := NewReminderTask(r.Payload, r.FireAt)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, err := s.Queue.EnqueueContext(ctx, task, opts...); err != nil && !errors.Is(err, asynq.ErrTaskIDConflict) {
			errs = append(errs, fmt.Errorf("enqueue reminder for session %s: %w", r.Payload.SessionID, err))
		}
	}
	return errors.Join(errs...)
}

// PlanReminders returns a reminder lead before each session start. Sessions whose
// reminder would already be due are skipped.
func PlanReminders(groupID string, sessions []models.Session, userDetails map[string]interface{}, lead time.Duration, now time.Time) []PlannedReminder {
	token, _ := userDetails["fcmToken"].(string)
	name, _ := userDetails["name"].(string)

	var out []PlannedReminder
	for _, sess := range sessions {
		start, _ := matching.SessionWindow(sess)
		fireAt := start.Add(-lead)
		if !fireAt.After(now) {
			continue
		}
		location := sess.Location
		if location == "" {
			location = "Online Session"
		}
		out = append(out, PlannedReminder{
			FireAt: fireAt,
			Payload: models.ReminderPayload{
				BookingID:    groupID,
				SessionID:    sess.ID,
				Title:        "Starting soon: " + sess.Title,
				Body:         fmt.Sprintf("%s starts at %s UTC (%s)", sess.Title, start.Format("15:04"), location),
				FireDate:     fireAt.UTC().Format(time.RFC3339),
				DeviceToken:  token,
				AttendeeName: name,
			},
		})
	}
	return out
}
