package tasks_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sessionplanner/models"
	"sessionplanner/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingQueue struct {
	tasks []*asynq.Task
	opts  [][]asynq.Option
	err   error
}

func (q *recordingQueue) EnqueueContext(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if q.err != nil {
		return nil, q.err
	}
	q.tasks = append(q.tasks, task)
	q.opts = append(q.opts, opts)
	return &asynq.TaskInfo{}, nil
}

var now = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func sessions() []models.Session {
	return []models.Session{
		{ID: "past", Title: "Breakfast", Date: "2025-03-10", Time: "8 AM", Duration: "1 hour"},
		{ID: "soon", Title: "Keynote", Date: "2025-03-10", Time: "10 AM", Duration: "1 hour", Location: "Hall B"},
	}
}

func TestNewReminderTask(t *testing.T) {
	t.Parallel()

	fireAt := now.Add(time.Hour)
	task, opts, err := tasks.NewReminderTask(models.ReminderPayload{BookingID: "g1", SessionID: "s1", Title: "Hi"}, fireAt)
	require.NoError(t, err)
	assert.Equal(t, tasks.TypeSendReminder, task.Type())

	var processAt, taskID interface{}
	for _, o := range opts {
		switch o.Type() {
		case asynq.ProcessAtOpt:
			processAt = o.Value()
		case asynq.TaskIDOpt:
			taskID = o.Value()
		}
	}
	assert.Equal(t, fireAt, processAt)
	assert.Equal(t, "reminder:g1:s1", taskID)

	payload, err := tasks.ParseReminderPayload(task)
	require.NoError(t, err)
	assert.Equal(t, "Hi", payload.Title)
}

func TestParseReminderPayload_Invalid(t *testing.T) {
	t.Parallel()

	_, err := tasks.ParseReminderPayload(asynq.NewTask(tasks.TypeSendReminder, []byte("{")))
	assert.Error(t, err)
}

func TestPlanReminders(t *testing.T) {
	t.Parallel()

	details := map[string]interface{}{"fcmToken": "tok-1", "name": "Ada", "user_id": 7}
	planned := tasks.PlanReminders("g1", sessions(), details, 15*time.Minute, now)

	require.Len(t, planned, 1)
	r := planned[0]
	assert.Equal(t, time.Date(2025, 3, 10, 9, 45, 0, 0, time.UTC), r.FireAt)
	assert.Equal(t, "g1", r.Payload.BookingID)
	assert.Equal(t, "soon", r.Payload.SessionID)
	assert.Equal(t, "tok-1", r.Payload.DeviceToken)
	assert.Equal(t, "Ada", r.Payload.AttendeeName)
	assert.Equal(t, "Starting soon: Keynote", r.Payload.Title)
	assert.Contains(t, r.Payload.Body, "10:00")
	assert.Contains(t, r.Payload.Body, "Hall B")
}

func TestAsynqReminderScheduler(t *testing.T) {
	t.Parallel()

	t.Run("enqueues future sessions only", func(t *testing.T) {
		t.Parallel()
		q := &recordingQueue{}
		s := &tasks.AsynqReminderScheduler{Queue: q, Now: func() time.Time { return now }}

		require.NoError(t, s.ScheduleReminders(context.Background(), "g1", sessions(), nil))
		require.Len(t, q.tasks, 1)
		assert.Equal(t, tasks.TypeSendReminder, q.tasks[0].Type())
	})

	t.Run("duplicate task ids are not errors", func(t *testing.T) {
		t.Parallel()
		q := &recordingQueue{err: asynq.ErrTaskIDConflict}
		s := &tasks.AsynqReminderScheduler{Queue: q, Now: func() time.Time { return now }}

		assert.NoError(t, s.ScheduleReminders(context.Background(), "g1", sessions(), nil))
	})

	t.Run("queue failure is reported", func(t *testing.T) {
		t.Parallel()
		q := &recordingQueue{err: errors.New("redis down")}
		s := &tasks.AsynqReminderScheduler{Queue: q, Now: func() time.Time { return now }}

		err := s.ScheduleReminders(context.Background(), "g1", sessions(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "soon")
	})
}
