package matching_test

import (
	"testing"

	"sessionplanner/models"
	"sessionplanner/services/matching"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scored(id, tm, duration string, score float64) models.ScoredSession {
	return models.ScoredSession{
		Session: models.Session{ID: id, Date: "2025-03-10", Time: tm, Duration: duration},
		Score:   score,
	}
}

func ids(sessions []models.ScoredSession) []string {
	out := make([]string, len(sessions))
	for i, s := range sessions {
		out[i] = s.ID
	}
	return out
}

func TestSessionsOverlap(t *testing.T) {
	t.Parallel()

	a := models.Session{Date: "2025-03-10", Time: "10 AM", Duration: "2 hours"}

	t.Run("touching intervals do not overlap", func(t *testing.T) {
		t.Parallel()
		b := models.Session{Date: "2025-03-10", Time: "12 PM", Duration: "1 hour"}
		assert.False(t, matching.SessionsOverlap(a, b))
		assert.False(t, matching.SessionsOverlap(b, a))
	})

	t.Run("intersecting intervals overlap", func(t *testing.T) {
		t.Parallel()
		b := models.Session{Date: "2025-03-10", Time: "11 AM", Duration: "2 hours"}
		assert.True(t, matching.SessionsOverlap(a, b))
	})

	t.Run("different days never overlap", func(t *testing.T) {
		t.Parallel()
		b := models.Session{Date: "2025-03-11", Time: "10 AM", Duration: "2 hours"}
		assert.False(t, matching.SessionsOverlap(a, b))
	})
}

func TestRemoveConflicts(t *testing.T) {
	t.Parallel()

	t.Run("pairwise overlapping keeps only the best", func(t *testing.T) {
		t.Parallel()
		in := []models.ScoredSession{
			scored("a", "10 AM", "2 hours", 3),
			scored("b", "11 AM", "2 hours", 7),
			scored("c", "10 AM", "3 hours", 5),
		}
		got := matching.RemoveConflicts(in)
		require.Len(t, got, 1)
		assert.Equal(t, "b", got[0].ID)
	})

	t.Run("equal scores keep input order", func(t *testing.T) {
		t.Parallel()
		in := []models.ScoredSession{
			scored("first", "10 AM", "2 hours", 5),
			scored("second", "11 AM", "2 hours", 5),
		}
		assert.Equal(t, []string{"first"}, ids(matching.RemoveConflicts(in)))
	})

	t.Run("greedy is not globally optimal", func(t *testing.T) {
		t.Parallel()
		// One long 6.0 session beats two shorter 5.0 sessions it overlaps.
		in := []models.ScoredSession{
			scored("short1", "9 AM", "1 hour", 5),
			scored("long", "9 AM", "3 hours", 6),
			scored("short2", "11 AM", "1 hour", 5),
		}
		assert.Equal(t, []string{"long"}, ids(matching.RemoveConflicts(in)))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		t.Parallel()
		in := []models.ScoredSession{
			scored("low", "9 AM", "1 hour", 1),
			scored("high", "1 PM", "1 hour", 9),
		}
		got := matching.RemoveConflicts(in)
		assert.Equal(t, []string{"high", "low"}, ids(got))
		assert.Equal(t, []string{"low", "high"}, ids(in))
	})
}

func TestMinimizeGaps(t *testing.T) {
	t.Parallel()

	t.Run("keeps sessions within ninety minutes", func(t *testing.T) {
		t.Parallel()
		in := []models.ScoredSession{
			scored("s1", "9 AM", "1 hour", 1),
			scored("s2", "11 AM", "1 hour", 1), // 60 min after s1
			scored("s3", "1 PM", "1 hour", 1),  // 60 min after s2
		}
		assert.Equal(t, []string{"s1", "s2", "s3"}, ids(matching.MinimizeGaps(in)))
	})

	t.Run("exactly ninety minutes is kept", func(t *testing.T) {
		t.Parallel()
		in := []models.ScoredSession{
			scored("s1", "8 AM", "0.5 hours", 1),
			scored("s2", "10 AM", "1 hour", 1),
		}
		assert.Equal(t, []string{"s1", "s2"}, ids(matching.MinimizeGaps(in)))
	})

	t.Run("gap is measured from the last kept session", func(t *testing.T) {
		t.Parallel()
		in := []models.ScoredSession{
			scored("s1", "9 AM", "0.45 hours", 1), // ends 09:27
			scored("s2", "11 AM", "0.5 hours", 1), // 93 min gap, dropped
			scored("s3", "12 PM", "1 hour", 1),    // 30 min after s2, 153 min after s1
		}
		assert.Equal(t, []string{"s1"}, ids(matching.MinimizeGaps(in)))
	})

	t.Run("single session passes through", func(t *testing.T) {
		t.Parallel()
		in := []models.ScoredSession{scored("only", "3 PM", "", 1)}
		assert.Equal(t, []string{"only"}, ids(matching.MinimizeGaps(in)))
	})
}

func TestArrangeGreedy(t *testing.T) {
	t.Parallel()

	in := []models.ScoredSession{
		scored("late", "1 PM", "1 hour", 9),
		scored("early", "10 AM", "2 hours", 8),
		scored("clash", "10 AM", "1 hour", 4),
		scored("evening", "6 PM", "1 hour", 7),
	}

	t.Run("without gap avoidance keeps score order", func(t *testing.T) {
		t.Parallel()
		got := matching.ArrangeGreedy(in, false)
		assert.Equal(t, []string{"late", "early", "evening"}, ids(got))
	})

	t.Run("with gap avoidance sorts by start and trims gaps", func(t *testing.T) {
		t.Parallel()
		got := matching.ArrangeGreedy(in, true)
		assert.Equal(t, []string{"early", "late"}, ids(got))
	})
}
