package ai_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sessionplanner/models"
	ai "sessionplanner/services/intelligence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGenerator struct {
	reply  string
	err    error
	prompt string
	calls  int
	block  bool
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.reply, f.err
}

func candidates() []models.ScoredSession {
	return []models.ScoredSession{
		{Session: models.Session{ID: "a", Date: "2025-03-10", Time: "9 AM", Category: "Finance"}, Score: 7},
		{Session: models.Session{ID: "b", Date: "2025-03-10", Time: "11 AM"}, Score: 6},
		{Session: models.Session{ID: "c", Date: "2025-03-10", Time: "1 PM", Duration: "1 hour"}, Score: 5},
	}
}

func order(sessions []models.ScoredSession) []string {
	out := make([]string, len(sessions))
	for i, s := range sessions {
		out[i] = s.ID
	}
	return out
}

func TestParseOrder(t *testing.T) {
	t.Parallel()

	t.Run("string ids inside prose", func(t *testing.T) {
		t.Parallel()
		got, err := ai.ParseOrder("Sure! Here you go:\n```json\n[\"c\", \"a\"]\n```")
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "a"}, got)
	})

	t.Run("numeric ids", func(t *testing.T) {
		t.Parallel()
		got, err := ai.ParseOrder("[3, 1, 2]")
		require.NoError(t, err)
		assert.Equal(t, []string{"3", "1", "2"}, got)
	})

	t.Run("malformed replies", func(t *testing.T) {
		t.Parallel()
		for _, reply := range []string{"", "no list here", "[]", "[a, b]", "[{\"id\": 1}]", "[true]"} {
			_, err := ai.ParseOrder(reply)
			assert.ErrorIs(t, err, ai.ErrMalformedOrder, reply)
		}
	})
}

func TestApplyOrder(t *testing.T) {
	t.Parallel()

	got := ai.ApplyOrder(candidates(), []string{"c", "zzz", "c", "a"})
	assert.Equal(t, []string{"c", "a", "b"}, order(got))
}

func TestBuildReorderPrompt(t *testing.T) {
	t.Parallel()

	prompt, err := ai.BuildReorderPrompt(candidates(), models.UserProfile{Industry: "finance", Focus: []string{"budgeting", "tax"}})
	require.NoError(t, err)
	assert.Contains(t, prompt, "\"id\": \"a\"")
	assert.Contains(t, prompt, "2025-03-10T09:00:00Z")
	assert.Contains(t, prompt, "\"category\": \"General\"")
	assert.Contains(t, prompt, "Industry: finance")
	assert.Contains(t, prompt, "Focus areas: budgeting, tax")
}

func TestGeminiReorderer_Reorder(t *testing.T) {
	t.Parallel()

	t.Run("applies model order", func(t *testing.T) {
		t.Parallel()
		gen := &fakeGenerator{reply: `["b", "c", "a"]`}
		r := ai.NewGeminiReorderer(gen, time.Second, zap.NewNop())

		got, err := r.Reorder(context.Background(), candidates(), models.UserProfile{Industry: "finance"})
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "c", "a"}, order(got))
		assert.Equal(t, 1, gen.calls)
	})

	t.Run("single session skips the model", func(t *testing.T) {
		t.Parallel()
		gen := &fakeGenerator{}
		r := ai.NewGeminiReorderer(gen, time.Second, zap.NewNop())

		in := candidates()[:1]
		got, err := r.Reorder(context.Background(), in, models.UserProfile{})
		require.NoError(t, err)
		assert.Equal(t, in, got)
		assert.Zero(t, gen.calls)
	})

	t.Run("generator failure is returned once", func(t *testing.T) {
		t.Parallel()
		gen := &fakeGenerator{err: errors.New("quota exceeded")}
		r := ai.NewGeminiReorderer(gen, time.Second, zap.NewNop())

		_, err := r.Reorder(context.Background(), candidates(), models.UserProfile{})
		require.Error(t, err)
		assert.Equal(t, 1, gen.calls)
	})

	t.Run("malformed output", func(t *testing.T) {
		t.Parallel()
		gen := &fakeGenerator{reply: "I would start with the finance talk."}
		r := ai.NewGeminiReorderer(gen, time.Second, zap.NewNop())

		_, err := r.Reorder(context.Background(), candidates(), models.UserProfile{})
		assert.ErrorIs(t, err, ai.ErrMalformedOrder)
	})

	t.Run("unknown ids only", func(t *testing.T) {
		t.Parallel()
		gen := &fakeGenerator{reply: `["x", "y"]`}
		r := ai.NewGeminiReorderer(gen, time.Second, zap.NewNop())

		got, err := r.Reorder(context.Background(), candidates(), models.UserProfile{})
		assert.ErrorIs(t, err, ai.ErrMalformedOrder)
		assert.Nil(t, got)
	})

	t.Run("partial match keeps the rest", func(t *testing.T) {
		t.Parallel()
		gen := &fakeGenerator{reply: `["x", "c"]`}
		r := ai.NewGeminiReorderer(gen, time.Second, zap.NewNop())

		got, err := r.Reorder(context.Background(), candidates(), models.UserProfile{})
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "a", "b"}, order(got))
	})

	t.Run("bounded by timeout", func(t *testing.T) {
		t.Parallel()
		gen := &fakeGenerator{block: true}
		r := ai.NewGeminiReorderer(gen, 20*time.Millisecond, zap.NewNop())

		_, err := r.Reorder(context.Background(), candidates(), models.UserProfile{})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
