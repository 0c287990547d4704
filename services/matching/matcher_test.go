package matching_test

import (
	"testing"
	"time"

	"sessionplanner/models"
	"sessionplanner/services/matching"

	"github.com/stretchr/testify/assert"
)

func window(fromHour, toHour int) *models.TimeWindow {
	return &models.TimeWindow{
		Start: time.Date(2025, 3, 10, fromHour, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 10, toHour, 0, 0, 0, time.UTC),
	}
}

func TestTagOverlap(t *testing.T) {
	t.Parallel()

	t.Run("empty inputs score zero", func(t *testing.T) {
		t.Parallel()
		assert.Zero(t, matching.TagOverlap(nil, []string{"seo"}))
		assert.Zero(t, matching.TagOverlap([]string{"seo"}, nil))
	})

	t.Run("exact match is case and space insensitive", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 1.0, matching.TagOverlap([]string{" Digital Marketing "}, []string{"digital marketing"}))
	})

	t.Run("partial matches count 0.3 and normalise by focus size", func(t *testing.T) {
		t.Parallel()
		got := matching.TagOverlap([]string{"SEO Basics", "Analytics"}, []string{"seo", "content"})
		assert.InDelta(t, 0.15, got, 1e-9)
	})

	t.Run("every partial pair counts", func(t *testing.T) {
		t.Parallel()
		got := matching.TagOverlap([]string{"content seo"}, []string{"seo", "content", "email"})
		assert.InDelta(t, 0.2, got, 1e-9)
	})

	t.Run("clamps at one", func(t *testing.T) {
		t.Parallel()
		got := matching.TagOverlap([]string{"seo", "seo tools", "local seo"}, []string{"seo"})
		assert.Equal(t, 1.0, got)
	})
}

func TestCategoryMatch(t *testing.T) {
	t.Parallel()

	t.Run("no industry", func(t *testing.T) {
		t.Parallel()
		s := models.Session{Category: "Finance"}
		assert.Zero(t, matching.CategoryMatch(s, models.UserProfile{}))
	})

	t.Run("expected category", func(t *testing.T) {
		t.Parallel()
		s := models.Session{Category: "EmailMarketing"}
		assert.Equal(t, 1.0, matching.CategoryMatch(s, models.UserProfile{Industry: "Marketing"}))
	})

	t.Run("subcategory containment", func(t *testing.T) {
		t.Parallel()
		s := models.Session{Category: "Leadership", Subcategory: "Negotiation"}
		p := models.UserProfile{Industry: "sales", Focus: []string{"Negotiation Skills"}}
		assert.Equal(t, 0.7, matching.CategoryMatch(s, p))
	})

	t.Run("missing subcategory never matches", func(t *testing.T) {
		t.Parallel()
		s := models.Session{Category: "Leadership"}
		p := models.UserProfile{Industry: "sales", Focus: []string{"negotiation"}}
		assert.Zero(t, matching.CategoryMatch(s, p))
	})
}

func TestTimeFit(t *testing.T) {
	t.Parallel()

	s := models.Session{Date: "2025-03-10", Time: "10 AM", Duration: "2 hours"}
	assert.Equal(t, 1.0, matching.TimeFit(s, nil))
	assert.Equal(t, 1.0, matching.TimeFit(s, window(9, 13)))
	assert.Equal(t, 1.0, matching.TimeFit(s, window(10, 12)))
	assert.Equal(t, 0.5, matching.TimeFit(s, window(11, 13)))
	assert.Equal(t, 0.0, matching.TimeFit(s, window(12, 15)))
	assert.Equal(t, 0.0, matching.TimeFit(s, window(7, 10)))
}

func TestFreshness(t *testing.T) {
	t.Parallel()

	at := func(tm string) models.Session { return models.Session{Date: "2025-03-10", Time: tm} }
	assert.Equal(t, 1.0, matching.Freshness(at("9 AM")))
	assert.InDelta(t, 1-5.0/11, matching.Freshness(at("2 PM")), 1e-9)
	assert.Equal(t, 0.0, matching.Freshness(at("8 PM")))
	assert.Equal(t, 0.0, matching.Freshness(at("9 PM")))
	assert.Equal(t, 0.0, matching.Freshness(at("7 AM")))
}

func TestAvailability(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, matching.Availability(models.Session{}))
	assert.Equal(t, 1.0, matching.Availability(models.Session{Capacity: 10}))
	assert.InDelta(t, 0.6, matching.Availability(models.Session{Capacity: 10, Enrolled: 4}), 1e-9)
	assert.Equal(t, 0.0, matching.Availability(models.Session{Capacity: 10, Enrolled: 10}))
}

func TestScoreSession(t *testing.T) {
	t.Parallel()

	t.Run("irrelevant session scores exactly zero", func(t *testing.T) {
		t.Parallel()
		s := models.Session{
			Tags: []string{"cooking"}, Category: "Culinary",
			Date: "2025-03-10", Time: "9 AM", Capacity: 100, Enrolled: 1,
		}
		p := models.UserProfile{Industry: "finance", Focus: []string{"budgeting"}, TimePref: window(8, 18)}
		assert.Equal(t, 0.0, matching.ScoreSession(s, p))
	})

	t.Run("exact tag and category match", func(t *testing.T) {
		t.Parallel()
		s := models.Session{
			Tags: []string{"Digital Marketing"}, Category: "DigitalMarketing",
			Date: "2025-03-10", Time: "9:00 AM", Duration: "1 hour",
		}
		p := models.UserProfile{Industry: "marketing", Focus: []string{"Digital Marketing"}}
		assert.Equal(t, 7.5, matching.ScoreSession(s, p))
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		t.Parallel()
		s := models.Session{Tags: []string{"SEO Basics"}, Date: "2025-03-10", Time: "10 AM"}
		p := models.UserProfile{Focus: []string{"seo", "content"}}
		// 5*0.15 + 2*1 + 0.3*(10/11) + 0.2*1
		assert.Equal(t, 3.22, matching.ScoreSession(s, p))
	})

	t.Run("partial time overlap halves the timing component", func(t *testing.T) {
		t.Parallel()
		s := models.Session{
			Tags: []string{"budgeting"}, Category: "Finance",
			Date: "2025-03-10", Time: "7 PM", Duration: "2 hours", Capacity: 10, Enrolled: 5,
		}
		p := models.UserProfile{Industry: "finance", Focus: []string{"budgeting"}, TimePref: window(18, 20)}
		// 5*1 + 2*0.5 + 0.3*(1-10/11) + 0.2*0.5
		assert.Equal(t, 6.13, matching.ScoreSession(s, p))
	})
}
