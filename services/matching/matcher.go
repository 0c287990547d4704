package matching

import (
	"math"
	"strings"

	"sessionplanner/models"
)

// Score weights. Relevance dominates, timing is secondary and the rest break ties.
const (
	RelevanceWeight    = 5.0
	TimeFitWeight      = 2.0
	FreshnessWeight    = 0.3
	AvailabilityWeight = 0.2

	exactTagWeight   = 1.0
	partialTagWeight = 0.3
	subcategoryScore = 0.7
)

var industryCategories = map[string][]string{
	"marketing":  {"digitalmarketing", "contentmarketing", "socialmedia", "emailmarketing"},
	"tech":       {"webdevelopment", "datascience", "devops", "productmanagement"},
	"technology": {"webdevelopment", "datascience", "devops", "productmanagement"},
	"sales":      {"sales"},
	"finance":    {"finance"},
}

// ScoreSession ranks a session against a profile. Sessions with neither tag
// overlap nor category match score exactly 0.
func ScoreSession(s models.Session, profile models.UserProfile) float64 {
	tagOverlap := TagOverlap(s.Tags, profile.Focus)
	categoryMatch := CategoryMatch(s, profile)
	if tagOverlap == 0 && categoryMatch == 0 {
		return 0
	}

	score := RelevanceWeight*math.Max(tagOverlap, categoryMatch) +
		TimeFitWeight*TimeFit(s, profile.TimePref) +
		FreshnessWeight*Freshness(s) +
		AvailabilityWeight*Availability(s)
	return math.Round(score*100) / 100
}

// TagOverlap scores exact (1.0) and partial substring (0.3 per pair) matches
// between session tags and focus terms, normalised by the number of focus terms.
func TagOverlap(tags, focus []string) float64 {
	if len(tags) == 0 || len(focus) == 0 {
		return 0
	}

	focusLower := make([]string, len(focus))
	exact := make(map[string]struct{}, len(focus))
	for i, f := range focus {
		focusLower[i] = strings.ToLower(strings.TrimSpace(f))
		exact[focusLower[i]] = struct{}{}
	}

	var exactMatches, partialMatches int
	for _, tag := range tags {
		tagLower := strings.ToLower(strings.TrimSpace(tag))
		if _, ok := exact[tagLower]; ok {
			exactMatches++
			continue
		}
		for _, f := range focusLower {
			if strings.Contains(tagLower, f) || strings.Contains(f, tagLower) {
				partialMatches++
			}
		}
	}

	raw := float64(exactMatches)*exactTagWeight + float64(partialMatches)*partialTagWeight
	return math.Min(1.0, raw/math.Max(1, float64(len(focus))))
}

// CategoryMatch is 1.0 when the session category is expected for the industry,
// 0.7 when a focus term and the session subcategory contain one another, else 0.
func CategoryMatch(s models.Session, profile models.UserProfile) float64 {
	if profile.Industry == "" {
		return 0
	}

	category := strings.ToLower(s.Category)
	for _, expected := range industryCategories[strings.ToLower(profile.Industry)] {
		if category == expected {
			return 1.0
		}
	}

	sub := strings.ToLower(s.Subcategory)
	if sub == "" {
		return 0
	}
	for _, f := range profile.Focus {
		f = strings.ToLower(strings.TrimSpace(f))
		if strings.Contains(sub, f) || strings.Contains(f, sub) {
			return subcategoryScore
		}
	}
	return 0
}

// TimeFit is 1.0 inside the preference window (or without one), 0.5 on partial overlap, 0 otherwise.
func TimeFit(s models.Session, pref *models.TimeWindow) float64 {
	if pref == nil {
		return 1.0
	}
	start, end := SessionWindow(s)
	switch {
	case !start.Before(pref.Start) && !end.After(pref.End):
		return 1.0
	case end.After(pref.Start) && start.Before(pref.End):
		return 0.5
	}
	return 0
}

// Freshness ramps linearly from 1.0 at 09:00 to 0.0 at 20:00; other hours score 0.
func Freshness(s models.Session) float64 {
	hour := ParseSessionDateTime(s.Date, s.Time).Hour()
	if hour < 9 || hour > 20 {
		return 0
	}
	return 1.0 - float64(hour-9)/11
}

// Availability is the free-seat ratio, or 1.0 when capacity or enrolment is unset.
func Availability(s models.Session) float64 {
	if s.Capacity == 0 || s.Enrolled == 0 {
		return 1.0
	}
	return float64(s.Capacity-s.Enrolled) / float64(s.Capacity)
}
