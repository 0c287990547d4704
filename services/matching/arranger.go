package matching

import (
	"sort"

	"sessionplanner/models"
)

// MaxGapMinutes is the largest idle gap MinimizeGaps tolerates between kept sessions.
const MaxGapMinutes = 90

// ArrangeGreedy drops time conflicts by score priority and, when avoidGaps is
// set, orders the survivors chronologically and trims long gaps.
func ArrangeGreedy(sessions []models.ScoredSession, avoidGaps bool) []models.ScoredSession {
	chosen := RemoveConflicts(sessions)
	if !avoidGaps {
		return chosen
	}

	sort.SliceStable(chosen, func(i, j int) bool {
		return ParseSessionDateTime(chosen[i].Date, chosen[i].Time).
			Before(ParseSessionDateTime(chosen[j].Date, chosen[j].Time))
	})
	return MinimizeGaps(chosen)
}

// RemoveConflicts accepts sessions highest score first, skipping any that overlap
// an accepted one. Equal scores keep their input order. This is a greedy
// approximation, not an optimal weighted interval schedule.
func RemoveConflicts(sessions []models.ScoredSession) []models.ScoredSession {
	sorted := make([]models.ScoredSession, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	chosen := make([]models.ScoredSession, 0, len(sorted))
	for _, candidate := range sorted {
		conflict := false
		for _, existing := range chosen {
			if SessionsOverlap(candidate.Session, existing.Session) {
				conflict = true
				break
			}
		}
		if !conflict {
			chosen = append(chosen, candidate)
		}
	}
	return chosen
}

// SessionsOverlap uses half-open intervals, so back-to-back sessions do not overlap.
func SessionsOverlap(a, b models.Session) bool {
	startA, endA := SessionWindow(a)
	startB, endB := SessionWindow(b)
	return !(!endA.After(startB) || !endB.After(startA))
}

// MinimizeGaps walks chronologically sorted sessions once, keeping a session only
// if it starts within MaxGapMinutes of the last kept session's end.
func MinimizeGaps(sessions []models.ScoredSession) []models.ScoredSession {
	if len(sessions) <= 1 {
		return sessions
	}

	result := []models.ScoredSession{sessions[0]}
	for _, current := range sessions[1:] {
		_, prevEnd := SessionWindow(result[len(result)-1].Session)
		currentStart := ParseSessionDateTime(current.Date, current.Time)
		if currentStart.Sub(prevEnd).Minutes() <= MaxGapMinutes {
			result = append(result, current)
		}
	}
	return result
}
