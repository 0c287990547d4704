package models

// ReorderCandidate is the abstracted view of a session handed to the AI reorder step.
// It carries no attendee data.
type ReorderCandidate struct {
	ID            string  `json:"id"`
	StartTime     string  `json:"start_time"`
	DurationHours float64 `json:"duration_hours"`
	Score         float64 `json:"score"`
	Category      string  `json:"category"`
}
