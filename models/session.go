package models

// Session is a conference session as stored in the sessions collection.
// Capacity and Enrolled are zero when unset.
type Session struct {
	ID          string   `bson:"id" json:"id"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Category    string   `bson:"category" json:"category"`
	Subcategory string   `bson:"subcategory,omitempty" json:"subcategory,omitempty"`
	Tags        []string `bson:"tags" json:"tags"`
	Date        string   `bson:"date" json:"date"`                             // "YYYY-MM-DD"
	Time        string   `bson:"time,omitempty" json:"time,omitempty"`         // e.g. "10:00 AM"
	Duration    string   `bson:"duration,omitempty" json:"duration,omitempty"` // e.g. "1.5 hours"
	Location    string   `bson:"location,omitempty" json:"location,omitempty"`
	Instructor  string   `bson:"instructor,omitempty" json:"instructor,omitempty"`
	Capacity    int      `bson:"capacity,omitempty" json:"capacity,omitempty"`
	Enrolled    int      `bson:"enrolled,omitempty" json:"enrolled,omitempty"`
}

// IsFull reports whether every seat is taken. Sessions without a capacity never fill up.
func (s Session) IsFull() bool {
	return s.Capacity > 0 && s.Enrolled >= s.Capacity
}

// ScoredSession pairs a session with its request-scoped relevance score.
type ScoredSession struct {
	Session
	Score float64 `json:"score"`
}
