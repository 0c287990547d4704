package models

import "time"

const BookingStatusConfirmed = "confirmed"

// Booking is one persisted row per booked session. Rows created together share GroupID.
type Booking struct {
	ID          string                 `bson:"id" json:"id"`
	GroupID     string                 `bson:"bookingGroupId" json:"bookingGroupId"`
	SessionID   string                 `bson:"sessionId" json:"sessionId"`
	RequestID   string                 `bson:"requestId,omitempty" json:"requestId,omitempty"`
	UserDetails map[string]interface{} `bson:"userDetails,omitempty" json:"userDetails,omitempty"`
	Status      string                 `bson:"status" json:"status"`
	BookedAt    time.Time              `bson:"bookedAt" json:"bookedAt"`
}

// BookingRequest is the body of POST /api/book.
type BookingRequest struct {
	RequestID   string                 `json:"requestId,omitempty"`
	SessionIDs  []string               `json:"sessionIds"`
	UserDetails map[string]interface{} `json:"userDetails,omitempty"`
}

// BookedSession is the summary of a session returned after booking.
type BookedSession struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// BookingConfirmation is the success body of POST /api/book.
type BookingConfirmation struct {
	BookingID  string          `json:"bookingId"`
	SessionIDs []string        `json:"sessionIds"`
	Status     string          `json:"status"`
	ICSURL     string          `json:"icsUrl"`
	Sessions   []BookedSession `json:"sessions"`
}

// SessionSummary is the session detail joined onto a user's booking rows.
type SessionSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Instructor  string `json:"instructor,omitempty"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`
	Location    string `json:"location,omitempty"`
}

// UserBooking is a booking row with its session. Session is nil when the
// session no longer exists.
type UserBooking struct {
	Booking
	Session *SessionSummary `json:"session,omitempty"`
}

// BookingGroup is a booking group joined with its sessions, in booking order.
type BookingGroup struct {
	GroupID  string
	Bookings []Booking
	Sessions []Session
}
