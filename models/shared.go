package models

// ReminderPayload is the asynq payload for a "session starts soon" reminder.
type ReminderPayload struct {
	BookingID    string `json:"bookingId"`
	SessionID    string `json:"sessionId"`
	Title        string `json:"title"`
	Body         string `json:"body"`
	FireDate     string `json:"fireDate"`
	DeviceToken  string `json:"deviceToken,omitempty"` // FCM token, when the attendee supplied one
	AttendeeName string `json:"attendeeName,omitempty"`
}
