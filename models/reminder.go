package models

// ReminderPayload is queued when a booking is confirmed and fires ahead of the job.
type ReminderPayload struct {
	BookingID  string `json:"bookingId"`
	PainterID  string `json:"painterId"`
	CustomerID string `json:"customerId"`
	StartTime  string `json:"startTime"`
}
