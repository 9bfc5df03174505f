package models

import "time"

// BookingStatus is the lifecycle state of a booking. Only confirmed is
// produced today; pending and cancelled are reserved.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingPending   BookingStatus = "pending"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a painter reserved for one customer over a window.
type Booking struct {
	ID          string `bson:"id" json:"id"`
	PainterID   string `bson:"painterId" json:"painterId"`
	PainterName string `bson:"painterName" json:"painterName"`
	CustomerID  string `bson:"customerId" json:"customerId"`
	TimeWindow  `bson:",inline"`
	Status      BookingStatus `bson:"status" json:"status"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// PainterRef identifies a painter in responses.
type PainterRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BookingResponse is the customer facing view of a booking.
type BookingResponse struct {
	BookingID string     `json:"bookingId"`
	Painter   PainterRef `json:"painter"`
	StartTime string     `json:"startTime"`
	EndTime   string     `json:"endTime"`
	Status    string     `json:"status"`
}

// PainterBookingResponse is what a painter sees of their own bookings.
type PainterBookingResponse struct {
	BookingID  string `json:"bookingId"`
	CustomerID string `json:"customerId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Status     string `json:"status"`
}

func (b Booking) Response() BookingResponse {
	return BookingResponse{
		BookingID: b.ID,
		Painter:   PainterRef{ID: b.PainterID, Name: b.PainterName},
		StartTime: b.Start.UTC().Format(time.RFC3339Nano),
		EndTime:   b.End.UTC().Format(time.RFC3339Nano),
		Status:    string(b.Status),
	}
}

func (b Booking) PainterResponse() PainterBookingResponse {
	return PainterBookingResponse{
		BookingID:  b.ID,
		CustomerID: b.CustomerID,
		StartTime:  b.Start.UTC().Format(time.RFC3339Nano),
		EndTime:    b.End.UTC().Format(time.RFC3339Nano),
		Status:     string(b.Status),
	}
}

// CreateBookingRequest is the payload of a booking request.
type CreateBookingRequest struct {
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}
