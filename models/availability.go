package models

import "time"

// Availability is a window a painter has declared free. It is never updated
// once stored.
type Availability struct {
	ID         string `bson:"id" json:"id"`
	PainterID  string `bson:"painterId" json:"painterId"`
	TimeWindow `bson:",inline"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AvailabilityResponse is the public view of an availability window.
type AvailabilityResponse struct {
	ID        string `json:"id"`
	PainterID string `json:"painterId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func (a Availability) Response() AvailabilityResponse {
	return AvailabilityResponse{
		ID:        a.ID,
		PainterID: a.PainterID,
		StartTime: a.Start.UTC().Format(time.RFC3339Nano),
		EndTime:   a.End.UTC().Format(time.RFC3339Nano),
	}
}

// CreateAvailabilityRequest is the payload for declaring free time.
// PainterID may be omitted when the caller identifies through the X-Painter-ID header.
type CreateAvailabilityRequest struct {
	PainterID string    `json:"painterId"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}
