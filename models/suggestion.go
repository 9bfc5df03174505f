package models

import "time"

// Suggestion is an alternative slot offered when nobody is free for the
// requested window. Lower Priority ranks first.
type Suggestion struct {
	PainterID   string
	PainterName string
	TimeWindow
	// Offset is the unscaled distance between the slot start and the requested start.
	Offset   time.Duration
	Priority float64
}

// ProviderMatch is the painter chosen for a request along with the
// availability window that qualified them.
type ProviderMatch struct {
	Availability Availability
	Score        float64
	Candidates   int
}

// BookingSuggestion is the public view of a Suggestion.
type BookingSuggestion struct {
	Painter   PainterRef `json:"painter"`
	StartTime string     `json:"startTime"`
	EndTime   string     `json:"endTime"`
	Message   string     `json:"message"`
}

// BookingErrorResponse is returned when a request cannot be satisfied.
type BookingErrorResponse struct {
	Error       string              `json:"error"`
	Suggestions []BookingSuggestion `json:"suggestions"`
}

// SuggestionResponse is the raw ranked view of a Suggestion.
type SuggestionResponse struct {
	Painter       PainterRef `json:"painter"`
	StartTime     string     `json:"startTime"`
	EndTime       string     `json:"endTime"`
	OffsetMinutes int64      `json:"offsetMinutes"`
	Priority      float64    `json:"priority"`
}

func (s Suggestion) Response() SuggestionResponse {
	return SuggestionResponse{
		Painter:       PainterRef{ID: s.PainterID, Name: s.PainterName},
		StartTime:     s.Start.UTC().Format(time.RFC3339Nano),
		EndTime:       s.End.UTC().Format(time.RFC3339Nano),
		OffsetMinutes: int64(s.Offset / time.Minute),
		Priority:      s.Priority,
	}
}

// WindowQuery carries a window in query parameters.
type WindowQuery struct {
	PainterID string    `form:"painterId"`
	StartTime time.Time `form:"startTime" binding:"required"`
	EndTime   time.Time `form:"endTime" binding:"required"`
	Limit     int       `form:"limit" binding:"omitempty,min=1,max=50"`
}
