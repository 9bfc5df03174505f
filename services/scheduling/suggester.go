package scheduling

import (
	"context"
	"sort"

	"painterbook/models"

	"go.uber.org/zap"
)

// SuggestAlternatives scans every future availability window hour by hour for
// free slots of the requested length. Each slot's priority is its distance in
// milliseconds from the requested start, scaled down by SameDayFactor when it
// falls on the requested day. The scan is exhaustive; results are sorted
// ascending by priority and cut to limit.
func (e *DefaultMatchingEngine) SuggestAlternatives(ctx context.Context, window models.TimeWindow, limit int) ([]models.Suggestion, error) {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	w := e.weights()
	now := e.now()
	duration := window.Duration()

	availabilities, err := e.Availability.Query(ctx, models.AvailabilityFilter{EndsAfter: now})
	if err != nil {
		return nil, err
	}

	index := newBookingIndex(e.Bookings)
	suggestions := []models.Suggestion{}
	for _, availability := range availabilities {
		cursor := availability.Start
		if now.After(cursor) {
			cursor = now
		}

		for !cursor.Add(duration).After(availability.End) {
			slot := models.TimeWindow{Start: cursor, End: cursor.Add(duration)}
			conflict, err := index.hasConflict(ctx, availability.PainterID, slot)
			if err != nil {
				return nil, err
			}
			if !conflict {
				suggestions = append(suggestions, newSuggestion(w, availability.PainterID, slot, window))
			}
			cursor = cursor.Add(SlotStep)
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Priority < suggestions[j].Priority
	})

	e.logger().Debug("scanned for alternative slots",
		zap.Int("availabilities", len(availabilities)),
		zap.Int("found", len(suggestions)),
		zap.Int("limit", limit))

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}

func newSuggestion(w Weights, painterID string, slot, requested models.TimeWindow) models.Suggestion {
	offset := slot.Start.Sub(requested.Start)
	if offset < 0 {
		offset = -offset
	}
	priority := float64(offset.Milliseconds())
	if models.SameDay(slot.Start, requested.Start) {
		priority *= w.SameDayFactor
	}
	return models.Suggestion{
		PainterID:   painterID,
		PainterName: DerivePainterName(painterID),
		TimeWindow:  slot,
		Offset:      offset,
		Priority:    priority,
	}
}
