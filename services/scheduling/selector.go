package scheduling

import (
	"context"

	"painterbook/models"

	"go.uber.org/zap"
)

// FindProviderFor selects the painter for window. Only windows that fully
// contain the request qualify, and painters with a conflicting booking are
// dropped. A single survivor is returned as is; several go through prioritize.
func (e *DefaultMatchingEngine) FindProviderFor(ctx context.Context, window models.TimeWindow) (*models.ProviderMatch, error) {
	covering, err := e.Availability.Query(ctx, models.AvailabilityFilter{Covering: &window})
	if err != nil {
		return nil, err
	}

	candidates := make([]models.Availability, 0, len(covering))
	for _, availability := range covering {
		conflict, err := e.CheckConflict(ctx, availability.PainterID, window)
		if err != nil {
			return nil, err
		}
		e.logger().Debug("checked painter for requested window",
			zap.String("painterID", availability.PainterID),
			zap.Time("availableStart", availability.Start),
			zap.Time("availableEnd", availability.End),
			zap.Time("requestedStart", window.Start),
			zap.Time("requestedEnd", window.End),
			zap.Bool("hasConflict", conflict))
		if !conflict {
			candidates = append(candidates, availability)
		}
	}

	switch len(candidates) {
	case 0:
		return nil, ErrNoProviderAvailable
	case 1:
		return &models.ProviderMatch{Availability: candidates[0], Candidates: 1}, nil
	}

	ranked, err := e.prioritize(ctx, candidates, window)
	if err != nil {
		return nil, err
	}
	best := ranked[0]
	return &models.ProviderMatch{
		Availability: best.Availability,
		Score:        best.Total,
		Candidates:   len(candidates),
	}, nil
}
