package scheduling

import (
	"context"
	"math"
	"sort"
	"time"

	"painterbook/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxScoringConcurrency bounds the parallel booking count queries.
const maxScoringConcurrency = 8

// PainterScore is the breakdown of one candidate's composite score.
type PainterScore struct {
	Availability models.Availability
	Efficiency   float64
	Workload     float64
	Recency      float64
	Total        float64
}

// prioritize scores every candidate and returns them best first. Candidates
// with equal totals keep their input order.
func (e *DefaultMatchingEngine) prioritize(ctx context.Context, candidates []models.Availability, window models.TimeWindow) ([]PainterScore, error) {
	w := e.weights()
	now := e.now()

	scores := make([]PainterScore, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxScoringConcurrency)
	for i, availability := range candidates {
		g.Go(func() error {
			confirmed, err := e.Bookings.Count(gctx, availability.PainterID, models.BookingConfirmed)
			if err != nil {
				return err
			}
			scores[i] = scorePainter(w, availability, window, confirmed, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Total > scores[j].Total
	})

	fields := make([]zap.Field, 0, len(scores)+1)
	fields = append(fields, zap.Int("candidates", len(scores)))
	for _, s := range scores {
		fields = append(fields, zap.Float64(s.Availability.PainterID, math.Round(s.Total*10)/10))
	}
	e.logger().Info("prioritized painters", fields...)
	e.logger().Info("selected painter",
		zap.String("painterID", scores[0].Availability.PainterID),
		zap.Float64("score", scores[0].Total))

	return scores, nil
}

// scorePainter computes the three independent terms for one candidate.
func scorePainter(w Weights, availability models.Availability, window models.TimeWindow, confirmed int64, now time.Time) PainterScore {
	s := PainterScore{Availability: availability}

	if available := availability.Duration(); available > 0 {
		s.Efficiency = w.EfficiencyWeight * float64(window.Duration()) / float64(available)
	}
	s.Workload = math.Max(w.WorkloadCeiling-w.WorkloadPenalty*float64(confirmed), 0)

	days := math.Max(now.Sub(availability.CreatedAt).Hours()/24, 0)
	s.Recency = math.Max(w.RecencyCeiling-w.RecencyPenalty*days, 0)

	s.Total = s.Efficiency + s.Workload + s.Recency
	return s
}
