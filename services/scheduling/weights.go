package scheduling

import "time"

// Weights tunes the prioritization score and the suggestion ranking.
type Weights struct {
	// EfficiencyWeight is the ceiling of the fit term: requested / available.
	EfficiencyWeight float64
	// WorkloadCeiling minus WorkloadPenalty per confirmed booking, floored at 0.
	WorkloadCeiling float64
	WorkloadPenalty float64
	// RecencyCeiling minus RecencyPenalty per day since the window was declared, floored at 0.
	RecencyCeiling float64
	RecencyPenalty float64
	// SameDayFactor scales the distance of slots on the requested day.
	SameDayFactor float64
}

// SlotStep is how far the suggestion cursor advances each iteration. It is
// fixed and not part of Weights.
const SlotStep = time.Hour

const (
	DefaultEfficiencyWeight = 100.0
	DefaultWorkloadCeiling  = 50.0
	DefaultWorkloadPenalty  = 10.0
	DefaultRecencyCeiling   = 30.0
	DefaultRecencyPenalty   = 2.0
	DefaultSameDayFactor    = 0.01
	DefaultSuggestionLimit  = 3
)

var DefaultWeights = Weights{
	EfficiencyWeight: DefaultEfficiencyWeight,
	WorkloadCeiling:  DefaultWorkloadCeiling,
	WorkloadPenalty:  DefaultWorkloadPenalty,
	RecencyCeiling:   DefaultRecencyCeiling,
	RecencyPenalty:   DefaultRecencyPenalty,
	SameDayFactor:    DefaultSameDayFactor,
}

// withDefaults fills unset fields from DefaultWeights. A zero penalty is kept
// only when its ceiling is also set, so a partial override stays meaningful.
func (w Weights) withDefaults() Weights {
	if w.EfficiencyWeight == 0 {
		w.EfficiencyWeight = DefaultEfficiencyWeight
	}
	if w.WorkloadCeiling == 0 {
		w.WorkloadCeiling = DefaultWorkloadCeiling
		w.WorkloadPenalty = DefaultWorkloadPenalty
	}
	if w.RecencyCeiling == 0 {
		w.RecencyCeiling = DefaultRecencyCeiling
		w.RecencyPenalty = DefaultRecencyPenalty
	}
	if w.SameDayFactor == 0 {
		w.SameDayFactor = DefaultSameDayFactor
	}
	return w
}
