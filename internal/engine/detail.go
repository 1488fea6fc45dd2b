package engine

import (
	"prosignal/domain/report"
	"prosignal/domain/signal"
)

// GenerateDetail produces the L4 boundary payload: the dashboard-eligible
// signal set (capped at the policy's L4 limit) plus per-module score
// aggregates and the count of noise-grade signals filtered across the whole
// collection. Rendering this into query documents is the downstream
// collaborator's job - see ports.QueryGeneratorPort.
func (e *Engine) GenerateDetail() report.DetailPayload {
	eligible := e.eligible(signal.LevelDashboards)
	if max := e.policy.L4MaxSignals; len(eligible) > max {
		eligible = eligible[:max]
	}

	type scores struct {
		confidences []float64
		impacts     []float64
	}
	perModule := make(map[string]*scores)
	for _, s := range eligible {
		sc, ok := perModule[s.SourceModule]
		if !ok {
			sc = &scores{}
			perModule[s.SourceModule] = sc
		}
		sc.confidences = append(sc.confidences, s.Confidence)
		sc.impacts = append(sc.impacts, s.BusinessImpact)
	}

	aggregates := make(map[string]report.ModuleAggregate, len(perModule))
	for module, sc := range perModule {
		aggregates[module] = report.ModuleAggregate{
			SignalCount:       len(sc.confidences),
			AvgConfidence:     mean(sc.confidences),
			AvgBusinessImpact: mean(sc.impacts),
		}
	}

	noise := 0
	for _, s := range e.signals {
		if s.Strength == signal.StrengthNoise {
			noise++
		}
	}

	if eligible == nil {
		eligible = []signal.Signal{}
	}
	return report.DetailPayload{
		FilteredSignals:    eligible,
		ModuleAggregates:   aggregates,
		FilteredNoiseCount: noise,
	}
}
