package engine

import (
	"prosignal/domain/report"
	"prosignal/domain/signal"
)

// executiveRank is the L1 ordering key: business impact weighted over
// confidence
func executiveRank(s signal.Signal) float64 {
	return 0.4*s.Confidence + 0.6*s.BusinessImpact
}

// GenerateExecutive synthesizes the L1 report: the top executive-eligible
// signals ranked by weighted impact, with a threat-level heuristic over the
// shown set. A zero-signal engine yields a fully-populated zero-valued
// report, never an error.
func (e *Engine) GenerateExecutive() report.ExecutiveReport {
	eligible := e.eligible(signal.LevelExecutive)

	// Stable sort: ties keep insertion order.
	signal.SortStable(eligible, func(a, b signal.Signal) bool {
		return executiveRank(a) > executiveRank(b)
	})

	shown := eligible
	if max := e.policy.L1MaxSignals; len(shown) > max {
		shown = shown[:max]
	}

	insights := make([]string, 0, len(shown))
	metrics := make(map[string]float64)
	confidences := make([]float64, 0, len(shown))
	for _, s := range shown {
		insights = append(insights, s.Insight)
		confidences = append(confidences, s.Confidence)
		if num, ok := signal.AsNumber(s.Value); ok {
			metrics[s.MetricKey()] = num
		}
	}

	return report.ExecutiveReport{
		ExecutiveInsights: insights,
		CriticalMetrics:   metrics,
		ThreatLevel:       assessThreatLevel(shown),
		ConfidenceScore:   mean(confidences),
		SignalCount:       len(shown),
		FilteredSignals:   len(eligible) - len(shown),
	}
}

// assessThreatLevel derives an overall threat label from the strength mix of
// the shown executive set
func assessThreatLevel(shown []signal.Signal) report.ThreatLevel {
	if len(shown) == 0 {
		return report.ThreatUnknown
	}

	var criticals, highs int
	for _, s := range shown {
		switch s.Strength {
		case signal.StrengthCritical:
			criticals++
		case signal.StrengthHigh:
			highs++
		}
	}

	switch {
	case criticals >= 2:
		return report.ThreatCritical
	case criticals >= 1 || highs >= 3:
		return report.ThreatHigh
	case highs >= 1:
		return report.ThreatMedium
	default:
		return report.ThreatLow
	}
}
