package engine

import (
	"gonum.org/v1/gonum/stat"

	"prosignal/domain/report"
	"prosignal/domain/signal"
)

// Stats summarizes the whole collection for engine monitoring. ByLevel
// counts a signal once per tier it belongs to, so their sum may exceed
// TotalSignals.
func (e *Engine) Stats() report.EngineStats {
	byStrength := make(map[string]int)
	byModule := make(map[string]int)
	byLevel := make(map[string]int)

	confidences := make([]float64, len(e.signals))
	impacts := make([]float64, len(e.signals))
	actionabilities := make([]float64, len(e.signals))
	actionable := 0

	for i, s := range e.signals {
		byStrength[string(s.Strength)]++
		byModule[s.SourceModule]++
		for _, level := range s.Levels.Levels() {
			byLevel[string(level)]++
		}
		confidences[i] = s.Confidence
		impacts[i] = s.BusinessImpact
		actionabilities[i] = s.Actionability
		if s.Strength != signal.StrengthNoise {
			actionable++
		}
	}

	efficiency := 0.0
	stdDev := 0.0
	if len(e.signals) > 0 {
		efficiency = float64(actionable) / float64(len(e.signals))
	}
	if len(e.signals) > 1 {
		// Sample standard deviation is undefined for a single signal.
		stdDev = stat.StdDev(confidences, nil)
	}

	return report.EngineStats{
		TotalSignals:        len(e.signals),
		ByStrength:          byStrength,
		ByModule:            byModule,
		ByLevel:             byLevel,
		AvgConfidence:       mean(confidences),
		AvgBusinessImpact:   mean(impacts),
		AvgActionability:    mean(actionabilities),
		ConfidenceStdDev:    stdDev,
		FrameworkEfficiency: efficiency,
	}
}
