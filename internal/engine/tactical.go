package engine

import (
	"fmt"
	"sort"

	"prosignal/domain/report"
	"prosignal/domain/signal"
	"prosignal/internal/kpi"
)

// GenerateInterventions synthesizes the L3 report: intervention-eligible
// signals bucketed by severity into immediate, short-term, and monitoring
// actions, each bucket ordered by actionability.
func (e *Engine) GenerateInterventions() report.InterventionReport {
	eligible := e.eligible(signal.LevelInterventions)
	mapper := kpi.NewSuccessMetricMapper()

	var immediate, shortTerm, monitoring []report.InterventionAction
	for _, s := range eligible {
		action := buildAction(s, mapper)
		switch s.Strength {
		case signal.StrengthCritical:
			immediate = append(immediate, action)
		case signal.StrengthHigh:
			shortTerm = append(shortTerm, action)
		default:
			monitoring = append(monitoring, action)
		}
	}

	sortByActionability(immediate)
	sortByActionability(shortTerm)
	sortByActionability(monitoring)

	confidences := make([]float64, len(eligible))
	actionabilities := make([]float64, len(eligible))
	for i, s := range eligible {
		confidences[i] = s.Confidence
		actionabilities[i] = s.Actionability
	}

	return report.InterventionReport{
		ImmediateActions:  immediate,
		ShortTermTactics:  shortTerm,
		MonitoringActions: monitoring,
		InterventionSummary: report.InterventionSummary{
			ImmediateCount:   len(immediate),
			ShortTermCount:   len(shortTerm),
			MonitoringCount:  len(monitoring),
			AvgConfidence:    mean(confidences),
			AvgActionability: mean(actionabilities),
		},
	}
}

// buildAction turns a signal into a tactical entry
func buildAction(s signal.Signal, mapper *kpi.SuccessMetricMapper) report.InterventionAction {
	return report.InterventionAction{
		Action:         s.Insight,
		Rationale:      fmt.Sprintf("Based on %s analysis", s.SourceModule),
		Confidence:     s.Confidence,
		BusinessImpact: s.BusinessImpact,
		Actionability:  s.Actionability,
		Timeline:       kpi.Timeline(s.Strength),
		SuccessMetrics: mapper.SuccessMetrics(s.SourceModule, s.Insight),
		SourceModule:   s.SourceModule,
		Value:          s.Value,
		Priority:       actionPriority(s.Strength),
	}
}

// actionPriority labels the bucket a severity maps into
func actionPriority(strength signal.Strength) string {
	switch strength {
	case signal.StrengthCritical:
		return "CRITICAL"
	case signal.StrengthHigh:
		return "HIGH"
	default:
		return "MEDIUM"
	}
}

// sortByActionability orders a bucket descending; ties keep insertion order
func sortByActionability(actions []report.InterventionAction) {
	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Actionability > actions[j].Actionability
	})
}
