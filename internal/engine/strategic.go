package engine

import (
	"fmt"
	"strings"

	"prosignal/domain/report"
	"prosignal/domain/signal"
)

// strategicRank is the L2 ordering key inside each module group
func strategicRank(s signal.Signal) float64 {
	return s.Confidence * s.BusinessImpact
}

// GenerateStrategic synthesizes the L2 report: per-module intelligence
// rollups plus cross-module pattern heuristics and the top strategic
// priorities.
func (e *Engine) GenerateStrategic() report.StrategicReport {
	eligible := e.eligible(signal.LevelStrategic)

	// Group by producer module, keeping insertion order within each group.
	moduleOrder := make([]string, 0)
	groups := make(map[string][]signal.Signal)
	for _, s := range eligible {
		if _, seen := groups[s.SourceModule]; !seen {
			moduleOrder = append(moduleOrder, s.SourceModule)
		}
		groups[s.SourceModule] = append(groups[s.SourceModule], s)
	}

	intelligence := make(map[string]report.ModuleIntelligence, len(groups))
	for _, module := range moduleOrder {
		intelligence[module] = rollupModule(module, groups[module])
	}

	return report.StrategicReport{
		StrategicIntelligence: intelligence,
		CrossModulePatterns:   crossModulePatterns(moduleOrder, groups),
		StrategicPriorities:   strategicPriorities(eligible),
		TotalSignals:          len(eligible),
		ModulesActive:         len(groups),
	}
}

// rollupModule builds the per-module intelligence block: top insights by
// confidence*impact, up to three key numeric metrics, and group score means
func rollupModule(module string, group []signal.Signal) report.ModuleIntelligence {
	ranked := make([]signal.Signal, len(group))
	copy(ranked, group)
	signal.SortStable(ranked, func(a, b signal.Signal) bool {
		return strategicRank(a) > strategicRank(b)
	})

	insights := make([]string, 0, 5)
	for _, s := range ranked {
		if len(insights) == 5 {
			break
		}
		insights = append(insights, s.Insight)
	}

	normalized := strings.ReplaceAll(strings.ToLower(module), " ", "_")
	keyMetrics := make(map[string]float64)
	for _, s := range ranked {
		if len(keyMetrics) == 3 {
			break
		}
		if num, ok := signal.AsNumber(s.Value); ok {
			keyMetrics[fmt.Sprintf("%s_%d", normalized, len(keyMetrics))] = num
		}
	}

	confidences := make([]float64, len(group))
	impacts := make([]float64, len(group))
	for i, s := range group {
		confidences[i] = s.Confidence
		impacts[i] = s.BusinessImpact
	}

	return report.ModuleIntelligence{
		Insights:          insights,
		KeyMetrics:        keyMetrics,
		ConfidenceAvg:     mean(confidences),
		BusinessImpactAvg: mean(impacts),
		SignalCount:       len(group),
	}
}

// crossModulePatterns evaluates the independent pattern heuristics over the
// grouped L2 set. Each heuristic appends at most one line.
func crossModulePatterns(moduleOrder []string, groups map[string][]signal.Signal) []string {
	patterns := make([]string, 0, 5)

	if len(groups) >= 2 {
		patterns = append(patterns, fmt.Sprintf("Multi-module intelligence available from %d sources", len(groups)))
	}

	highConfidenceModules := 0
	for _, group := range groups {
		for _, s := range group {
			if s.Confidence >= 0.7 {
				highConfidenceModules++
				break
			}
		}
	}
	if highConfidenceModules >= 2 {
		patterns = append(patterns, "Consistent high-confidence insights across multiple intelligence modules")
	}

	hasFamily := func(family string) bool {
		for _, module := range moduleOrder {
			if strings.Contains(module, family) {
				return true
			}
		}
		return false
	}

	creative := hasFamily("Creative")
	channel := hasFamily("Channel")
	visual := hasFamily("Visual")

	if creative && channel {
		patterns = append(patterns, "Creative and Channel intelligence align - creative insights can inform channel allocation")
	}
	if visual && creative {
		patterns = append(patterns, "Visual and Creative intelligence align - visual trends can sharpen creative positioning")
	}

	active := make([]string, 0, 3)
	if creative {
		active = append(active, "Creative")
	}
	if channel {
		active = append(active, "Channel")
	}
	if visual {
		active = append(active, "Visual")
	}
	if len(active) >= 2 {
		patterns = append(patterns, fmt.Sprintf("Intelligence families active: %s", strings.Join(active, ", ")))
	}

	return patterns
}

// strategicPriorities lists the top three high-impact findings as
// module-prefixed summaries
func strategicPriorities(eligible []signal.Signal) []string {
	var highImpact []signal.Signal
	for _, s := range eligible {
		if s.BusinessImpact >= 0.7 {
			highImpact = append(highImpact, s)
		}
	}

	signal.SortStable(highImpact, func(a, b signal.Signal) bool {
		return a.BusinessImpact > b.BusinessImpact
	})
	if len(highImpact) > 3 {
		highImpact = highImpact[:3]
	}

	priorities := make([]string, 0, len(highImpact))
	for _, s := range highImpact {
		// Truncate on runes so multi-byte insights keep valid UTF-8.
		summary := []rune(s.Insight)
		if len(summary) > 100 {
			summary = summary[:100]
		}
		priorities = append(priorities, fmt.Sprintf("%s: %s...", s.SourceModule, string(summary)))
	}
	return priorities
}
