// Package kpi holds the heuristic lookup tables behind the tactical tier:
// intervention timelines per severity and suggested success metrics per
// producer family. Configuration detail, not algorithm - the tables can
// evolve without touching the generators.
package kpi

import (
	"strings"

	"prosignal/domain/signal"
)

// Timeline suggests an intervention window for a signal severity
func Timeline(strength signal.Strength) string {
	switch strength {
	case signal.StrengthCritical:
		return "Immediate (1-2 weeks)"
	case signal.StrengthHigh:
		return "Short-term (2-4 weeks)"
	default:
		return "Medium-term (4-8 weeks)"
	}
}

// SuccessMetricMapper suggests KPIs for an intervention, keyed first by the
// producer module family and then by keyword substrings in the insight.
// Families are matched in table order, so a module name spanning two families
// always resolves to the first.
type SuccessMetricMapper struct {
	families []familyMetrics
}

type familyMetrics struct {
	family  string
	entries []keywordMetrics
}

type keywordMetrics struct {
	keyword string // empty keyword is the family default
	metrics []string
}

// NewSuccessMetricMapper builds the standard family/keyword KPI table
func NewSuccessMetricMapper() *SuccessMetricMapper {
	return &SuccessMetricMapper{
		families: []familyMetrics{
			{"Creative", []keywordMetrics{
				{"text length", []string{"Ad text character count", "Engagement rate by text variant"}},
				{"emotional", []string{"Emotional resonance score", "Click-through rate"}},
				{"fatigue", []string{"Creative refresh cadence", "Frequency-adjusted CTR"}},
				{"", []string{"Creative engagement rate", "Conversion rate by creative"}},
			}},
			{"Channel", []keywordMetrics{
				{"cross-platform", []string{"Cross-platform reach overlap", "Cost per acquisition by platform"}},
				{"alignment", []string{"Budget-to-performance alignment", "Channel ROI spread"}},
				{"", []string{"Channel conversion rate", "Cost per acquisition"}},
			}},
			{"Visual", []keywordMetrics{
				{"alignment", []string{"Visual brand alignment score", "Asset reuse rate"}},
				{"fatigue", []string{"Visual refresh cadence", "Impression-weighted engagement"}},
				{"", []string{"Visual engagement rate", "Scroll-stop rate"}},
			}},
		},
	}
}

// SuccessMetrics suggests KPIs for an intervention. The list always starts
// with the implementation completion rate; family-and-keyword matches add
// their canned KPIs, and a generic pair covers everything else.
func (m *SuccessMetricMapper) SuccessMetrics(module, insight string) []string {
	metrics := []string{"Implementation completion rate"}
	insightLower := strings.ToLower(insight)

	for _, fam := range m.families {
		if !strings.Contains(module, fam.family) {
			continue
		}
		var familyDefault []string
		for _, entry := range fam.entries {
			if entry.keyword == "" {
				familyDefault = entry.metrics
				continue
			}
			if strings.Contains(insightLower, entry.keyword) {
				return append(metrics, entry.metrics...)
			}
		}
		return append(metrics, familyDefault...)
	}

	return append(metrics, "Performance improvement %", "Strategic goal achievement")
}
