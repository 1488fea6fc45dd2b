// Package temporal rewrites insight text with trend context before a signal
// is constructed. Pure decision table, no side effects: the engine never
// mutates a signal after creation, so framing always produces the final
// insight string up front.
package temporal

import (
	"fmt"
	"strings"
)

// DefaultTimeframe fills the {timeframe} slot when the producer supplied
// none in metadata
const DefaultTimeframe = "recent weeks"

// Frame appends trend-aware context to a base insight. Directional meaning
// is polarity-dependent: for threat/competitive wording an increasing trend
// is bad (threat accelerating), for performance/optimization wording the
// polarity flips. The only polarity signal available is keyword matching on
// the insight text itself ("competitor", "copying", "optimization") - there
// is no explicit polarity field, and producers must word insights
// accordingly.
func Frame(baseInsight string, currentValue float64, metricName string, metadata map[string]string) string {
	timeframe := DefaultTimeframe
	if tf, ok := metadata["timeframe"]; ok && tf != "" {
		timeframe = tf
	}

	trend, ok := metadata["temporal_trend"]
	if !ok {
		return baseInsight + frameByMagnitude(currentValue)
	}

	insightLower := strings.ToLower(baseInsight)
	threat := strings.Contains(insightLower, "competitor") || strings.Contains(insightLower, "copying")

	switch trend {
	case "increasing":
		if threat {
			return baseInsight + fmt.Sprintf(" - threat accelerating over %s, competitive pressure increasing", timeframe)
		}
		return baseInsight + fmt.Sprintf(" - improving trend over %s", timeframe)
	case "decreasing":
		if threat {
			return baseInsight + fmt.Sprintf(" - threat diminishing over %s, competitive pressure decreasing", timeframe)
		}
		if strings.Contains(insightLower, "optimization") {
			return baseInsight + fmt.Sprintf(" - declining performance over %s, immediate action required", timeframe)
		}
		return baseInsight + fmt.Sprintf(" - concerning downward trend over %s", timeframe)
	case "volatile":
		return baseInsight + fmt.Sprintf(" - unstable pattern over %s, requires monitoring", timeframe)
	default:
		// "stable" and any unrecognized trend label.
		return baseInsight + fmt.Sprintf(" - stable pattern over %s", timeframe)
	}
}

// frameByMagnitude covers the no-trend-metadata case: the current value
// stands in for the missing trend label
func frameByMagnitude(currentValue float64) string {
	switch {
	case currentValue < 0.3:
		return " - requires immediate attention based on recent decline"
	case currentValue > 0.8:
		return " - building on recent strong performance"
	default:
		return " - shows emerging competitive dynamics"
	}
}
