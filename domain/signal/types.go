package signal

import (
	"encoding/json"
	"fmt"
	"sort"

	"prosignal/domain/core"
)

// Strength is the coarse severity label derived from the weighted composite
// of the three scores
type Strength string

const (
	StrengthCritical Strength = "CRITICAL"
	StrengthHigh     Strength = "HIGH"
	StrengthMedium   Strength = "MEDIUM"
	StrengthLow      Strength = "LOW"
	StrengthNoise    Strength = "NOISE"
)

// Level identifies one of the four progressively detailed disclosure tiers
type Level string

const (
	LevelExecutive     Level = "L1_EXECUTIVE"
	LevelStrategic     Level = "L2_STRATEGIC"
	LevelInterventions Level = "L3_INTERVENTIONS"
	LevelDashboards    Level = "L4_DASHBOARDS"
)

// AllLevels lists the tiers in disclosure order
var AllLevels = []Level{LevelExecutive, LevelStrategic, LevelInterventions, LevelDashboards}

// LevelSet is the set of tiers a signal is recommended for. Membership is
// independent per tier: a signal may belong to zero, one, or all four, and
// membership in a higher tier never implies a lower one.
type LevelSet map[Level]bool

// Has reports tier membership
func (s LevelSet) Has(l Level) bool { return s[l] }

// Levels returns the members in disclosure order
func (s LevelSet) Levels() []Level {
	out := make([]Level, 0, len(s))
	for _, l := range AllLevels {
		if s[l] {
			out = append(out, l)
		}
	}
	return out
}

// MarshalJSON renders the set as a sorted array of tier labels
func (s LevelSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Levels())
}

// UnmarshalJSON accepts an array of tier labels
func (s *LevelSet) UnmarshalJSON(data []byte) error {
	var labels []Level
	if err := json.Unmarshal(data, &labels); err != nil {
		return err
	}
	set := make(LevelSet, len(labels))
	for _, l := range labels {
		set[l] = true
	}
	*s = set
	return nil
}

// Signal is one classified observation. Immutable after construction: the
// engine derives strength and tier memberships exactly once and never
// recomputes or rewrites them.
type Signal struct {
	ID             core.SignalID     `json:"id"`
	Insight        string            `json:"insight"`
	Value          Value             `json:"value"`
	Confidence     float64           `json:"confidence"`      // 0.0-1.0, caller contract
	BusinessImpact float64           `json:"business_impact"` // 0.0-1.0, caller contract
	Actionability  float64           `json:"actionability"`   // 0.0-1.0, caller contract
	SourceModule   string            `json:"source_module"`
	MetricName     string            `json:"metric_name,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	Strength       Strength          `json:"signal_strength"`
	Levels         LevelSet          `json:"recommended_levels"`
	CreatedAt      core.Timestamp    `json:"created_at"`

	// insertion index in the engine collection, used for the metric key
	// fallback and stable tie-breaking
	index int
}

// New constructs a classified signal. The value is normalized here (float
// variant rounded to 2 decimals) and the strength and tier memberships are
// derived against the supplied policy. index is the signal's insertion
// position in the owning collection.
func New(index int, insight string, value Value, confidence, businessImpact, actionability float64, sourceModule, metricName string, metadata map[string]string, policy ThresholdPolicy) Signal {
	return Signal{
		ID:             core.SignalID(core.NewID()),
		Insight:        insight,
		Value:          NormalizeValue(value),
		Confidence:     confidence,
		BusinessImpact: businessImpact,
		Actionability:  actionability,
		SourceModule:   sourceModule,
		MetricName:     metricName,
		Metadata:       metadata,
		Strength:       ClassifyStrength(confidence, businessImpact, actionability),
		Levels:         RecommendLevels(confidence, businessImpact, actionability, policy),
		CreatedAt:      core.Now(),
		index:          index,
	}
}

// Index returns the signal's insertion position in the owning collection
func (s Signal) Index() int { return s.index }

// MetricKey returns the metric name, or the {source_module}_{index} fallback
// when the producer supplied none
func (s Signal) MetricKey() string {
	if s.MetricName != "" {
		return s.MetricName
	}
	return fmt.Sprintf("%s_%d", s.SourceModule, s.index)
}

// Timeframe returns the metadata timeframe, or the given default
func (s Signal) Timeframe(fallback string) string {
	if tf, ok := s.Metadata["timeframe"]; ok && tf != "" {
		return tf
	}
	return fallback
}

// SortStable sorts signals by the given less function, keeping insertion
// order for ties
func SortStable(signals []Signal, less func(a, b Signal) bool) {
	sort.SliceStable(signals, func(i, j int) bool {
		return less(signals[i], signals[j])
	})
}
