package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStrength_Boundaries(t *testing.T) {
	tests := []struct {
		name                                      string
		confidence, businessImpact, actionability float64
		expected                                  Strength
	}{
		// composite 0.4*0.7+0.4*0.9+0.2*1.0 = 0.84, confidence floor met
		{"critical at composite 0.84", 0.7, 0.9, 1.0, StrengthCritical},
		// composite 0.54 misses HIGH's 0.6 floor, lands in MEDIUM
		{"medium at composite 0.54", 0.5, 0.7, 0.3, StrengthMedium},
		// composite 0.65 but confidence 0.4 fails HIGH's confidence floor
		{"confidence floor demotes high to medium", 0.4, 0.85, 0.65, StrengthMedium},
		{"high at composite 0.6 exactly", 0.5, 0.6, 0.8, StrengthHigh},
		{"low at composite 0.2 exactly", 0.2, 0.2, 0.2, StrengthLow},
		{"noise below composite 0.2", 0.1, 0.1, 0.1, StrengthNoise},
		// composite 0.44 with confidence below MEDIUM's 0.3 floor falls to LOW
		{"confidence floor demotes medium to low", 0.2, 0.7, 0.4, StrengthLow},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := ClassifyStrength(test.confidence, test.businessImpact, test.actionability)
			assert.Equal(t, test.expected, got)
		})
	}
}

func TestCompositeScore_Weights(t *testing.T) {
	assert.InDelta(t, 0.84, CompositeScore(0.7, 0.9, 1.0), 1e-9)
	assert.InDelta(t, 0.54, CompositeScore(0.5, 0.7, 0.3), 1e-9)
	assert.InDelta(t, 0.0, CompositeScore(0, 0, 0), 1e-9)
	assert.InDelta(t, 1.0, CompositeScore(1, 1, 1), 1e-9)
}

func TestRecommendLevels_IndependentPredicates(t *testing.T) {
	policy := DefaultThresholdPolicy()

	// Highly actionable but low impact: L3 without L2, L4 rides along on
	// confidence alone.
	levels := RecommendLevels(0.45, 0.1, 0.9, policy)
	assert.Equal(t, []Level{LevelInterventions, LevelDashboards}, levels.Levels())
	assert.False(t, levels.Has(LevelExecutive))
	assert.False(t, levels.Has(LevelStrategic))

	// Confidence exactly 0.3 clears only the L4 gate.
	levels = RecommendLevels(0.3, 0.9, 0.9, policy)
	assert.Equal(t, []Level{LevelDashboards}, levels.Levels())

	// Top scores clear everything.
	levels = RecommendLevels(0.9, 0.9, 0.9, policy)
	assert.Equal(t, AllLevels, levels.Levels())

	// Nothing clears anything.
	levels = RecommendLevels(0.1, 0.9, 0.9, policy)
	assert.Empty(t, levels.Levels())
}

func TestRecommendLevels_CustomPolicy(t *testing.T) {
	policy := DefaultThresholdPolicy()
	policy.L1MinConfidence = 0.5
	policy.L1MinBusinessImpact = 0.4

	levels := RecommendLevels(0.55, 0.45, 0.0, policy)
	assert.True(t, levels.Has(LevelExecutive))
	assert.False(t, levels.Has(LevelStrategic), "L2 keeps its own gates")
}
