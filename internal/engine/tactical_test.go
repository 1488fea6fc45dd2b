package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prosignal/domain/signal"
)

func TestGenerateInterventions_BucketsBySeverity(t *testing.T) {
	e := New()
	// CRITICAL, L3-eligible.
	e.AddSignal("rotate fatigued creative", signal.Float(0.92), 0.9, 0.85, 0.95, "Creative Analyzer", "", nil)
	// HIGH, L3-eligible.
	e.AddSignal("rebalance channel split", signal.Float(0.61), 0.65, 0.6, 0.7, "Channel Analyzer", "", nil)
	// MEDIUM, L3-eligible.
	e.AddSignal("watch visual alignment drift", signal.Float(0.5), 0.45, 0.4, 0.65, "Visual Analyzer", "", nil)
	// HIGH but below the actionability gate: not L3-eligible at all.
	e.AddSignal("hard-to-action structural issue", signal.Float(0.7), 0.7, 0.7, 0.3, "Channel Analyzer", "", nil)

	l3 := e.GenerateInterventions()
	require.Len(t, l3.ImmediateActions, 1)
	require.Len(t, l3.ShortTermTactics, 1)
	require.Len(t, l3.MonitoringActions, 1)

	immediate := l3.ImmediateActions[0]
	assert.Equal(t, "rotate fatigued creative", immediate.Action)
	assert.Equal(t, "Based on Creative Analyzer analysis", immediate.Rationale)
	assert.Equal(t, "Immediate (1-2 weeks)", immediate.Timeline)
	assert.Equal(t, "CRITICAL", immediate.Priority)
	assert.Equal(t, "Implementation completion rate", immediate.SuccessMetrics[0])
	assert.Equal(t, signal.FloatValue(0.92), immediate.Value)

	assert.Equal(t, "Short-term (2-4 weeks)", l3.ShortTermTactics[0].Timeline)
	assert.Equal(t, "HIGH", l3.ShortTermTactics[0].Priority)
	assert.Equal(t, "Medium-term (4-8 weeks)", l3.MonitoringActions[0].Timeline)
	assert.Equal(t, "MEDIUM", l3.MonitoringActions[0].Priority)

	summary := l3.InterventionSummary
	assert.Equal(t, 1, summary.ImmediateCount)
	assert.Equal(t, 1, summary.ShortTermCount)
	assert.Equal(t, 1, summary.MonitoringCount)
	// Means run over the three L3-eligible signals only.
	assert.InDelta(t, (0.9+0.65+0.45)/3, summary.AvgConfidence, 1e-9)
	assert.InDelta(t, (0.95+0.7+0.65)/3, summary.AvgActionability, 1e-9)
}

func TestGenerateInterventions_BucketsSortByActionability(t *testing.T) {
	e := New()
	// Three HIGH signals with ascending actionability.
	e.AddSignal("least actionable", signal.Int(1), 0.65, 0.6, 0.62, "M", "", nil)
	e.AddSignal("most actionable", signal.Int(2), 0.65, 0.6, 0.9, "M", "", nil)
	e.AddSignal("middle", signal.Int(3), 0.65, 0.6, 0.75, "M", "", nil)

	l3 := e.GenerateInterventions()
	require.Len(t, l3.ShortTermTactics, 3)
	assert.Equal(t, "most actionable", l3.ShortTermTactics[0].Action)
	assert.Equal(t, "middle", l3.ShortTermTactics[1].Action)
	assert.Equal(t, "least actionable", l3.ShortTermTactics[2].Action)
}

func TestGenerateInterventions_SuccessMetricsPerFamily(t *testing.T) {
	e := New()
	e.AddSignal("emotional hooks missing from copy", signal.Int(1), 0.65, 0.6, 0.7, "Creative Analyzer", "", nil)

	l3 := e.GenerateInterventions()
	require.Len(t, l3.ShortTermTactics, 1)
	assert.Contains(t, l3.ShortTermTactics[0].SuccessMetrics, "Emotional resonance score")
}
