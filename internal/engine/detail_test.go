package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prosignal/domain/signal"
)

func TestGenerateDetail_FiltersAndAggregates(t *testing.T) {
	e := New()
	e.AddSignal("kept one", signal.Float(0.5), 0.6, 0.4, 0.5, "Creative Analyzer", "", nil)
	e.AddSignal("kept two", signal.Float(0.7), 0.4, 0.6, 0.5, "Creative Analyzer", "", nil)
	e.AddSignal("kept three", signal.Float(0.3), 0.5, 0.5, 0.5, "Channel Analyzer", "", nil)
	// NOISE, below the L4 confidence gate: filtered and counted.
	e.AddSignal("noise", signal.Float(0.1), 0.1, 0.1, 0.1, "Channel Analyzer", "", nil)

	l4 := e.GenerateDetail()
	require.Len(t, l4.FilteredSignals, 3)
	assert.Equal(t, 1, l4.FilteredNoiseCount)

	creative := l4.ModuleAggregates["Creative Analyzer"]
	assert.Equal(t, 2, creative.SignalCount)
	assert.InDelta(t, 0.5, creative.AvgConfidence, 1e-9)
	assert.InDelta(t, 0.5, creative.AvgBusinessImpact, 1e-9)

	channel := l4.ModuleAggregates["Channel Analyzer"]
	assert.Equal(t, 1, channel.SignalCount)
}

func TestGenerateDetail_NoiseCountIsCollectionWide(t *testing.T) {
	e := New()
	// NOISE by composite but above the L4 confidence gate: it appears in
	// the filtered set and still counts as noise.
	e.AddSignal("weak but present", signal.Float(0.2), 0.25, 0.1, 0.1, "M", "", nil)

	l4 := e.GenerateDetail()
	assert.Len(t, l4.FilteredSignals, 1)
	assert.Equal(t, 1, l4.FilteredNoiseCount)
}

func TestGenerateDetail_CapsAtPolicyLimit(t *testing.T) {
	policy := signal.DefaultThresholdPolicy()
	policy.L4MaxSignals = 3
	e := NewWithPolicy(policy)
	for i := 0; i < 5; i++ {
		e.AddSignal(fmt.Sprintf("s%d", i), signal.Int(int64(i)), 0.5, 0.5, 0.5, "M", "", nil)
	}

	l4 := e.GenerateDetail()
	assert.Len(t, l4.FilteredSignals, 3)
	// Insertion order wins: the earliest signals are kept.
	assert.Equal(t, "s0", l4.FilteredSignals[0].Insight)
}
