// Package engine implements the progressive signal intelligence engine: an
// append-only collection of classified signals plus the four tier report
// generators and framework telemetry over it.
package engine

import (
	"github.com/montanaflynn/stats"

	"prosignal/domain/signal"
)

// Engine accumulates classified signals and synthesizes the four tier
// reports on demand. It holds one mutable in-memory slice; AddSignal mutates
// it and the generators only read it. The engine performs no internal
// synchronization and is not safe for concurrent mutation - wrap it with
// external mutual exclusion if producers run concurrently.
type Engine struct {
	policy  signal.ThresholdPolicy
	signals []signal.Signal
}

// New creates an engine with the default threshold policy
func New() *Engine {
	return NewWithPolicy(signal.DefaultThresholdPolicy())
}

// NewWithPolicy creates an engine with the given cutoffs. The policy is
// fixed for the engine's lifetime.
func NewWithPolicy(policy signal.ThresholdPolicy) *Engine {
	return &Engine{policy: policy}
}

// AddSignal constructs a classified signal, appends it to the collection,
// and returns it. Score ranges are a caller contract; nothing is validated
// or clamped here.
func (e *Engine) AddSignal(insight string, value signal.Value, confidence, businessImpact, actionability float64, sourceModule, metricName string, metadata map[string]string) signal.Signal {
	s := signal.New(len(e.signals), insight, value, confidence, businessImpact, actionability, sourceModule, metricName, metadata, e.policy)
	e.signals = append(e.signals, s)
	return s
}

// Policy returns the engine's threshold policy
func (e *Engine) Policy() signal.ThresholdPolicy {
	return e.policy
}

// Count returns the number of accumulated signals
func (e *Engine) Count() int {
	return len(e.signals)
}

// Signals returns a copy of the collection in insertion order
func (e *Engine) Signals() []signal.Signal {
	out := make([]signal.Signal, len(e.signals))
	copy(out, e.signals)
	return out
}

// eligible returns the signals recommended for the given tier, in insertion
// order
func (e *Engine) eligible(level signal.Level) []signal.Signal {
	var out []signal.Signal
	for _, s := range e.signals {
		if s.Levels.Has(level) {
			out = append(out, s)
		}
	}
	return out
}

// mean averages a score slice, 0.0 on empty input per the empty-collection
// contract
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	m, err := stats.Mean(values)
	if err != nil {
		return 0.0
	}
	return m
}
