// Package testkit generates deterministic synthetic signal batches for
// development runs and tests when no workbook source is configured.
package testkit

import (
	"fmt"
	"math/rand"

	"prosignal/domain/signal"
	"prosignal/ports"
)

// SignalGeneratorConfig configures the synthetic signal generator
type SignalGeneratorConfig struct {
	SignalsPerModule int      `json:"signals_per_module"`
	NoiseFraction    float64  `json:"noise_fraction"` // share of rows scored below every tier gate
	Modules          []string `json:"modules"`
	Seed             int64    `json:"seed"`
}

// DefaultSignalConfig returns sensible defaults for synthetic signal generation
func DefaultSignalConfig() SignalGeneratorConfig {
	return SignalGeneratorConfig{
		SignalsPerModule: 8,
		NoiseFraction:    0.2,
		Modules:          []string{"Creative Analyzer", "Channel Analyzer", "Visual Intelligence"},
		Seed:             42,
	}
}

// SignalGenerator produces scored observation batches with a realistic
// spread of strengths across a handful of intelligence modules
type SignalGenerator struct {
	config SignalGeneratorConfig
	rng    *rand.Rand
}

// NewSignalGenerator creates a generator with the given configuration
func NewSignalGenerator(config SignalGeneratorConfig) *SignalGenerator {
	return &SignalGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// insight templates per module, paired with the metric each one scores
var moduleInsights = map[string][]struct {
	insight string
	metric  string
}{
	"Creative Analyzer": {
		{"Ad fatigue rising across top performing creatives", "ad_fatigue"},
		{"Emotional hooks outperforming rational copy", "emotional_lift"},
		{"Text length drifting above engagement sweet spot", "copy_length_drift"},
		{"Competitor copying our strongest creative angle", "angle_overlap"},
	},
	"Channel Analyzer": {
		{"Channel mix drifting toward saturated placements", "mix_drift"},
		{"Cross-platform frequency exceeding tolerance", "frequency_pressure"},
		{"Budget concentration risk in a single channel", "budget_concentration"},
	},
	"Visual Intelligence": {
		{"Color palette alignment with seasonal trend weakening", "palette_alignment"},
		{"Face-forward imagery losing engagement share", "imagery_engagement"},
		{"Brand asset visibility declining in feed context", "asset_visibility"},
	},
}

// Generate produces the full synthetic batch. Deterministic for a fixed
// seed, so tests can assert on counts and ordering.
func (g *SignalGenerator) Generate() []ports.SignalInput {
	var inputs []ports.SignalInput
	for _, module := range g.config.Modules {
		for i := 0; i < g.config.SignalsPerModule; i++ {
			inputs = append(inputs, g.generateSignal(module, i))
		}
	}
	return inputs
}

func (g *SignalGenerator) generateSignal(module string, i int) ports.SignalInput {
	templates := moduleInsights[module]
	var insight, metric string
	if len(templates) > 0 {
		t := templates[i%len(templates)]
		insight, metric = t.insight, t.metric
	} else {
		insight = fmt.Sprintf("%s observation %d", module, i+1)
		metric = fmt.Sprintf("observation_%d", i+1)
	}

	noise := g.rng.Float64() < g.config.NoiseFraction

	var confidence, impact, actionability float64
	if noise {
		confidence = g.rng.Float64() * 0.2
		impact = g.rng.Float64() * 0.3
		actionability = g.rng.Float64() * 0.3
	} else {
		confidence = 0.3 + g.rng.Float64()*0.7
		impact = 0.3 + g.rng.Float64()*0.7
		actionability = 0.3 + g.rng.Float64()*0.7
	}

	metadata := map[string]string{}
	switch g.rng.Intn(3) {
	case 0:
		metadata["temporal_trend"] = "increasing"
		metadata["timeframe"] = fmt.Sprintf("%d weeks", 2+g.rng.Intn(6))
	case 1:
		metadata["temporal_trend"] = "decreasing"
	}

	return ports.SignalInput{
		Insight:        insight,
		Value:          signal.Float(g.rng.Float64()),
		Confidence:     confidence,
		BusinessImpact: impact,
		Actionability:  actionability,
		SourceModule:   module,
		MetricName:     metric,
		Metadata:       metadata,
	}
}
