package signal

// ThresholdPolicy holds the numeric cutoffs gating membership in each of the
// four disclosure tiers, plus each tier's display cap. Created once at engine
// construction and immutable thereafter.
type ThresholdPolicy struct {
	// L1 executive: confidence and business impact gates
	L1MinConfidence     float64 `json:"l1_min_confidence"`
	L1MinBusinessImpact float64 `json:"l1_min_business_impact"`
	L1MaxSignals        int     `json:"l1_max_signals"`

	// L2 strategic: confidence and business impact gates
	L2MinConfidence     float64 `json:"l2_min_confidence"`
	L2MinBusinessImpact float64 `json:"l2_min_business_impact"`
	L2MaxSignals        int     `json:"l2_max_signals"`

	// L3 interventions: gates on actionability, not business impact
	L3MinConfidence    float64 `json:"l3_min_confidence"`
	L3MinActionability float64 `json:"l3_min_actionability"`
	L3MaxSignals       int     `json:"l3_max_signals"`

	// L4 full detail: confidence gate only
	L4MinConfidence float64 `json:"l4_min_confidence"`
	L4MaxSignals    int     `json:"l4_max_signals"`
}

// DefaultThresholdPolicy returns the standard cutoff table
func DefaultThresholdPolicy() ThresholdPolicy {
	return ThresholdPolicy{
		L1MinConfidence:     0.8,
		L1MinBusinessImpact: 0.7,
		L1MaxSignals:        5,

		L2MinConfidence:     0.6,
		L2MinBusinessImpact: 0.5,
		L2MaxSignals:        15,

		L3MinConfidence:    0.4,
		L3MinActionability: 0.6,
		L3MaxSignals:       25,

		L4MinConfidence: 0.2,
		L4MaxSignals:    50,
	}
}
