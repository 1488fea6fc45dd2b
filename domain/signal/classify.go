package signal

// CompositeScore is the weighted blend of the three scores used for strength
// classification
func CompositeScore(confidence, businessImpact, actionability float64) float64 {
	return 0.4*confidence + 0.4*businessImpact + 0.2*actionability
}

// ClassifyStrength maps the three scores onto a severity label. Branches are
// evaluated in this exact order, first match wins: the intervals overlap on
// purpose (a high composite with weak confidence falls through to a lower
// label because each branch carries its own confidence floor).
func ClassifyStrength(confidence, businessImpact, actionability float64) Strength {
	composite := CompositeScore(confidence, businessImpact, actionability)
	switch {
	case composite >= 0.8 && confidence >= 0.7:
		return StrengthCritical
	case composite >= 0.6 && confidence >= 0.5:
		return StrengthHigh
	case composite >= 0.4 && confidence >= 0.3:
		return StrengthMedium
	case composite >= 0.2:
		return StrengthLow
	default:
		return StrengthNoise
	}
}

// RecommendLevels evaluates the four tier predicates independently against
// the policy and returns the union. The predicates are deliberately not
// nested: L3 gates on actionability rather than business impact, so a
// low-impact but highly actionable signal lands in L3 while failing L2, and
// a signal at confidence 0.3 is L4-only. Do not collapse this into an
// ordinal severity.
func RecommendLevels(confidence, businessImpact, actionability float64, p ThresholdPolicy) LevelSet {
	levels := make(LevelSet, 4)
	if confidence >= p.L1MinConfidence && businessImpact >= p.L1MinBusinessImpact {
		levels[LevelExecutive] = true
	}
	if confidence >= p.L2MinConfidence && businessImpact >= p.L2MinBusinessImpact {
		levels[LevelStrategic] = true
	}
	if confidence >= p.L3MinConfidence && actionability >= p.L3MinActionability {
		levels[LevelInterventions] = true
	}
	if confidence >= p.L4MinConfidence {
		levels[LevelDashboards] = true
	}
	return levels
}
