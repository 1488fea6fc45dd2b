package report

import (
	"encoding/json"

	"prosignal/domain/core"
	"prosignal/domain/signal"
)

// Tier identifies one of the four report outputs
type Tier string

const (
	TierExecutive     Tier = "executive"
	TierStrategic     Tier = "strategic"
	TierInterventions Tier = "interventions"
	TierDetail        Tier = "detail"
)

// AllTiers lists the tiers in disclosure order
var AllTiers = []Tier{TierExecutive, TierStrategic, TierInterventions, TierDetail}

// ThreatLevel summarizes the severity of the executive signal set
type ThreatLevel string

const (
	ThreatCritical ThreatLevel = "CRITICAL"
	ThreatHigh     ThreatLevel = "HIGH"
	ThreatMedium   ThreatLevel = "MEDIUM"
	ThreatLow      ThreatLevel = "LOW"
	ThreatUnknown  ThreatLevel = "UNKNOWN"
)

// ExecutiveReport is the L1 output: the handful of highest-stakes findings
type ExecutiveReport struct {
	ExecutiveInsights []string           `json:"executive_insights"`
	CriticalMetrics   map[string]float64 `json:"critical_metrics"`
	ThreatLevel       ThreatLevel        `json:"threat_level"`
	ConfidenceScore   float64            `json:"confidence_score"`
	SignalCount       int                `json:"signal_count"`
	FilteredSignals   int                `json:"filtered_signals"` // eligible but truncated
}

// ModuleIntelligence is the per-producer rollup inside the L2 report
type ModuleIntelligence struct {
	Insights          []string           `json:"insights"`
	KeyMetrics        map[string]float64 `json:"key_metrics"`
	ConfidenceAvg     float64            `json:"confidence_avg"`
	BusinessImpactAvg float64            `json:"business_impact_avg"`
	SignalCount       int                `json:"signal_count"`
}

// StrategicReport is the L2 output: per-module intelligence plus
// cross-module patterns
type StrategicReport struct {
	StrategicIntelligence map[string]ModuleIntelligence `json:"strategic_intelligence"`
	CrossModulePatterns   []string                      `json:"cross_module_patterns"`
	StrategicPriorities   []string                      `json:"strategic_priorities"`
	TotalSignals          int                           `json:"total_signals"`
	ModulesActive         int                           `json:"modules_active"`
}

// InterventionAction is one tactical entry in the L3 report
type InterventionAction struct {
	Action         string       `json:"action"`
	Rationale      string       `json:"rationale"`
	Confidence     float64      `json:"confidence"`
	BusinessImpact float64      `json:"business_impact"`
	Actionability  float64      `json:"actionability"`
	Timeline       string       `json:"timeline"`
	SuccessMetrics []string     `json:"success_metrics"`
	SourceModule   string       `json:"source_module"`
	Value          signal.Value `json:"value"`
	Priority       string       `json:"priority"`
}

// InterventionSummary carries bucket counts and score means over the
// L3-eligible set
type InterventionSummary struct {
	ImmediateCount   int     `json:"immediate_count"`
	ShortTermCount   int     `json:"short_term_count"`
	MonitoringCount  int     `json:"monitoring_count"`
	AvgConfidence    float64 `json:"avg_confidence"`
	AvgActionability float64 `json:"avg_actionability"`
}

// InterventionReport is the L3 output: actions bucketed by urgency
type InterventionReport struct {
	ImmediateActions    []InterventionAction `json:"immediate_actions"`
	ShortTermTactics    []InterventionAction `json:"short_term_tactics"`
	MonitoringActions   []InterventionAction `json:"monitoring_actions"`
	InterventionSummary InterventionSummary  `json:"intervention_summary"`
}

// ModuleAggregate is the per-producer rollup inside the L4 payload
type ModuleAggregate struct {
	SignalCount       int     `json:"signal_count"`
	AvgConfidence     float64 `json:"avg_confidence"`
	AvgBusinessImpact float64 `json:"avg_business_impact"`
}

// DetailPayload is the L4 boundary output: the filtered signal set plus
// per-module aggregates, handed to the downstream query-generation
// collaborator. The engine produces nothing else for this tier.
type DetailPayload struct {
	FilteredSignals    []signal.Signal            `json:"filtered_signals"`
	ModuleAggregates   map[string]ModuleAggregate `json:"module_aggregates"`
	FilteredNoiseCount int                        `json:"filtered_noise_count"`
}

// EngineStats is summary telemetry over the whole signal collection, used
// for monitoring the engine itself. ByLevel counts are not mutually
// exclusive: a signal counts once per tier it belongs to.
type EngineStats struct {
	TotalSignals        int            `json:"total_signals"`
	ByStrength          map[string]int `json:"by_strength"`
	ByModule            map[string]int `json:"by_module"`
	ByLevel             map[string]int `json:"by_level"`
	AvgConfidence       float64        `json:"avg_confidence"`
	AvgBusinessImpact   float64        `json:"avg_business_impact"`
	AvgActionability    float64        `json:"avg_actionability"`
	ConfidenceStdDev    float64        `json:"confidence_std_dev"`
	FrameworkEfficiency float64        `json:"framework_efficiency"`
}

// Envelope wraps a generated tier report for archival
type Envelope struct {
	ID          core.ReportID          `json:"id"`
	Tier        Tier                   `json:"tier"`
	GeneratedAt core.Timestamp         `json:"generated_at"`
	Fingerprint core.ReportFingerprint `json:"fingerprint"`
	Payload     json.RawMessage        `json:"payload"`
}

// NewEnvelope serializes a report payload into an archival envelope
func NewEnvelope(tier Tier, payload interface{}) (Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		ID:          core.ReportID(core.NewID()),
		Tier:        tier,
		GeneratedAt: core.Now(),
		Fingerprint: core.NewReportFingerprint(raw),
		Payload:     raw,
	}, nil
}

// ParseTier validates a tier label from an external surface
func ParseTier(s string) (Tier, error) {
	for _, tier := range AllTiers {
		if string(tier) == s {
			return tier, nil
		}
	}
	return "", core.ErrUnknownTier
}
