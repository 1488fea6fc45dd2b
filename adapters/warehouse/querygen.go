// Package warehouse implements the tier-4 query-generation collaborator:
// it renders the filtered detail payload into named SQL documents against
// the caller's {project}.{dataset} tables. The engine hands over the payload
// and the opaque identifier pair and expects nothing back but name -> query
// text.
package warehouse

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"prosignal/domain/core"
	"prosignal/domain/report"
	"prosignal/ports"
)

// QueryGenerator builds dashboard query documents from a detail payload
type QueryGenerator struct{}

// NewQueryGenerator creates a query generator
func NewQueryGenerator() ports.QueryGeneratorPort {
	return &QueryGenerator{}
}

// GenerateQueries implements ports.QueryGeneratorPort
func (g *QueryGenerator) GenerateQueries(ctx context.Context, payload report.DetailPayload, projectID, datasetID string) (map[string]string, error) {
	if projectID == "" {
		return nil, core.ErrMissingProject
	}
	if datasetID == "" {
		return nil, core.ErrMissingDataset
	}

	table := func(name string) string {
		return fmt.Sprintf("`%s.%s.%s`", projectID, datasetID, name)
	}

	queries := map[string]string{
		"signal_overview": fmt.Sprintf(
			"SELECT source_module, metric_name, value, confidence, business_impact\nFROM %s\nORDER BY confidence DESC, business_impact DESC\nLIMIT %d",
			table("signals"), len(payload.FilteredSignals)),
		"noise_audit": fmt.Sprintf(
			"SELECT COUNT(*) AS noise_signals\nFROM %s\nWHERE signal_strength = 'NOISE'",
			table("signals")),
	}

	// One drill-down query per active module, restricted to its metrics.
	modules := make([]string, 0, len(payload.ModuleAggregates))
	for module := range payload.ModuleAggregates {
		modules = append(modules, module)
	}
	sort.Strings(modules)

	for _, module := range modules {
		metrics := metricKeysFor(payload, module)
		name := "module_" + strings.ReplaceAll(strings.ToLower(module), " ", "_")
		queries[name] = fmt.Sprintf(
			"SELECT metric_name, value, confidence, business_impact, actionability\nFROM %s\nWHERE source_module = '%s'%s\nORDER BY business_impact DESC",
			table("signals"), escape(module), metricFilter(metrics))
	}

	return queries, nil
}

func metricKeysFor(payload report.DetailPayload, module string) []string {
	var keys []string
	for _, s := range payload.FilteredSignals {
		if s.SourceModule == module {
			keys = append(keys, s.MetricKey())
		}
	}
	return keys
}

func metricFilter(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	quoted := make([]string, len(keys))
	for i, key := range keys {
		quoted[i] = "'" + escape(key) + "'"
	}
	return fmt.Sprintf("\n  AND metric_name IN (%s)", strings.Join(quoted, ", "))
}

func escape(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}
