// Package render turns tier reports into markdown documents and HTML for
// the dashboard. Pure formatting; the report structs stay the single source
// of truth.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"prosignal/domain/report"
)

// ExecutiveMarkdown renders the L1 report
func ExecutiveMarkdown(r report.ExecutiveReport) string {
	var b strings.Builder
	b.WriteString("# Executive Summary\n\n")
	fmt.Fprintf(&b, "**Threat level:** %s  \n", r.ThreatLevel)
	fmt.Fprintf(&b, "**Confidence:** %.2f  \n", r.ConfidenceScore)
	fmt.Fprintf(&b, "**Signals shown:** %d (plus %d filtered)\n\n", r.SignalCount, r.FilteredSignals)

	for _, insight := range r.ExecutiveInsights {
		fmt.Fprintf(&b, "- %s\n", insight)
	}

	if len(r.CriticalMetrics) > 0 {
		b.WriteString("\n## Critical metrics\n\n")
		for _, name := range sortedKeys(r.CriticalMetrics) {
			fmt.Fprintf(&b, "- `%s`: %g\n", name, r.CriticalMetrics[name])
		}
	}
	return b.String()
}

// StrategicMarkdown renders the L2 report. maxModules caps the module
// sections shown (the policy's L2 display limit).
func StrategicMarkdown(r report.StrategicReport, maxModules int) string {
	var b strings.Builder
	b.WriteString("# Strategic Dashboard\n\n")
	fmt.Fprintf(&b, "%d signals from %d active modules\n\n", r.TotalSignals, r.ModulesActive)

	modules := make([]string, 0, len(r.StrategicIntelligence))
	for module := range r.StrategicIntelligence {
		modules = append(modules, module)
	}
	sort.Strings(modules)
	if maxModules > 0 && len(modules) > maxModules {
		modules = modules[:maxModules]
	}

	for _, module := range modules {
		intel := r.StrategicIntelligence[module]
		fmt.Fprintf(&b, "## %s\n\n", module)
		fmt.Fprintf(&b, "%d signals, confidence %.2f, impact %.2f\n\n", intel.SignalCount, intel.ConfidenceAvg, intel.BusinessImpactAvg)
		for _, insight := range intel.Insights {
			fmt.Fprintf(&b, "- %s\n", insight)
		}
		b.WriteString("\n")
	}

	if len(r.CrossModulePatterns) > 0 {
		b.WriteString("## Cross-module patterns\n\n")
		for _, pattern := range r.CrossModulePatterns {
			fmt.Fprintf(&b, "- %s\n", pattern)
		}
		b.WriteString("\n")
	}

	if len(r.StrategicPriorities) > 0 {
		b.WriteString("## Priorities\n\n")
		for i, priority := range r.StrategicPriorities {
			fmt.Fprintf(&b, "%d. %s\n", i+1, priority)
		}
	}
	return b.String()
}

// InterventionsMarkdown renders the L3 report. maxActions caps the total
// actions listed (the policy's L3 display limit).
func InterventionsMarkdown(r report.InterventionReport, maxActions int) string {
	var b strings.Builder
	b.WriteString("# Tactical Interventions\n\n")
	s := r.InterventionSummary
	fmt.Fprintf(&b, "%d immediate, %d short-term, %d monitoring; confidence %.2f, actionability %.2f\n",
		s.ImmediateCount, s.ShortTermCount, s.MonitoringCount, s.AvgConfidence, s.AvgActionability)

	remaining := maxActions
	if remaining <= 0 {
		remaining = s.ImmediateCount + s.ShortTermCount + s.MonitoringCount
	}
	for _, section := range []struct {
		title   string
		actions []report.InterventionAction
	}{
		{"Immediate actions", r.ImmediateActions},
		{"Short-term tactics", r.ShortTermTactics},
		{"Monitoring", r.MonitoringActions},
	} {
		if len(section.actions) == 0 || remaining == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n\n", section.title)
		for _, action := range section.actions {
			if remaining == 0 {
				break
			}
			remaining--
			fmt.Fprintf(&b, "- **%s** (%s, %s)  \n  %s. Success: %s\n",
				action.Action, action.Priority, action.Timeline,
				action.Rationale, strings.Join(action.SuccessMetrics, ", "))
		}
	}
	return b.String()
}

// DetailMarkdown renders a summary view of the L4 payload. The payload
// itself goes to the query-generation collaborator; this is only the
// human-readable digest.
func DetailMarkdown(p report.DetailPayload) string {
	var b strings.Builder
	b.WriteString("# Full Detail\n\n")
	fmt.Fprintf(&b, "%d signals in payload, %d noise-grade signals filtered\n\n", len(p.FilteredSignals), p.FilteredNoiseCount)

	modules := make([]string, 0, len(p.ModuleAggregates))
	for module := range p.ModuleAggregates {
		modules = append(modules, module)
	}
	sort.Strings(modules)

	if len(modules) > 0 {
		b.WriteString("| Module | Signals | Avg confidence | Avg impact |\n|---|---|---|---|\n")
		for _, module := range modules {
			agg := p.ModuleAggregates[module]
			fmt.Fprintf(&b, "| %s | %d | %.2f | %.2f |\n", module, agg.SignalCount, agg.AvgConfidence, agg.AvgBusinessImpact)
		}
	}
	return b.String()
}

// ToHTML converts a markdown document to HTML for the dashboard
func ToHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(md), p, renderer)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
