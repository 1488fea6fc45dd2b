package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"prosignal/domain/signal"
	"prosignal/internal/engine"
)

func loadedEngine() *engine.Engine {
	e := engine.New()
	e.AddSignal("Ad fatigue critical in top spender", signal.Float(0.92), 0.9, 0.85, 0.9, "Creative Analyzer", "ad_fatigue", nil)
	e.AddSignal("Channel mix drifting off plan", signal.Float(0.61), 0.65, 0.6, 0.7, "Channel Analyzer", "mix_drift", nil)
	return e
}

func TestExecutiveMarkdown(t *testing.T) {
	md := ExecutiveMarkdown(loadedEngine().GenerateExecutive())
	assert.Contains(t, md, "# Executive Summary")
	assert.Contains(t, md, "Ad fatigue critical in top spender")
	assert.Contains(t, md, "`ad_fatigue`: 0.92")
}

func TestStrategicMarkdown_ModuleCap(t *testing.T) {
	md := StrategicMarkdown(loadedEngine().GenerateStrategic(), 1)
	// Alphabetical: Channel section survives the cap, Creative does not.
	assert.Contains(t, md, "## Channel Analyzer")
	assert.NotContains(t, md, "## Creative Analyzer")
}

func TestInterventionsMarkdown_ActionCap(t *testing.T) {
	report := loadedEngine().GenerateInterventions()
	md := InterventionsMarkdown(report, 1)
	assert.Contains(t, md, "Ad fatigue critical in top spender")
	assert.NotContains(t, md, "Channel mix drifting off plan")

	md = InterventionsMarkdown(report, 0)
	assert.Contains(t, md, "Channel mix drifting off plan", "zero cap means no cap")
}

func TestDetailMarkdown_Table(t *testing.T) {
	md := DetailMarkdown(loadedEngine().GenerateDetail())
	assert.Contains(t, md, "| Creative Analyzer | 1 |")
	assert.Contains(t, md, "| Channel Analyzer | 1 |")
}

func TestToHTML(t *testing.T) {
	html := string(ToHTML("# Title\n\n- item\n"))
	assert.True(t, strings.Contains(html, "<h1") && strings.Contains(html, "<li>"), html)
}

func TestMarkdown_EmptyReportsRenderCleanly(t *testing.T) {
	e := engine.New()
	assert.Contains(t, ExecutiveMarkdown(e.GenerateExecutive()), "UNKNOWN")
	assert.Contains(t, StrategicMarkdown(e.GenerateStrategic(), 0), "0 signals from 0 active modules")
	assert.Contains(t, InterventionsMarkdown(e.GenerateInterventions(), 0), "0 immediate")
	assert.Contains(t, DetailMarkdown(e.GenerateDetail()), "0 signals in payload")
}
