package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prosignal/adapters/warehouse"
	"prosignal/domain/core"
	"prosignal/domain/report"
	"prosignal/domain/signal"
	"prosignal/ports"
)

// fakeReader hands back a fixed batch of inputs
type fakeReader struct {
	inputs []ports.SignalInput
	err    error
}

func (f *fakeReader) ReadSignals(ctx context.Context) ([]ports.SignalInput, error) {
	return f.inputs, f.err
}

// memoryArchive collects envelopes in memory
type memoryArchive struct {
	saved []report.Envelope
}

func (m *memoryArchive) SaveReport(ctx context.Context, envelope report.Envelope) error {
	m.saved = append(m.saved, envelope)
	return nil
}

func (m *memoryArchive) GetReport(ctx context.Context, id core.ReportID) (*report.Envelope, error) {
	for i := range m.saved {
		if m.saved[i].ID == id {
			return &m.saved[i], nil
		}
	}
	return nil, core.NewNotFoundError("report", id.String())
}

func (m *memoryArchive) ListReports(ctx context.Context, tier report.Tier, limit int) ([]report.Envelope, error) {
	var out []report.Envelope
	for _, envelope := range m.saved {
		if envelope.Tier == tier {
			out = append(out, envelope)
		}
	}
	return out, nil
}

func newService(reader ports.SignalReaderPort, archive ports.ReportArchivePort) *IntelligenceService {
	return NewIntelligenceService(signal.DefaultThresholdPolicy(), reader, warehouse.NewQueryGenerator(), archive, "acme-intel", "ad_signals")
}

func TestIngest_FramesBeforeConstruction(t *testing.T) {
	reader := &fakeReader{inputs: []ports.SignalInput{
		{
			Insight:        "Competitor X copying our angle",
			Value:          signal.Float(0.7),
			Confidence:     0.9,
			BusinessImpact: 0.85,
			Actionability:  0.9,
			SourceModule:   "Creative Analyzer",
			Metadata:       map[string]string{"temporal_trend": "increasing", "timeframe": "6 weeks"},
		},
	}}

	svc := newService(reader, nil)
	n, err := svc.Ingest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	signals := svc.Engine().Signals()
	require.Len(t, signals, 1)
	assert.Contains(t, signals[0].Insight, "threat accelerating over 6 weeks")
}

func TestIngest_NoReader(t *testing.T) {
	svc := newService(nil, nil)
	_, err := svc.Ingest(context.Background())
	assert.Error(t, err)
}

func TestGenerateAll_AllTiersPopulated(t *testing.T) {
	svc := newService(nil, nil)
	svc.AddSignal(ports.SignalInput{
		Insight: "Ad fatigue critical", Value: signal.Float(0.92),
		Confidence: 0.9, BusinessImpact: 0.85, Actionability: 0.9,
		SourceModule: "Creative Analyzer", MetricName: "ad_fatigue",
	})

	reports, err := svc.GenerateAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, reports.Executive.SignalCount)
	assert.Equal(t, 1, reports.Strategic.TotalSignals)
	assert.Equal(t, 1, reports.Interventions.InterventionSummary.ImmediateCount)
	assert.Len(t, reports.Detail.FilteredSignals, 1)
	assert.Equal(t, 1, reports.Stats.TotalSignals)
}

func TestGenerateAll_EmptyEngine(t *testing.T) {
	svc := newService(nil, nil)
	reports, err := svc.GenerateAll(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, "UNKNOWN", reports.Executive.ThreatLevel)
	assert.Equal(t, 0, reports.Stats.TotalSignals)
}

func TestArchive_SavesAllTiers(t *testing.T) {
	archive := &memoryArchive{}
	svc := newService(nil, archive)
	reports, err := svc.GenerateAll(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.Archive(context.Background(), reports))
	assert.Len(t, archive.saved, 4)

	tiers := make(map[report.Tier]bool)
	for _, envelope := range archive.saved {
		tiers[envelope.Tier] = true
		assert.False(t, envelope.Fingerprint.String() == "")
		assert.NotEmpty(t, envelope.Payload)
	}
	assert.Len(t, tiers, 4)
}

func TestQueries_UsesConfiguredIdentifiers(t *testing.T) {
	svc := newService(nil, nil)
	svc.AddSignal(ports.SignalInput{
		Insight: "mix drift", Value: signal.Float(0.6),
		Confidence: 0.6, BusinessImpact: 0.5, Actionability: 0.5,
		SourceModule: "Channel Analyzer", MetricName: "mix_drift",
	})

	queries, err := svc.Queries(context.Background())
	require.NoError(t, err)
	assert.Contains(t, queries["signal_overview"], "`acme-intel.ad_signals.signals`")
}
