package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"prosignal/domain/report"
	"prosignal/domain/signal"
	"prosignal/internal"
	"prosignal/internal/engine"
	"prosignal/internal/errors"
	"prosignal/internal/temporal"
	"prosignal/ports"
)

// IntelligenceService owns one engine instance and the collaborators around
// it: the signal reader feeding it, the report archive, and the tier-4
// query-generation collaborator.
type IntelligenceService struct {
	engine    *engine.Engine
	reader    ports.SignalReaderPort
	queryGen  ports.QueryGeneratorPort
	archive   ports.ReportArchivePort // nil disables archival
	projectID string
	datasetID string
	log       *internal.Logger
}

// NewIntelligenceService wires a service around a fresh engine with the
// given policy
func NewIntelligenceService(policy signal.ThresholdPolicy, reader ports.SignalReaderPort, queryGen ports.QueryGeneratorPort, archive ports.ReportArchivePort, projectID, datasetID string) *IntelligenceService {
	return &IntelligenceService{
		engine:    engine.NewWithPolicy(policy),
		reader:    reader,
		queryGen:  queryGen,
		archive:   archive,
		projectID: projectID,
		datasetID: datasetID,
		log:       internal.DefaultLogger.Tagged("Intelligence"),
	}
}

// Engine exposes the underlying engine for direct producers
func (s *IntelligenceService) Engine() *engine.Engine {
	return s.engine
}

// Ingest pulls raw inputs from the signal reader, applies temporal framing
// to each insight, and adds the resulting signals to the engine. Framing
// runs before construction: signals are never rewritten afterwards.
func (s *IntelligenceService) Ingest(ctx context.Context) (int, error) {
	if s.reader == nil {
		return 0, errors.InvalidInput("no signal reader configured")
	}
	inputs, err := s.reader.ReadSignals(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "signal ingestion failed")
	}

	for _, in := range inputs {
		s.AddSignal(in)
	}
	s.log.Info("ingested %d signals", len(inputs))
	return len(inputs), nil
}

// AddSignal frames and adds one raw input
func (s *IntelligenceService) AddSignal(in ports.SignalInput) signal.Signal {
	// The magnitude fallback needs a current value; non-numeric payloads
	// read as mid-range.
	current := 0.5
	if num, ok := signal.AsNumber(in.Value); ok {
		current = num
	}
	insight := temporal.Frame(in.Insight, current, in.MetricName, in.Metadata)
	return s.engine.AddSignal(insight, in.Value, in.Confidence, in.BusinessImpact, in.Actionability, in.SourceModule, in.MetricName, in.Metadata)
}

// TierReports bundles one synthesis pass across all four tiers plus the
// engine telemetry
type TierReports struct {
	Executive     report.ExecutiveReport    `json:"executive"`
	Strategic     report.StrategicReport    `json:"strategic"`
	Interventions report.InterventionReport `json:"interventions"`
	Detail        report.DetailPayload      `json:"detail"`
	Stats         report.EngineStats        `json:"stats"`
}

// GenerateAll runs the four tier generators concurrently. The generators
// only read the collection, so this is safe as long as no producer is
// mutating the engine at the same time - the engine's own contract.
func (s *IntelligenceService) GenerateAll(ctx context.Context) (TierReports, error) {
	var reports TierReports
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		reports.Executive = s.engine.GenerateExecutive()
		return nil
	})
	g.Go(func() error {
		reports.Strategic = s.engine.GenerateStrategic()
		return nil
	})
	g.Go(func() error {
		reports.Interventions = s.engine.GenerateInterventions()
		return nil
	})
	g.Go(func() error {
		reports.Detail = s.engine.GenerateDetail()
		return nil
	})
	if err := g.Wait(); err != nil {
		return TierReports{}, err
	}
	reports.Stats = s.engine.Stats()
	return reports, nil
}

// Archive stores every tier report of a synthesis pass. No-op when no
// archive is configured.
func (s *IntelligenceService) Archive(ctx context.Context, reports TierReports) error {
	if s.archive == nil {
		return nil
	}

	payloads := map[report.Tier]interface{}{
		report.TierExecutive:     reports.Executive,
		report.TierStrategic:     reports.Strategic,
		report.TierInterventions: reports.Interventions,
		report.TierDetail:        reports.Detail,
	}
	for _, tier := range report.AllTiers {
		envelope, err := report.NewEnvelope(tier, payloads[tier])
		if err != nil {
			return errors.Wrapf(err, "failed to envelope %s report", tier)
		}
		if err := s.archive.SaveReport(ctx, envelope); err != nil {
			return errors.Wrapf(err, "failed to archive %s report", tier)
		}
	}
	s.log.Info("archived %d tier reports", len(payloads))
	return nil
}

// Queries hands the detail payload to the tier-4 collaborator and returns
// its named query documents
func (s *IntelligenceService) Queries(ctx context.Context) (map[string]string, error) {
	if s.queryGen == nil {
		return nil, errors.InvalidInput("no query generator configured")
	}
	return s.queryGen.GenerateQueries(ctx, s.engine.GenerateDetail(), s.projectID, s.datasetID)
}
