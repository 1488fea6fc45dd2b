package ports

import (
	"context"

	"prosignal/domain/core"
	"prosignal/domain/report"
)

// ReportArchivePort persists generated tier reports. The engine itself
// holds no state across invocations; archival is a downstream concern.
type ReportArchivePort interface {
	SaveReport(ctx context.Context, envelope report.Envelope) error
	GetReport(ctx context.Context, id core.ReportID) (*report.Envelope, error)
	ListReports(ctx context.Context, tier report.Tier, limit int) ([]report.Envelope, error)
}
