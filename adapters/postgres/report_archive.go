package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"prosignal/domain/core"
	"prosignal/domain/report"
	"prosignal/ports"
)

// ReportArchiveImpl implements ReportArchivePort for PostgreSQL. Each
// generated tier report is stored as one JSON document row.
type ReportArchiveImpl struct {
	db *sqlx.DB
}

// NewReportArchive creates a new PostgreSQL report archive
func NewReportArchive(db *sqlx.DB) ports.ReportArchivePort {
	return &ReportArchiveImpl{db: db}
}

// EnsureSchema creates the archive table if it does not exist
func EnsureSchema(db *sqlx.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS tier_reports (
			id           TEXT PRIMARY KEY,
			tier         TEXT NOT NULL,
			generated_at TIMESTAMPTZ NOT NULL,
			fingerprint  TEXT NOT NULL,
			payload      JSONB NOT NULL
		)
	`)
	if err != nil {
		return err
	}
	_, err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_tier_reports_tier ON tier_reports (tier, generated_at DESC)`)
	return err
}

// SaveReport stores a report envelope
func (r *ReportArchiveImpl) SaveReport(ctx context.Context, envelope report.Envelope) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tier_reports (id, tier, generated_at, fingerprint, payload)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`, envelope.ID.String(), string(envelope.Tier), envelope.GeneratedAt.Time(), envelope.Fingerprint.String(), []byte(envelope.Payload))
	return err
}

// GetReport retrieves one archived report by ID
func (r *ReportArchiveImpl) GetReport(ctx context.Context, id core.ReportID) (*report.Envelope, error) {
	var row archivedRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, tier, generated_at, fingerprint, payload
		FROM tier_reports
		WHERE id = $1
	`, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.NewNotFoundError("report", id.String())
	}
	if err != nil {
		return nil, err
	}
	envelope := row.envelope()
	return &envelope, nil
}

// ListReports returns the most recent reports for a tier
func (r *ReportArchiveImpl) ListReports(ctx context.Context, tier report.Tier, limit int) ([]report.Envelope, error) {
	if limit <= 0 {
		limit = 20
	}
	var rows []archivedRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, tier, generated_at, fingerprint, payload
		FROM tier_reports
		WHERE tier = $1
		ORDER BY generated_at DESC
		LIMIT $2
	`, string(tier), limit)
	if err != nil {
		return nil, err
	}

	envelopes := make([]report.Envelope, len(rows))
	for i, row := range rows {
		envelopes[i] = row.envelope()
	}
	return envelopes, nil
}

// archivedRow is the sqlx scan target for tier_reports
type archivedRow struct {
	ID          string       `db:"id"`
	Tier        string       `db:"tier"`
	GeneratedAt sql.NullTime `db:"generated_at"`
	Fingerprint string       `db:"fingerprint"`
	Payload     []byte       `db:"payload"`
}

func (row archivedRow) envelope() report.Envelope {
	return report.Envelope{
		ID:          core.ReportID(row.ID),
		Tier:        report.Tier(row.Tier),
		GeneratedAt: core.NewTimestamp(row.GeneratedAt.Time),
		Fingerprint: core.ReportFingerprint(row.Fingerprint),
		Payload:     row.Payload,
	}
}
