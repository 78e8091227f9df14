// Package audit records completed analysis runs in Postgres.
//
// The trail is optional: when no DATABASE_URL is configured the no-op
// recorder is used and the service runs fully stateless. Recording is
// best-effort bookkeeping for operators; a failed insert is logged and never
// affects the analysis response.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Entry describes one analysis run.
type Entry struct {
	ID              uuid.UUID
	FileName        string
	TotalRows       int
	OperationalRows int
	CareRows        int
	ErrorRows       int
	Duration        time.Duration
	CreatedAt       time.Time
}

// Recorder persists analysis entries.
type Recorder interface {
	Record(ctx context.Context, e Entry)
}

// Schema creates the audit table. Called once at startup when the trail is
// enabled.
const Schema = `
CREATE TABLE IF NOT EXISTS analysis_audit (
    id               UUID PRIMARY KEY,
    file_name        TEXT NOT NULL,
    total_rows       INTEGER NOT NULL,
    operational_rows INTEGER NOT NULL,
    care_rows        INTEGER NOT NULL,
    error_rows       INTEGER NOT NULL,
    duration_ms      BIGINT NOT NULL,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PGRecorder writes entries to Postgres through a pgx pool.
type PGRecorder struct {
	pool *pgxpool.Pool
}

// NewPGRecorder ensures the audit table exists and returns a recorder bound
// to pool.
func NewPGRecorder(ctx context.Context, pool *pgxpool.Pool) (*PGRecorder, error) {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return nil, err
	}
	return &PGRecorder{pool: pool}, nil
}

// Record inserts one entry. Failures are logged, not returned: the audit
// trail must never fail a request that the engine already answered.
func (r *PGRecorder) Record(ctx context.Context, e Entry) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO analysis_audit
		 (id, file_name, total_rows, operational_rows, care_rows, error_rows, duration_ms, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.FileName, e.TotalRows, e.OperationalRows, e.CareRows,
		e.ErrorRows, e.Duration.Milliseconds(), e.CreatedAt,
	)
	if err != nil {
		slog.Error("audit record failed", "error", err, "file", e.FileName)
	}
}

// Noop discards every entry. Used when the audit trail is not configured.
type Noop struct{}

// Record implements Recorder.
func (Noop) Record(context.Context, Entry) {}
