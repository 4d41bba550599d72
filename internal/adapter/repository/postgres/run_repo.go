package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eaglesemanation/wsexport/internal/domain"
	"github.com/eaglesemanation/wsexport/internal/infrastructure/metrics"
)

// RunRepository persists export run records
type RunRepository struct {
	pool    *pgxpool.Pool
	metrics *metrics.Metrics
}

// NewRunRepository creates a new run repository. metrics may be nil.
func NewRunRepository(pool *pgxpool.Pool, m *metrics.Metrics) *RunRepository {
	return &RunRepository{pool: pool, metrics: m}
}

// Record inserts the audit record of a finished run
func (r *RunRepository) Record(ctx context.Context, run *domain.ExportRun) error {
	query := `
		INSERT INTO export_runs (
			id, identity_id, account_ids, timeframe_days,
			filename, row_count, status, error_message,
			started_at, duration_ms
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	started := time.Now()
	_, err := r.pool.Exec(ctx, query,
		run.ID,
		run.IdentityID,
		run.AccountIDs,
		run.TimeframeDays,
		run.Filename,
		run.RowCount,
		run.Status,
		run.Error,
		run.StartedAt,
		run.Duration.Milliseconds(),
	)
	r.observe("record_run", started, err)
	return err
}

// ListRecent returns the most recent run records, newest first
func (r *RunRepository) ListRecent(ctx context.Context, limit int) ([]*domain.ExportRun, error) {
	query := `
		SELECT id, identity_id, account_ids, timeframe_days,
		       filename, row_count, status, error_message,
		       started_at, duration_ms
		FROM export_runs
		ORDER BY started_at DESC
		LIMIT $1
	`

	started := time.Now()
	rows, err := r.pool.Query(ctx, query, limit)
	r.observe("list_runs", started, err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*domain.ExportRun
	for rows.Next() {
		var run domain.ExportRun
		var durationMs int64
		err := rows.Scan(
			&run.ID,
			&run.IdentityID,
			&run.AccountIDs,
			&run.TimeframeDays,
			&run.Filename,
			&run.RowCount,
			&run.Status,
			&run.Error,
			&run.StartedAt,
			&durationMs,
		)
		if err != nil {
			return nil, err
		}
		run.Duration = time.Duration(durationMs) * time.Millisecond
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

func (r *RunRepository) observe(operation string, started time.Time, err error) {
	if r.metrics == nil {
		return
	}
	r.metrics.DBQueries.WithLabelValues(operation).Inc()
	r.metrics.DBDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
	if err != nil {
		r.metrics.DBErrors.WithLabelValues(operation).Inc()
	}
}
