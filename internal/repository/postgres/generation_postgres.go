package postgres

import (
	"context"
	"database/sql"
	"strings"

	"formapi/internal/model"
	"formapi/internal/repository"
)

// GenerationPostgres is a PostgreSQL implementation of repository.GenerationRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type GenerationPostgres struct {
	db *sql.DB
}

// NewGenerationPostgres creates a new GenerationPostgres repository.
func NewGenerationPostgres(db *sql.DB) *GenerationPostgres {
	return &GenerationPostgres{db: db}
}

var _ repository.GenerationRepository = (*GenerationPostgres)(nil)

// Create inserts one generation event. Missing fields are stored comma separated.
func (r *GenerationPostgres) Create(ctx context.Context, ev *model.GenerationEvent) error {
	const q = `
		INSERT INTO generation_events (id, request_id, form_type, status, missing_fields, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, q,
		ev.ID,
		ev.RequestID,
		string(ev.FormType),
		string(ev.Status),
		strings.Join(ev.MissingFields, ","),
		ev.DurationMs,
		ev.CreatedAt,
	)
	return err
}

// CountByForm groups the events of one form type by status.
func (r *GenerationPostgres) CountByForm(ctx context.Context, formType model.FormType) (map[model.GenerationStatus]int, error) {
	const q = `
		SELECT status, COUNT(*)
		FROM generation_events
		WHERE form_type = $1
		GROUP BY status
	`
	rows, err := r.db.QueryContext(ctx, q, string(formType))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[model.GenerationStatus]int)
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[model.GenerationStatus(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Ping checks database connectivity.
func (r *GenerationPostgres) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
