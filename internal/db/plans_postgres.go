package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tordrt/biaslab/internal/lessonplan"
)

const postgresCreateDDL = `
	CREATE TABLE IF NOT EXISTS lesson_plans (
		session_id       TEXT        NOT NULL,
		id               INTEGER     NOT NULL,
		level            TEXT        NOT NULL,
		theme            TEXT        NOT NULL,
		objectives       TEXT        NOT NULL,
		duration_minutes INTEGER     NOT NULL,
		resources        TEXT        NOT NULL,
		curriculum       TEXT[]      NOT NULL DEFAULT '{}',
		content          TEXT        NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (session_id, id)
	)
`

// PostgresPlanStore stores lesson plans in PostgreSQL
type PostgresPlanStore struct {
	client *PostgresClient
}

// NewPostgresPlanStore connects to PostgreSQL and creates the plans table
func NewPostgresPlanStore(ctx context.Context, connString string) (*PostgresPlanStore, error) {
	client, err := NewPostgresClient(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	if _, err := client.GetPool().Exec(ctx, postgresCreateDDL); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to create postgres lesson_plans table: %w", err)
	}
	return &PostgresPlanStore{client: client}, nil
}

// Save stores p under the next ID of the session. A transaction-scoped
// advisory lock on the session serializes concurrent saves.
func (s *PostgresPlanStore) Save(ctx context.Context, session string, p lessonplan.Plan) (lessonplan.Plan, error) {
	curriculum := p.Curriculum
	if curriculum == nil {
		curriculum = []string{}
	}

	err := pgx.BeginFunc(ctx, s.client.GetPool(), func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, session); err != nil {
			return fmt.Errorf("failed to lock session: %w", err)
		}

		err := tx.QueryRow(ctx,
			`SELECT COALESCE(MAX(id), 0) + 1 FROM lesson_plans WHERE session_id = $1`,
			session).Scan(&p.ID)
		if err != nil {
			return fmt.Errorf("failed to allocate plan id: %w", err)
		}

		query := `
			INSERT INTO lesson_plans
				(session_id, id, level, theme, objectives, duration_minutes, resources, curriculum, content, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`
		_, err = tx.Exec(ctx, query,
			session, p.ID, p.Level, p.Theme, p.Objectives, p.DurationMinutes,
			p.Resources, curriculum, p.Content, p.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert plan: %w", err)
		}
		return nil
	})
	if err != nil {
		return lessonplan.Plan{}, err
	}
	return p, nil
}

const postgresSelectPlan = `
	SELECT id, level, theme, objectives, duration_minutes, resources, curriculum, content, created_at
	FROM lesson_plans
`

// List returns the session's plans ordered by ID
func (s *PostgresPlanStore) List(ctx context.Context, session string) ([]lessonplan.Plan, error) {
	rows, err := s.client.GetPool().Query(ctx, postgresSelectPlan+`WHERE session_id = $1 ORDER BY id`, session)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	plans := []lessonplan.Plan{}
	for rows.Next() {
		p, err := scanPostgresPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

// Get returns one plan
func (s *PostgresPlanStore) Get(ctx context.Context, session string, id int) (lessonplan.Plan, error) {
	row := s.client.GetPool().QueryRow(ctx, postgresSelectPlan+`WHERE session_id = $1 AND id = $2`, session, id)
	p, err := scanPostgresPlan(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return lessonplan.Plan{}, lessonplan.ErrNotFound
	}
	return p, err
}

// Delete removes one plan
func (s *PostgresPlanStore) Delete(ctx context.Context, session string, id int) error {
	tag, err := s.client.GetPool().Exec(ctx, `DELETE FROM lesson_plans WHERE session_id = $1 AND id = $2`, session, id)
	if err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return lessonplan.ErrNotFound
	}
	return nil
}

// Close closes the connection pool
func (s *PostgresPlanStore) Close() error {
	s.client.Close()
	return nil
}

func scanPostgresPlan(row pgx.Row) (lessonplan.Plan, error) {
	var p lessonplan.Plan
	err := row.Scan(&p.ID, &p.Level, &p.Theme, &p.Objectives, &p.DurationMinutes,
		&p.Resources, &p.Curriculum, &p.Content, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return p, err
		}
		return p, fmt.Errorf("failed to scan plan: %w", err)
	}
	if len(p.Curriculum) == 0 {
		p.Curriculum = nil
	}
	return p, nil
}
