package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tordrt/biaslab/internal/lessonplan"
)

// dialect holds the statements that differ between database/sql backends
type dialect struct {
	name      string
	createDDL string
	nextID    string
}

var sqliteDialect = dialect{
	name: "sqlite",
	createDDL: `
		CREATE TABLE IF NOT EXISTS lesson_plans (
			session_id       TEXT    NOT NULL,
			id               INTEGER NOT NULL,
			level            TEXT    NOT NULL,
			theme            TEXT    NOT NULL,
			objectives       TEXT    NOT NULL,
			duration_minutes INTEGER NOT NULL,
			resources        TEXT    NOT NULL,
			curriculum       TEXT    NOT NULL,
			content          TEXT    NOT NULL,
			created_at       TEXT    NOT NULL,
			PRIMARY KEY (session_id, id)
		)`,
	nextID: `SELECT COALESCE(MAX(id), 0) + 1 FROM lesson_plans WHERE session_id = ?`,
}

var mysqlDialect = dialect{
	name: "mysql",
	createDDL: `
		CREATE TABLE IF NOT EXISTS lesson_plans (
			session_id       VARCHAR(64) NOT NULL,
			id               INT         NOT NULL,
			level            VARCHAR(32) NOT NULL,
			theme            TEXT        NOT NULL,
			objectives       TEXT        NOT NULL,
			duration_minutes INT         NOT NULL,
			resources        TEXT        NOT NULL,
			curriculum       TEXT        NOT NULL,
			content          MEDIUMTEXT  NOT NULL,
			created_at       VARCHAR(40) NOT NULL,
			PRIMARY KEY (session_id, id)
		)`,
	nextID: `SELECT COALESCE(MAX(id), 0) + 1 FROM lesson_plans WHERE session_id = ? FOR UPDATE`,
}

// SQLPlanStore stores lesson plans through database/sql (SQLite and MySQL)
type SQLPlanStore struct {
	db      *sql.DB
	dialect dialect
	close   func() error
}

// NewSQLitePlanStore opens (or creates) a SQLite database at path
func NewSQLitePlanStore(ctx context.Context, path string) (*SQLPlanStore, error) {
	client, err := NewSQLiteClient(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}
	return newSQLPlanStore(ctx, client.GetDB(), sqliteDialect, client.Close)
}

// NewMySQLPlanStore connects to MySQL. The DSN must name a database.
func NewMySQLPlanStore(ctx context.Context, connString string) (*SQLPlanStore, error) {
	if _, err := ParseDatabaseName(connString); err != nil {
		return nil, fmt.Errorf("failed to determine database name: %w", err)
	}
	client, err := NewMySQLClient(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}
	return newSQLPlanStore(ctx, client.GetDB(), mysqlDialect, client.Close)
}

func newSQLPlanStore(ctx context.Context, db *sql.DB, d dialect, closeFn func() error) (*SQLPlanStore, error) {
	if _, err := db.ExecContext(ctx, d.createDDL); err != nil {
		_ = closeFn()
		return nil, fmt.Errorf("failed to create %s lesson_plans table: %w", d.name, err)
	}
	return &SQLPlanStore{db: db, dialect: d, close: closeFn}, nil
}

// Save stores p under the next ID of the session
func (s *SQLPlanStore) Save(ctx context.Context, session string, p lessonplan.Plan) (lessonplan.Plan, error) {
	curriculum, err := encodeCurriculum(p.Curriculum)
	if err != nil {
		return lessonplan.Plan{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return lessonplan.Plan{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := tx.QueryRowContext(ctx, s.dialect.nextID, session).Scan(&p.ID); err != nil {
		return lessonplan.Plan{}, fmt.Errorf("failed to allocate plan id: %w", err)
	}

	query := `
		INSERT INTO lesson_plans
			(session_id, id, level, theme, objectives, duration_minutes, resources, curriculum, content, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, query,
		session, p.ID, p.Level, p.Theme, p.Objectives, p.DurationMinutes,
		p.Resources, curriculum, p.Content, p.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return lessonplan.Plan{}, fmt.Errorf("failed to insert plan: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return lessonplan.Plan{}, fmt.Errorf("failed to commit plan: %w", err)
	}
	return p, nil
}

const selectPlanColumns = `
	SELECT id, level, theme, objectives, duration_minutes, resources, curriculum, content, created_at
	FROM lesson_plans
`

// List returns the session's plans ordered by ID
func (s *SQLPlanStore) List(ctx context.Context, session string) ([]lessonplan.Plan, error) {
	rows, err := s.db.QueryContext(ctx, selectPlanColumns+`WHERE session_id = ? ORDER BY id`, session)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	plans := []lessonplan.Plan{}
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

// Get returns one plan
func (s *SQLPlanStore) Get(ctx context.Context, session string, id int) (lessonplan.Plan, error) {
	row := s.db.QueryRowContext(ctx, selectPlanColumns+`WHERE session_id = ? AND id = ?`, session, id)
	p, err := scanPlan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return lessonplan.Plan{}, lessonplan.ErrNotFound
	}
	return p, err
}

// Delete removes one plan
func (s *SQLPlanStore) Delete(ctx context.Context, session string, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM lesson_plans WHERE session_id = ? AND id = ?`, session, id)
	if err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	if n == 0 {
		return lessonplan.ErrNotFound
	}
	return nil
}

// Close closes the database connection
func (s *SQLPlanStore) Close() error {
	return s.close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (lessonplan.Plan, error) {
	var (
		p          lessonplan.Plan
		curriculum string
		createdAt  string
	)
	err := row.Scan(&p.ID, &p.Level, &p.Theme, &p.Objectives, &p.DurationMinutes,
		&p.Resources, &curriculum, &p.Content, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return p, err
		}
		return p, fmt.Errorf("failed to scan plan: %w", err)
	}

	if p.Curriculum, err = decodeCurriculum(curriculum); err != nil {
		return p, err
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return p, fmt.Errorf("failed to parse created_at %q: %w", createdAt, err)
	}
	return p, nil
}

func encodeCurriculum(subjects []string) (string, error) {
	if subjects == nil {
		subjects = []string{}
	}
	b, err := json.Marshal(subjects)
	if err != nil {
		return "", fmt.Errorf("failed to encode curriculum: %w", err)
	}
	return string(b), nil
}

func decodeCurriculum(s string) ([]string, error) {
	var subjects []string
	if err := json.Unmarshal([]byte(s), &subjects); err != nil {
		return nil, fmt.Errorf("failed to decode curriculum: %w", err)
	}
	if len(subjects) == 0 {
		return nil, nil
	}
	return subjects, nil
}
