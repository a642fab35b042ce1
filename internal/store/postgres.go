package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/lib/pq"

	"career-advisor/internal/retry"
)

const (
	connectAttempts = 5
	connectBackoff  = 200 * time.Millisecond
)

type PostgresStore struct {
	db *sql.DB
}

// NewPostgres opens dsn with the pgx driver, waits for the server to answer, and migrates.
func NewPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := retry.Do(ctx, connectAttempts, connectBackoff, db.PingContext); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to reach postgres: %w", err)
	}
	s := NewPostgresFromDB(db)
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// NewPostgresFromDB wraps an already opened handle without migrating.
func NewPostgresFromDB(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			id UUID PRIMARY KEY,
			kind TEXT NOT NULL,
			career_title TEXT NOT NULL DEFAULT '',
			titles TEXT[] NOT NULL DEFAULT '{}',
			payload JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS analyses_kind_created_idx ON analyses (kind, created_at DESC)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) SaveAnalysis(ctx context.Context, a Analysis) (Analysis, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	payload := a.Payload
	if len(payload) == 0 {
		payload = []byte("null")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO analyses(id, kind, career_title, titles, payload, created_at)
		VALUES($1,$2,$3,$4,$5,$6)`,
		a.ID, string(a.Kind), a.CareerTitle, pq.Array(pqStringArray(a.Titles)), payload, a.CreatedAt)
	if err != nil {
		return Analysis{}, fmt.Errorf("failed to save %s analysis: %w", a.Kind, err)
	}
	return a, nil
}

func (s *PostgresStore) ListAnalyses(ctx context.Context, kind Kind, limit int) ([]Analysis, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, career_title, titles, payload, created_at
		FROM analyses
		WHERE ($1::text = '' OR kind = $1)
		ORDER BY created_at DESC
		LIMIT $2`, string(kind), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Analysis{}
	for rows.Next() {
		var (
			a      Analysis
			k      string
			titles []string
		)
		if err := rows.Scan(&a.ID, &k, &a.CareerTitle, pq.Array(&titles), &a.Payload, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Kind = Kind(k)
		a.Titles = pqStringArray(titles)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func pqStringArray(items []string) []string {
	if len(items) == 0 {
		return []string{}
	}
	return items
}
