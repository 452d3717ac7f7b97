package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/openhousing/bldgreport/internal/model"
)

// Pool is the subset of pgxpool.Pool the archive uses; pgxmock
// implements it for tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS reports (
	id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	bbl        TEXT NOT NULL,
	score      INTEGER NOT NULL,
	grade      TEXT NOT NULL,
	report     JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_reports_bbl ON reports(bbl);
CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports(created_at);
CREATE INDEX IF NOT EXISTS idx_reports_bbl_created ON reports(bbl, created_at DESC);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) SaveReport(ctx context.Context, report *model.Report) (*ArchivedReport, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal report")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO reports (id, bbl, score, grade, report, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		id, report.BBL, report.Score.Overall, report.Score.Grade, reportJSON, now,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: insert report for %s", report.BBL)
	}

	return &ArchivedReport{
		ID:        id,
		BBL:       report.BBL,
		Score:     report.Score.Overall,
		Grade:     report.Score.Grade,
		Report:    report,
		CreatedAt: now,
	}, nil
}

func (s *PostgresStore) GetReport(ctx context.Context, id string) (*ArchivedReport, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, bbl, score, grade, report, created_at FROM reports WHERE id = $1`,
		id,
	)
	return scanArchivedPG(row)
}

func (s *PostgresStore) LatestReport(ctx context.Context, bbl string) (*ArchivedReport, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, bbl, score, grade, report, created_at FROM reports
		 WHERE bbl = $1 ORDER BY created_at DESC LIMIT 1`,
		bbl,
	)
	return scanArchivedPG(row)
}

func (s *PostgresStore) ListReports(ctx context.Context, filter ReportFilter) ([]ArchivedReport, error) {
	query := `SELECT id, bbl, score, grade, created_at FROM reports`
	var args []any

	if filter.BBL != "" {
		args = append(args, filter.BBL)
		query += fmt.Sprintf(` WHERE bbl = $%d`, len(args))
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)
	query += fmt.Sprintf(` LIMIT $%d`, len(args))

	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(` OFFSET $%d`, len(args))
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list reports")
	}
	defer rows.Close()

	var reports []ArchivedReport
	for rows.Next() {
		var a ArchivedReport
		if err := rows.Scan(&a.ID, &a.BBL, &a.Score, &a.Grade, &a.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan report row")
		}
		reports = append(reports, a)
	}
	return reports, eris.Wrap(rows.Err(), "postgres: list reports iterate")
}

func scanArchivedPG(row pgx.Row) (*ArchivedReport, error) {
	var a ArchivedReport
	var reportJSON []byte

	err := row.Scan(&a.ID, &a.BBL, &a.Score, &a.Grade, &reportJSON, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "postgres: scan report")
	}
	if err := json.Unmarshal(reportJSON, &a.Report); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal report")
	}
	return &a, nil
}
