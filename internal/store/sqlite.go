package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/openhousing/bldgreport/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS reports (
	id         TEXT PRIMARY KEY,
	bbl        TEXT NOT NULL,
	score      INTEGER NOT NULL,
	grade      TEXT NOT NULL,
	report     TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_reports_bbl ON reports(bbl);
CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveReport(ctx context.Context, report *model.Report) (*ArchivedReport, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal report")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO reports (id, bbl, score, grade, report, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, report.BBL, report.Score.Overall, report.Score.Grade, string(reportJSON), now,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: insert report for %s", report.BBL)
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

func (s *SQLiteStore) GetReport(ctx context.Context, id string) (*ArchivedReport, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, bbl, score, grade, report, created_at FROM reports WHERE id = ?`,
		id,
	)
	return scanArchived(row)
}

func (s *SQLiteStore) LatestReport(ctx context.Context, bbl string) (*ArchivedReport, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, bbl, score, grade, report, created_at FROM reports
		 WHERE bbl = ? ORDER BY created_at DESC LIMIT 1`,
		bbl,
	)
	return scanArchived(row)
}

func (s *SQLiteStore) ListReports(ctx context.Context, filter ReportFilter) ([]ArchivedReport, error) {
	query := `SELECT id, bbl, score, grade, created_at FROM reports WHERE 1=1`
	var args []any

	if filter.BBL != "" {
		query += ` AND bbl = ?`
		args = append(args, filter.BBL)
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list reports")
	}
	defer rows.Close()

	var reports []ArchivedReport
	for rows.Next() {
		var a ArchivedReport
		if err := rows.Scan(&a.ID, &a.BBL, &a.Score, &a.Grade, &a.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan report row")
		}
		reports = append(reports, a)
	}
	return reports, eris.Wrap(rows.Err(), "sqlite: list reports iterate")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArchived(row rowScanner) (*ArchivedReport, error) {
	var a ArchivedReport
	var reportJSON string

	err := row.Scan(&a.ID, &a.BBL, &a.Score, &a.Grade, &reportJSON, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "store: scan report")
	}
	if err := json.Unmarshal([]byte(reportJSON), &a.Report); err != nil {
		return nil, eris.Wrap(err, "store: unmarshal report")
	}
	return &a, nil
}
