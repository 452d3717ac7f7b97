package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock for unit testing.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	s := &PostgresStore{pool: mock}
	return s, mock
}

func TestPostgres_SaveReport(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO reports`).
		WithArgs(pgxmock.AnyArg(), "3012340056", 82, "B", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	saved, err := s.SaveReport(context.Background(), testReport("3012340056", 82))
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "3012340056", saved.BBL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_GetReport(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	body, err := json.Marshal(testReport("3012340056", 82))
	require.NoError(t, err)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT id, bbl, score, grade, report, created_at FROM reports WHERE id = \$1`).
		WithArgs("abc").
		WillReturnRows(pgxmock.NewRows([]string{"id", "bbl", "score", "grade", "report", "created_at"}).
			AddRow("abc", "3012340056", 82, "B", body, now))

	got, err := s.GetReport(context.Background(), "abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 82, got.Score)
	require.NotNil(t, got.Report)
	assert.Equal(t, "3012340056", got.Report.BBL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_GetReport_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT id, bbl, score, grade, report, created_at FROM reports WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	got, err := s.GetReport(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_LatestReport_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT id, bbl, score, grade, report, created_at FROM reports`).
		WithArgs("9999999999").
		WillReturnError(pgx.ErrNoRows)

	got, err := s.LatestReport(context.Background(), "9999999999")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ListReports(t *testing.T) {
	s, mock := newMockPostgresStore(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT id, bbl, score, grade, created_at FROM reports WHERE bbl = \$1`).
		WithArgs("3012340056", 100).
		WillReturnRows(pgxmock.NewRows([]string{"id", "bbl", "score", "grade", "created_at"}).
			AddRow("a", "3012340056", 82, "B", now).
			AddRow("b", "3012340056", 78, "C", now))

	got, err := s.ListReports(context.Background(), ReportFilter{BBL: "3012340056"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Nil(t, got[0].Report)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Migrate(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS reports`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
