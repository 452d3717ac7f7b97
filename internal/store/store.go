// Package store is the optional report archive. Reports are persisted
// as JSON documents keyed by a generated id, with the parcel key and
// headline score denormalized for listing.
package store

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/openhousing/bldgreport/internal/config"
	"github.com/openhousing/bldgreport/internal/model"
)

// ArchivedReport is one persisted report run.
type ArchivedReport struct {
	ID        string        `json:"id"`
	BBL       string        `json:"bbl"`
	Score     int           `json:"score"`
	Grade     string        `json:"grade"`
	Report    *model.Report `json:"report,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

// ReportFilter specifies criteria for listing archived reports.
type ReportFilter struct {
	BBL    string `json:"bbl,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// Store defines the persistence interface for the report archive.
type Store interface {
	SaveReport(ctx context.Context, report *model.Report) (*ArchivedReport, error)
	GetReport(ctx context.Context, id string) (*ArchivedReport, error)
	LatestReport(ctx context.Context, bbl string) (*ArchivedReport, error)
	ListReports(ctx context.Context, filter ReportFilter) ([]ArchivedReport, error)

	Migrate(ctx context.Context) error
	Close() error
}

// Open builds a Store from config. Driver "none" (the default) returns
// a nil Store: archiving is off and callers skip it.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case "", "none":
		return nil, nil
	case "sqlite":
		return NewSQLite(cfg.Path)
	case "postgres":
		return NewPostgres(ctx, cfg.DatabaseURL)
	default:
		return nil, eris.Errorf("store: unknown driver %q", cfg.Driver)
	}
}
