package main

import (
	"context"
	"time"

	"github.com/openhousing/bldgreport/internal/store"
	"github.com/openhousing/bldgreport/pkg/socrata"
)

// newSocrataClient builds the SODA client from config.
func newSocrataClient() socrata.Client {
	opts := []socrata.Option{
		socrata.WithRateLimit(cfg.Socrata.RateLimit, cfg.Socrata.Burst),
	}
	if cfg.Socrata.BaseURL != "" {
		opts = append(opts, socrata.WithBaseURL(cfg.Socrata.BaseURL))
	}
	if cfg.Socrata.TimeoutSecs > 0 {
		opts = append(opts, socrata.WithTimeout(time.Duration(cfg.Socrata.TimeoutSecs)*time.Second))
	}
	return socrata.NewClient(cfg.Socrata.AppToken, opts...)
}

// initStore opens and migrates the report archive. Returns nil when
// archiving is disabled.
func initStore(ctx context.Context) (store.Store, error) {
	st, err := store.Open(ctx, cfg.Store)
	if err != nil || st == nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, err
	}
	return st, nil
}
