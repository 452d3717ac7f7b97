package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openhousing/bldgreport/internal/ingest"
	"github.com/openhousing/bldgreport/internal/model"
	"github.com/openhousing/bldgreport/internal/report"
)

var reportNoSave bool

var reportCmd = &cobra.Command{
	Use:   "report <bbl>",
	Short: "Build a risk report for a single tax lot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		key, err := model.ParseBBL(args[0])
		if err != nil {
			return eris.Wrap(err, "parse bbl")
		}

		now := time.Now()
		snap := ingest.New(newSocrataClient()).Fetch(ctx, key, now)
		rpt := report.Build(snap, now)

		zap.L().Info("report built",
			zap.String("bbl", rpt.BBL),
			zap.Int("score", rpt.Score.Overall),
			zap.String("grade", rpt.Score.Grade),
			zap.Int("red_flags", len(rpt.RedFlags)),
		)

		if !reportNoSave {
			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			if st != nil {
				defer st.Close() //nolint:errcheck
				saved, err := st.SaveReport(ctx, rpt)
				if err != nil {
					return eris.Wrap(err, "archive report")
				}
				zap.L().Info("report archived", zap.String("id", saved.ID))
			}
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rpt)
	},
}

func init() {
	reportCmd.Flags().BoolVar(&reportNoSave, "no-save", false, "skip the report archive even when a store is configured")
	rootCmd.AddCommand(reportCmd)
}
