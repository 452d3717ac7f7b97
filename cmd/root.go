package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openhousing/bldgreport/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "bldgreport",
	Short: "NYC building habitability risk reports",
	Long:  "Pulls violations, complaints, litigation, and two dozen other NYC Open Data sources for a tax lot and scores the building's habitability risk.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
