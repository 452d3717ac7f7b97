package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/openhousing/bldgreport/internal/store"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Inspect the report archive",
	Long:  "Commands for listing and viewing archived risk reports. Requires a configured store.",
}

// -- reports list --

var reportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived reports",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := requireStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		bbl, _ := cmd.Flags().GetString("bbl")
		limit, _ := cmd.Flags().GetInt("limit")

		reports, err := st.ListReports(ctx, store.ReportFilter{BBL: bbl, Limit: limit})
		if err != nil {
			return eris.Wrap(err, "reports list")
		}

		if len(reports) == 0 {
			fmt.Fprintln(os.Stderr, "No reports found.")
			return nil
		}

		formatReportsList(os.Stdout, reports)
		return nil
	},
}

// -- reports show --

var reportsShowCmd = &cobra.Command{
	Use:   "show <report-id>",
	Short: "Show the full JSON of an archived report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := requireStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		archived, err := st.GetReport(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "reports show")
		}
		if archived == nil {
			return eris.Errorf("no report with id %s", args[0])
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(archived.Report)
	},
}

// -- reports latest --

var reportsLatestCmd = &cobra.Command{
	Use:   "latest <bbl>",
	Short: "Show the most recent archived report for a tax lot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := requireStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		archived, err := st.LatestReport(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "reports latest")
		}
		if archived == nil {
			return eris.Errorf("no reports archived for %s", args[0])
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(archived.Report)
	},
}

// requireStore is initStore but treats a disabled archive as an error.
func requireStore(ctx context.Context) (store.Store, error) {
	st, err := initStore(ctx)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, eris.New("no report archive configured (set store.driver to sqlite or postgres)")
	}
	return st, nil
}

func init() {
	reportsListCmd.Flags().String("bbl", "", "filter by 10-digit BBL")
	reportsListCmd.Flags().Int("limit", 50, "max number of reports to display")

	reportsCmd.AddCommand(reportsListCmd)
	reportsCmd.AddCommand(reportsShowCmd)
	reportsCmd.AddCommand(reportsLatestCmd)
	rootCmd.AddCommand(reportsCmd)
}

// formatReportsList writes a tabular list of archived reports to w.
func formatReportsList(out io.Writer, reports []store.ArchivedReport) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tBBL\tSCORE\tGRADE\tCREATED")
	_, _ = fmt.Fprintln(w, "--\t---\t-----\t-----\t-------")

	for _, r := range reports {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			truncateID(r.ID),
			r.BBL,
			r.Score,
			r.Grade,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	_ = w.Flush()
}

// truncateID returns the first 8 characters of a UUID for compact display.
func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
