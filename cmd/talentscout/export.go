package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/talentscout/internal/export"
	"github.com/jonathan/talentscout/internal/report"
	"github.com/jonathan/talentscout/internal/store"
)

var (
	exportConfigPath string
	exportSessionID  string
	exportDBPath     string
	exportDataDir    string
	exportReport     bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a stored session's candidate record",
	Long: `Load a completed session from the server database and write its
anonymized JSON and CSV submission files. With --report, print the
recruiter assessment report instead of writing files.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportConfigPath, "config", "", "Path to JSON config file")
	exportCmd.Flags().StringVar(&exportSessionID, "session", "", "Session ID to export (required)")
	exportCmd.Flags().StringVar(&exportDBPath, "db", "", "SQLite database path")
	exportCmd.Flags().StringVar(&exportDataDir, "data-dir", "", "Directory for exported candidate files")
	exportCmd.Flags().BoolVar(&exportReport, "report", false, "Print the assessment report instead of exporting files")
	_ = exportCmd.MarkFlagRequired("session")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(exportConfigPath, "", exportDataDir, false)
	if err != nil {
		return err
	}
	if exportDBPath != "" {
		cfg.DBPath = exportDBPath
	}

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := cmd.Context()
	session, err := db.GetSession(ctx, exportSessionID)
	if err != nil {
		return fmt.Errorf("failed to load session %s: %w", exportSessionID, err)
	}

	if exportReport {
		fmt.Fprintln(cmd.OutOrStdout(), report.Assessment(&session.State.Record, time.Now()))
		return nil
	}

	result, err := export.NewExporter(cfg.DataDir).Export(ctx, &session.State.Record)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Candidate data saved to:\n  %s\n  %s\n", result.JSONPath, result.CSVPath)
	return nil
}
