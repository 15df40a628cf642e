package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/writecontrol/writecontrol/internal/analyze"
	"github.com/writecontrol/writecontrol/internal/ui"
)

var analyzeAll bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <log>",
	Short: "Analyze a single session log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := analyze.AnalyzeLog(args[0])
		if err != nil {
			return err
		}

		if !analyzeAll {
			ui.PrintReport(os.Stdout, report, nil)
			return nil
		}

		// Accumulate every session of the same tracked file from the
		// log's directory.
		logs, err := analyze.FindLogs(filepath.Dir(args[0]), report.Filename)
		if err != nil {
			return fmt.Errorf("finding related logs: %w", err)
		}
		var reports []*analyze.Report
		for _, path := range logs {
			r, err := analyze.AnalyzeLog(path)
			if err != nil {
				continue
			}
			reports = append(reports, r)
		}
		acc := analyze.Accumulate(reports)
		ui.PrintReport(os.Stdout, report, &acc)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeAll, "all", false, "include accumulated stats for every session of this file")
	rootCmd.AddCommand(analyzeCmd)
}
