package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/writecontrol/writecontrol/internal/analyze"
	"github.com/writecontrol/writecontrol/internal/store"
	"github.com/writecontrol/writecontrol/internal/ui"
)

var (
	summaryFilename string
	summaryDir      string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show per-file summary statistics across all sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := summaryDir
		if dir == "" {
			dir = cfg.LogDir
		}

		logs, err := analyze.FindLogs(dir, summaryFilename)
		if err != nil {
			if errors.Is(err, store.ErrNoLogs) {
				return fmt.Errorf("no sessions found in %s", dir)
			}
			return err
		}

		var reports []*analyze.Report
		for _, path := range logs {
			r, err := analyze.AnalyzeLog(path)
			if err != nil {
				continue
			}
			reports = append(reports, r)
		}

		ui.PrintSummaries(os.Stdout, analyze.Summarize(reports))
		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVar(&summaryFilename, "filename", "", "only sessions tracking this file")
	summaryCmd.Flags().StringVar(&summaryDir, "dir", "", "log directory (defaults to the configured one)")
	rootCmd.AddCommand(summaryCmd)
}
