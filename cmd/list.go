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
	listDir  string
	listSort string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked files",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := listDir
		if dir == "" {
			dir = cfg.LogDir
		}

		logs, err := analyze.FindLogs(dir, "")
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

		ui.PrintListings(os.Stdout, analyze.ListFiles(reports, listSort))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listDir, "dir", "", "log directory (defaults to the configured one)")
	listCmd.Flags().StringVar(&listSort, "sort", analyze.SortByDate, "sort order: date, words or duration")
	rootCmd.AddCommand(listCmd)
}
