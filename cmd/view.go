package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/writecontrol/writecontrol/internal/analyze"
	"github.com/writecontrol/writecontrol/internal/store"
	"github.com/writecontrol/writecontrol/internal/tui"
	"github.com/writecontrol/writecontrol/internal/ui"
)

var (
	viewDir   string
	viewPlain bool
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse session logs interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := viewDir
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

		// Pipes and non-interactive environments get the plain table.
		if viewPlain || !term.IsTerminal(os.Stdout.Fd()) {
			ui.PrintListings(os.Stdout, analyze.ListFiles(reports, analyze.SortByDate))
			return nil
		}
		return tui.Run(reports)
	},
}

func init() {
	viewCmd.Flags().StringVar(&viewDir, "dir", "", "log directory (defaults to the configured one)")
	viewCmd.Flags().BoolVar(&viewPlain, "plain", false, "plain table output instead of TUI")
	rootCmd.AddCommand(viewCmd)
}
