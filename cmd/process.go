package cmd

import (
	"github.com/spf13/cobra"

	"github.com/writecontrol/writecontrol/internal/analyze"
)

var processCmd = &cobra.Command{
	Use:   "process <log>...",
	Short: "Derive a commit message from session logs",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fileSessions := make(map[string][]*analyze.Report)
		for _, path := range args {
			r, err := analyze.AnalyzeLog(path)
			if err != nil {
				cmd.PrintErrf("warning: skipping %s: %v\n", path, err)
				continue
			}
			fileSessions[r.FullPath] = append(fileSessions[r.FullPath], r)
		}

		cmd.Printf("Commit message: %s\n", analyze.CommitMessage(fileSessions))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(processCmd)
}
