package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/writecontrol/writecontrol/internal/store"
	"github.com/writecontrol/writecontrol/internal/tracker"
	"github.com/writecontrol/writecontrol/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Track editing sessions for a file until interrupted",
	Long: `Watch records a telemetry session for the given file, observing
saves made by any external editor. The session is finalized and its
log persisted when the command is interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.NewAt(cfg.LogDir)
		if err != nil {
			return err
		}
		ctl := tracker.New(st, newLogger())

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cmd.Printf("Tracking %s (ctrl-c to stop)\n", args[0])
		return watch.Run(ctx, args[0], ctl)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
