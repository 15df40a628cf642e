package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/writecontrol/writecontrol/internal/config"
)

var debugCmd = &cobra.Command{
	Use:   "debug [on|off]",
	Short: "Show or toggle debug diagnostics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			state := "off"
			if cfg.Debug {
				state = "on"
			}
			cmd.Printf("debug logging is %s\n", state)
			return nil
		}

		switch args[0] {
		case "on":
			cfg.Debug = true
		case "off":
			cfg.Debug = false
		default:
			return fmt.Errorf("expected \"on\" or \"off\", got %q", args[0])
		}

		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		cmd.Printf("debug logging turned %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(debugCmd)
}
