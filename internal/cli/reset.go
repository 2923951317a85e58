package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/sports/internal/logger"
	"github.com/idilsaglam/sports/internal/store/statefile"
	"github.com/idilsaglam/sports/internal/ui"
)

// resetCmd removes the state file without parsing it, so a corrupt file
// can always be cleared.
func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the saved list so the next run starts from the original",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Close() }()

			if err := statefile.Remove(cfg.StateFile); err != nil {
				return fmt.Errorf("reset state: %w", err)
			}
			logger.Info("removed state file %s", cfg.StateFile)
			ui.OK(cmd.OutOrStdout(), "reset")
			return nil
		},
	}
}
