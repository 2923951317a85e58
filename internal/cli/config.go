package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/sports/internal/config"
	"github.com/idilsaglam/sports/internal/logger"
	"github.com/idilsaglam/sports/internal/ui"
)

func configCmd() *cobra.Command {
	var initGlobal bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long: `Print the configuration after defaults, config files and SPORTS_*
environment variables are applied. With --init, write it to the
global config file.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Close() }()

			out := cmd.OutOrStdout()
			if initGlobal {
				if err := config.WriteGlobal(cfg); err != nil {
					return err
				}
				ui.OK(out, "wrote "+config.GlobalPath())
				return nil
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}
			_, err = out.Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&initGlobal, "init", false, "write the resolved configuration to the global config file")
	return cmd
}
