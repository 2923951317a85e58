// Package cli wires the sports commands.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/sports/internal/config"
	"github.com/idilsaglam/sports/internal/logger"
	"github.com/idilsaglam/sports/internal/resources"
	"github.com/idilsaglam/sports/internal/store/statefile"
	"github.com/idilsaglam/sports/internal/tui"
	"github.com/idilsaglam/sports/internal/ui"
)

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError{err}
	}
	return nil
}

// env is what every command needs after startup.
type env struct {
	cfg   *config.Config
	data  *resources.Data
	state *statefile.File
}

// loadConfig resolves config and applies its logger and theme settings.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Setup(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	ui.SetTheme(cfg.Theme)
	return cfg, nil
}

func setup() (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	data, err := resources.Open(cfg.Resources)
	if err != nil {
		return nil, fmt.Errorf("resources: %w", err)
	}
	state, err := statefile.Open(cfg.StateFile)
	if err != nil {
		return nil, fmt.Errorf("state %s: %w", cfg.StateFile, err)
	}
	return &env{cfg: cfg, data: data, state: state}, nil
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var fresh, noMouse bool

	root := &cobra.Command{
		Use:   "sports",
		Short: "Sports - a reorderable, dismissible sports list",
		Long: `sports shows a list of sports you can reorder and swipe away.

Drag rows with shift+arrows (or grab with space), swipe them away with
left/right, and press r to bring every sport back. The list is kept
between runs until you reset it.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Close() }()
			return tui.Run(e.data, e.state, tui.Options{
				Mouse: e.cfg.Mouse && !noMouse,
				Fresh: fresh,
			})
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().BoolVar(&fresh, "fresh", false, "start from the original list, ignoring saved state")
	root.Flags().BoolVar(&noMouse, "no-mouse", false, "disable mouse drag and swipe")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	root.AddCommand(listCmd())
	root.AddCommand(resetCmd())
	root.AddCommand(configCmd())
	return root
}

// Execute runs the command line and returns a process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		ui.Fail(stderr, err.Error())
		var ue usageError
		if errors.As(err, &ue) {
			fmt.Fprintln(stderr)
			_ = root.Usage()
			return exitUsage
		}
		return exitError
	}
	return exitOK
}
