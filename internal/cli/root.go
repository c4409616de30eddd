// Package cli wires the rpick command line to the config store, the pick
// engine and the terminal UI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/xtding233/rpick/internal/config"
	"github.com/xtding233/rpick/internal/pick"
	"github.com/xtding233/rpick/internal/ui"
)

// RootOptions holds the flags of the rpick command.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	Simulate   int
	Seed       uint64
}

func (o *RootOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ConfigPath, "config", "c", "",
		"config file to use (default $RPICK_CONFIG, then rpick.yml in the user config directory)")
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "print the chance table before every offer")
	fs.IntVar(&o.Simulate, "simulate", 0,
		"run N unattended picks on a copy of the category and print how often each choice won")
	fs.Uint64Var(&o.Seed, "seed", 0, "seed for a reproducible random source (0 seeds randomly)")
}

// NewRootCommand creates the rpick command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "rpick [flags] CATEGORY",
		Short: "rpick helps pick items from a list of choices",
		Long: `rpick offers a choice from the named category of the config file and
asks for consent. Rejected choices are replaced by another until one is
accepted. The category's bookkeeping (ticket counts, recency order) is
then saved back to the config file.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return WrapExitError(ExitCommandError, "", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "", err)
	})
	opts.addFlags(cmd.Flags())

	return cmd
}

func run(cmd *cobra.Command, opts *RootOptions, category string) error {
	if opts.Simulate < 0 {
		return WrapExitError(ExitCommandError, "", fmt.Errorf("--simulate must not be negative, got %d", opts.Simulate))
	}
	env, err := config.ParseEnv()
	if err != nil {
		return WrapExitError(ExitCommandError, "reading environment", err)
	}
	logger, err := NewLogger(cmd.ErrOrStderr(), env.LogLevel)
	if err != nil {
		return WrapExitError(ExitCommandError, "", err)
	}
	path, err := config.ResolvePath(opts.ConfigPath, env)
	if err != nil {
		return WrapExitError(ExitCommandError, "", err)
	}
	logger = logger.With("config", path, "category", category)

	store := config.NewStore(path, logger)
	cfg, err := store.Load()
	if err != nil {
		return WrapExitError(ExitCommandError, "", err)
	}

	var rng pick.RandomSource
	if opts.Seed != 0 {
		logger.Debug("using seeded random source", "seed", opts.Seed)
		rng = pick.NewSeededRNG(opts.Seed)
	}
	term := ui.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout(), opts.Verbose)
	if env.ForceColor {
		term.ForceColor()
	}

	if opts.Simulate > 0 {
		return simulate(cfg, category, opts.Simulate, rng, term)
	}

	engine := pick.NewEngine(term, rng)
	engine.SetLogger(logger)
	if _, err := engine.Pick(cfg, category); err != nil {
		return WrapExitError(ExitFailure, "", err)
	}
	if err := store.Save(cfg); err != nil {
		return WrapExitError(ExitCommandError, "", err)
	}
	return nil
}

// simulate prints pick frequencies for the category. The config is not
// saved.
func simulate(cfg *config.Config, category string, trials int, rng pick.RandomSource, term *ui.Terminal) error {
	cat, ok := cfg.Get(category)
	if !ok {
		return WrapExitError(ExitFailure, "", &pick.CategoryNotFoundError{Name: category})
	}
	freq, err := pick.Simulate(category, cat, trials, rng)
	if err != nil {
		return WrapExitError(ExitFailure, "", err)
	}
	term.RenderTable(freq.Table())
	if freq.Exhausted {
		term.Notify(fmt.Sprintf("stopped after %d of %d picks: no tickets left", freq.Trials, trials))
	}
	return nil
}
