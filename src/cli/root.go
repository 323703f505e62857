package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/eriklarko/rpn-logic/src/boolexpr"
	"github.com/eriklarko/rpn-logic/src/config"
	"github.com/eriklarko/rpn-logic/src/environment"
)

// options are shared by every command. They are filled in by the root
// command before any subcommand runs.
type options struct {
	configPath  string
	debug       bool
	interactive bool

	config *config.Config
}

// NewRootCmd returns the rpnlogic command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "rpnlogic",
		Short: "Evaluate and transform propositional formulas in reverse polish notation",
		Long: `rpnlogic works on formulas written in reverse polish notation.

Variables are the uppercase letters A-Z, constants are 1 and 0, and the
operators are ! (not), & (and), | (or), > (implies), = (equivalent) and
^ (xor).

        $ rpnlogic table 'AB&C|'
        $ rpnlogic nnf 'AB>!'
        `,
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.debug {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
			if cmd.Flags().Changed("interactive") {
				environment.ForceSetIsInteractive(opts.interactive)
			}
			return opts.loadConfig(cmd.Flags().Changed("config"), cmd.Annotations[configAnnotation] == configMayBeMissing)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath, "path to the config file, searched for in the working and home directories if not given")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.interactive, "interactive", false, "treat stdin and stdout as terminals, or as pipes with --interactive=false")

	rootCmd.AddCommand(
		newEvalCmd(opts),
		newTableCmd(opts),
		newNNFCmd(opts),
		newTreeCmd(opts),
		newReplCmd(opts),
		newBitsCmd(),
		newConfigCmd(opts),
	)

	return rootCmd
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig reads the file given with --config. Without the flag the
// working directory and the home directory are searched, and if neither has a
// config file the defaults are used. A missing --config file is an error
// unless mayBeMissing is set, then the defaults are used with that path.
func (o *options) loadConfig(explicit, mayBeMissing bool) error {
	path := o.configPath
	if !explicit {
		located, found, err := config.Locate(config.SearchDirs()...)
		if err != nil {
			return fmt.Errorf("failed to locate config: %w", err)
		}
		if !found {
			slog.Debug("No config file found, using defaults")
			o.setConfig(config.Default())
			return nil
		}
		path = located
	}

	cfg, err := config.LoadConfig(path)
	if os.IsNotExist(err) && mayBeMissing {
		cfg = config.Default()
		cfg.Path = path
	} else if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	o.setConfig(cfg)
	return nil
}

func (o *options) setConfig(cfg *config.Config) {
	o.config = cfg
	boolexpr.MaxDepth = cfg.MaxDepth
	slog.Debug("Loaded config", "path", cfg.Path, "format", cfg.Format, "workers", cfg.Workers, "max_depth", cfg.MaxDepth)
}
