package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	configAnnotation = "config"
	// set on commands that create the config file
	configMayBeMissing = "may-be-missing"
)

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or save the settings used by the other commands",
	}

	cmd.AddCommand(
		newConfigShowCmd(opts),
		newConfigSaveCmd(opts),
	)
	return cmd
}

func newConfigShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the settings in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := yaml.Marshal(opts.config)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", opts.config.Path, content)
			return nil
		},
	}
}

func newConfigSaveCmd(opts *options) *cobra.Command {
	var (
		format       string
		workers      int
		maxDepth     int
		maxVariables int
		summary      bool
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Write the settings in effect, changed by the given flags, to the config file",
		Long: `Write the settings in effect, changed by the given flags, to the config file.

The file is the one given with --config, or the one that was found, or
` + "`.rpnlogic.yaml`" + ` in the working directory.

        $ rpnlogic config save --format csv --workers 4
        `,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{configAnnotation: configMayBeMissing},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *opts.config

			flags := cmd.Flags()
			if flags.Changed("format") {
				cfg.Format = format
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if flags.Changed("max-depth") {
				cfg.MaxDepth = maxDepth
			}
			if flags.Changed("max-variables") {
				cfg.MaxVariables = maxVariables
			}
			if flags.Changed("summary") {
				cfg.Summary = summary
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := cfg.Write(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved config to %s\n", cfg.Path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: plain, table, csv or yaml")
	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "number of rows evaluated in parallel")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "how deeply nested a formula may be")
	cmd.Flags().IntVar(&maxVariables, "max-variables", 0, "most variables a truth table is generated for without asking")
	cmd.Flags().BoolVar(&summary, "summary", false, "print a summary after every table")
	return cmd
}
