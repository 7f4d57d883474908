package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"qimu/internal/cmdregistry"
	"qimu/internal/version"
)

func newRegistry() *cmdregistry.Registry {
	registry := cmdregistry.New()
	registry.Register(newVersionCommand())
	registry.Register(newConfigCommand())
	registry.Register(newReadsTableCommand())
	return registry
}

func newRootCommand(ctx *commandContext, registry *cmdregistry.Registry) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   version.Name + " [general options] <command> [args]",
		Short: "qimu command-line toolkit for bioinformatics",
		Long: "qimu command-line toolkit for bioinformatics.\n\n" +
			"Settings are read from ~/.config/qimu.ini unless --config names another file.\n" +
			"Use \"qimu <command> --help\" for help on a specific command.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			return &cmdregistry.DispatchError{
				Kind:        cmdregistry.UnknownCommand,
				Command:     args[0],
				Suggestions: cmd.SuggestionsFor(args[0]),
			}
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.HasParent() || cmd.Name() == "help" {
				return nil
			}
			return ctx.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
			return &exitError{code: cmdregistry.ExitUsage}
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	// SuggestionsFor only matches within this distance; cobra sets it lazily
	// in its own lookup, which the Args validator above bypasses.
	rootCmd.SuggestionsMinimumDistance = 2
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &cmdregistry.DispatchError{Kind: cmdregistry.InvalidArgs, Command: cmd.Name(), Err: err}
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.options.ConfigFile, "config", "c", "", "Configuration file to use instead of ~/.config/qimu.ini")
	flags.BoolVar(&ctx.options.Debug, "debug", false, "Enable debug output (logging level: DEBUG)")
	flags.BoolVar(&ctx.options.Verbose, "verbose", false, "Enable verbose output (logging level: INFO)")
	flags.StringVar(&ctx.options.LogFile, "log", "", "Also append the log to `FILE`")

	for _, command := range registry.Commands() {
		rootCmd.AddCommand(bindCommand(ctx, command))
	}
	return rootCmd
}

// bindCommand turns a registered command into a cobra subcommand.
func bindCommand(ctx *commandContext, command cmdregistry.Command) *cobra.Command {
	spec := command.Spec()
	use := spec.Name
	if spec.Usage != "" {
		use += " " + spec.Usage
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: spec.Short,
		Long:  spec.Long,
		Args: func(_ *cobra.Command, args []string) error {
			if spec.Args == nil {
				return nil
			}
			if err := spec.Args(args); err != nil {
				return &cmdregistry.DispatchError{Kind: cmdregistry.InvalidArgs, Command: spec.Name, Err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if code := command.Run(ctx.execution(), args); code != cmdregistry.ExitOK {
				return &exitError{code: code}
			}
			return nil
		},
	}
	if spec.Flags != nil {
		spec.Flags(cmd.Flags())
	}
	return cmd
}
