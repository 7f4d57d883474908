package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"qimu/internal/cmdregistry"
	"qimu/internal/config"
)

type configCommand struct {
	target string
	table  bool
	flags  *pflag.FlagSet
}

func newConfigCommand() *configCommand {
	return &configCommand{}
}

func (c *configCommand) Spec() cmdregistry.Spec {
	return cmdregistry.Spec{
		Name:  "config",
		Usage: "[--set TARGET VALUE] [--table]",
		Short: "Show or change configuration settings",
		Long: "Without options, print the resolved configuration in INI form.\n\n" +
			"--set TARGET VALUE stores VALUE and saves the file that was loaded. TARGET is\n" +
			"\"section.key\", or a bare key for the [qimu] section.",
		Args: c.validateArgs,
		Flags: func(fs *pflag.FlagSet) {
			c.flags = fs
			fs.StringVar(&c.target, "set", "", "Set `TARGET` (section.key, or key for [qimu]) to the VALUE argument")
			fs.BoolVar(&c.table, "table", false, "Print the configuration as a table")
		},
	}
}

func (c *configCommand) setting() bool {
	return c.flags != nil && c.flags.Changed("set")
}

func (c *configCommand) validateArgs(args []string) error {
	if !c.setting() {
		return cmdregistry.NoArgs(args)
	}
	if err := cmdregistry.ExactArgs(1)(args); err != nil {
		return fmt.Errorf("--set requires TARGET and VALUE: %w", err)
	}
	return nil
}

func (c *configCommand) Run(ctx *cmdregistry.Context, args []string) int {
	if c.setting() {
		return c.set(ctx, c.target, args[0])
	}

	ctx.Log().Info("configuration file",
		slog.String("path", ctx.ConfigPath),
		slog.String("source", ctx.Source.String()),
	)
	if c.table {
		fmt.Fprintln(ctx.Stdout, renderConfigTable(ctx.Config))
		return cmdregistry.ExitOK
	}
	if _, err := ctx.Config.WriteTo(ctx.Stdout); err != nil {
		return ctx.Fail(fmt.Errorf("write configuration: %w", err))
	}
	return cmdregistry.ExitOK
}

func (c *configCommand) set(ctx *cmdregistry.Context, target, value string) int {
	section, key, err := config.ParseTarget(target)
	if err != nil {
		return ctx.Fail(err)
	}
	ctx.Config.Set(section, key, value)
	if err := ctx.SaveConfig(); err != nil {
		return ctx.Fail(err)
	}
	ctx.Log().Info("configuration saved",
		slog.String("target", section+"."+key),
		slog.String("value", value),
		slog.String("path", ctx.ConfigPath),
	)
	return cmdregistry.ExitOK
}

func renderConfigTable(doc *config.Document) string {
	entries := config.Format(doc)
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Section, e.Key, e.Value})
	}
	return renderTable([]string{"Section", "Parameter", "Value"}, rows, tableOptions{groupFirst: true})
}
