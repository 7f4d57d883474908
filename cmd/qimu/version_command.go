package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"qimu/internal/cmdregistry"
	"qimu/internal/version"
)

type versionCommand struct {
	full     bool
	resolver version.Resolver
}

func newVersionCommand() *versionCommand {
	return &versionCommand{resolver: version.NewBuildInfoResolver()}
}

func (c *versionCommand) Spec() cmdregistry.Spec {
	return cmdregistry.Spec{
		Name:  "version",
		Usage: "[--full]",
		Short: "Print the qimu version",
		Long:  "Print \"qimu {version}\" to standard output. With --full, also print the version of each bundled dependency.",
		Args:  cmdregistry.NoArgs,
		Flags: func(fs *pflag.FlagSet) {
			fs.BoolVar(&c.full, "full", false, "Also print dependency versions")
		},
	}
}

func (c *versionCommand) Run(ctx *cmdregistry.Context, _ []string) int {
	fmt.Fprintln(ctx.Stdout, version.Line())
	if !c.full {
		return cmdregistry.ExitOK
	}
	for _, report := range version.Collect(c.resolver, version.Dependencies) {
		if report.Err != nil {
			ctx.Log().Debug("dependency version unavailable",
				slog.String("module", report.Module),
				slog.String("error", report.Err.Error()),
			)
		}
		fmt.Fprintln(ctx.Stdout, report.String())
	}
	return cmdregistry.ExitOK
}
