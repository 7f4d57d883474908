package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"qimu/internal/cmdregistry"
	"qimu/internal/config"
	"qimu/internal/reads"
)

// readsTableSection holds per-user defaults for reads-table flags.
const readsTableSection = "reads-table"

type readsTableCommand struct {
	extensions  []string
	forwardTags []string
	reverseTags []string
	separators  []string
	strip       []string
	singleEnd   bool
	format      string
	columnSep   string
	colID       string
	colFor      string
	colRev      string
	absolute    bool
}

func newReadsTableCommand() *readsTableCommand {
	return &readsTableCommand{}
}

func (c *readsTableCommand) Spec() cmdregistry.Spec {
	defaults := reads.DefaultOptions()
	table := reads.DefaultTableOptions()
	return cmdregistry.Spec{
		Name:  "reads-table",
		Usage: "PATH... [options]",
		Short: "Generate a sample table from directories of sequencing reads",
		Long: "Scan each PATH (non-recursively) for read files, pair forward and reverse\n" +
			"reads by tag and print a table mapping sample IDs to read paths.\n\n" +
			"Defaults for --format, --abs and --extensions may be set in the\n" +
			"[reads-table] section of the configuration file.",
		Args: cmdregistry.MinimumArgs(1),
		Flags: func(fs *pflag.FlagSet) {
			fs.StringArrayVarP(&c.extensions, "extensions", "e", defaults.Extensions, "File extensions to include (repeatable)")
			fs.StringArrayVarP(&c.forwardTags, "tag-for", "1", defaults.ForwardTags, "Tags marking forward reads (repeatable)")
			fs.StringArrayVarP(&c.reverseTags, "tag-rev", "2", defaults.ReverseTags, "Tags marking reverse reads (repeatable)")
			fs.StringArrayVarP(&c.separators, "separators", "s", defaults.Separators, "Characters that split sample names (repeatable)")
			fs.StringArrayVar(&c.strip, "strip", nil, "Strings removed from sample IDs (repeatable)")
			fs.BoolVar(&c.singleEnd, "single-end", false, "Treat every read file as single-end")
			fs.StringVarP(&c.format, "format", "f", "", "Predefined layout: "+strings.Join(reads.PresetNames(), ", "))
			fs.StringVar(&c.columnSep, "tab-sep", table.Separator, "Column separator")
			fs.StringVar(&c.colID, "col-id", table.ColID, "Column name for sample IDs")
			fs.StringVar(&c.colFor, "col-for", table.ColFor, "Column name for forward reads")
			fs.StringVar(&c.colRev, "col-rev", table.ColRev, "Column name for reverse reads")
			fs.BoolVar(&c.absolute, "abs", false, "Print absolute paths instead of paths relative to the working directory")
		},
	}
}

func (c *readsTableCommand) Run(ctx *cmdregistry.Context, args []string) int {
	logger := ctx.Log()
	if err := c.applyConfigDefaults(ctx); err != nil {
		return ctx.Fail(err)
	}

	tableOpts := reads.TableOptions{
		Separator: c.columnSep,
		ColID:     c.colID,
		ColFor:    c.colFor,
		ColRev:    c.colRev,
		Absolute:  c.absolute,
	}
	if c.format != "" {
		preset, err := reads.LookupPreset(c.format)
		if err != nil {
			return ctx.Fail(&cmdregistry.DispatchError{Kind: cmdregistry.InvalidArgs, Command: "reads-table", Err: err})
		}
		tableOpts = preset.Apply(tableOpts)
	}
	if !tableOpts.Absolute {
		cwd, err := workingDir()
		if err != nil {
			return ctx.Fail(err)
		}
		tableOpts.BaseDir = cwd
	}

	logger.Debug("scanning read directories",
		slog.Any("paths", args),
		slog.Any("extensions", c.extensions),
		slog.Any("forward_tags", c.forwardTags),
		slog.Any("reverse_tags", c.reverseTags),
		slog.Any("separators", c.separators),
		slog.Any("strip", c.strip),
	)
	run, err := reads.Build(reads.Options{
		Dirs:           args,
		Extensions:     c.extensions,
		ForwardTags:    c.forwardTags,
		ReverseTags:    c.reverseTags,
		Separators:     c.separators,
		Strip:          c.strip,
		ForceSingleEnd: c.singleEnd,
		Logger:         logger,
	})
	if err != nil {
		if reads.IsKind(err, reads.NotDirectory) {
			err = &cmdregistry.DispatchError{Kind: cmdregistry.InvalidArgs, Command: "reads-table", Err: err}
		}
		return ctx.Fail(err)
	}
	if run.Len() == 0 {
		logger.Warn("no read files found", slog.Any("paths", args))
		return cmdregistry.ExitOK
	}

	readType := reads.SingleEnd
	if run.IsPairedEnd() {
		readType = reads.PairedEnd
	}
	logger.Info("samples found", slog.Int("count", run.Len()), slog.String("type", readType.String()))

	fmt.Fprintln(ctx.Stdout, run.Table(tableOpts))
	return cmdregistry.ExitOK
}

// applyConfigDefaults fills flags left unset on the command line from the
// [reads-table] config section.
func (c *readsTableCommand) applyConfigDefaults(ctx *cmdregistry.Context) error {
	doc := ctx.Config
	if doc == nil {
		return nil
	}
	if v, ok := doc.Get(readsTableSection, "format"); ok && !ctx.Changed("format") {
		c.format = strings.TrimSpace(v)
	}
	if v, ok := doc.Get(readsTableSection, "abs"); ok && !ctx.Changed("abs") {
		abs, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return &config.Error{Kind: config.Malformed, Path: ctx.ConfigPath, Err: fmt.Errorf("%s.abs: %w", readsTableSection, err)}
		}
		c.absolute = abs
	}
	if v, ok := doc.Get(readsTableSection, "extensions"); ok && !ctx.Changed("extensions") {
		if exts := splitList(v); len(exts) > 0 {
			c.extensions = exts
		}
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func workingDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determine working directory: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(cwd); err == nil {
		return resolved, nil
	}
	return cwd, nil
}
