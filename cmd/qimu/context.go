package main

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"qimu/internal/cmdregistry"
	"qimu/internal/config"
	"qimu/internal/logging"
)

type commandContext struct {
	options cmdregistry.Options
	logs    *logging.Controller
	exec    *cmdregistry.Context
}

func newCommandContext() *commandContext {
	return &commandContext{logs: logging.NewController()}
}

// prepare loads the configuration, configures logging and builds the
// execution context for cmd. Any error aborts the invocation before the
// handler runs.
func (c *commandContext) prepare(cmd *cobra.Command) error {
	override := strings.TrimSpace(c.options.ConfigFile)
	doc, path, exists, err := config.Load(override)
	if err != nil {
		return err
	}

	logFile := strings.TrimSpace(c.options.LogFile)
	if logFile != "" {
		expanded, err := config.ExpandPath(logFile)
		if err != nil {
			return &logging.Error{Kind: logging.SinkUnavailable, Path: logFile, Err: err}
		}
		logFile = expanded
	}
	logger, err := c.logs.Configure(logging.Options{
		Debug:   c.options.Debug,
		Verbose: c.options.Verbose,
		LogFile: logFile,
		Console: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	source := config.SourceOf(override, exists)
	logger.Debug("configuration resolved",
		slog.String("path", path),
		slog.String("source", source.String()),
		slog.Int("keys", doc.Len()),
		slog.String("level", logging.LevelName(c.logs.Level())),
	)

	c.exec = &cmdregistry.Context{
		Config:     doc,
		ConfigPath: path,
		Source:     source,
		Logger:     logger,
		Options:    c.options,
		Flags:      cmd.Flags(),
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
	}
	return nil
}

func (c *commandContext) execution() *cmdregistry.Context {
	return c.exec
}

func (c *commandContext) close() error {
	return c.logs.Close()
}
