package cmdregistry

import (
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"qimu/internal/config"
	"qimu/internal/logging"
)

// Options are the parsed general arguments.
type Options struct {
	ConfigFile string
	Debug      bool
	Verbose    bool
	LogFile    string
}

// Context is built once per invocation, after configuration is loaded and
// logging is configured, and handed to the selected command.
type Context struct {
	Config     *config.Document
	ConfigPath string
	Source     config.Source
	Logger     *slog.Logger
	Options    Options
	// Flags is the selected command's parsed flag set.
	Flags  *pflag.FlagSet
	Stdout io.Writer
	Stderr io.Writer
}

// SaveConfig persists the in-memory document to the path it was loaded from.
func (c *Context) SaveConfig() error {
	return config.Persist(c.Config, c.ConfigPath)
}

// Fail reports err on the error stream and returns its exit status.
func (c *Context) Fail(err error) int {
	PrintError(c.Stderr, err)
	return ExitCode(err)
}

// Changed reports whether the named flag was given on the command line.
func (c *Context) Changed(name string) bool {
	return c.Flags != nil && c.Flags.Changed(name)
}

// Log returns the configured logger, or a discarding one.
func (c *Context) Log() *slog.Logger {
	if c.Logger == nil {
		return logging.NewNop()
	}
	return c.Logger
}
