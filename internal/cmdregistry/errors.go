package cmdregistry

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"qimu/internal/config"
	"qimu/internal/logging"
	"qimu/internal/version"
)

// Exit statuses shared by every command.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// DispatchKind classifies failures to route an invocation to a handler.
type DispatchKind int

const (
	// UnknownCommand means the subcommand name is not registered.
	UnknownCommand DispatchKind = iota + 1
	// InvalidArgs means flags or positionals failed the command's schema.
	InvalidArgs
)

func (k DispatchKind) String() string {
	switch k {
	case UnknownCommand:
		return "unknown command"
	case InvalidArgs:
		return "invalid arguments"
	default:
		return "unknown"
	}
}

// DispatchError is a usage error. It always maps to ExitUsage.
type DispatchError struct {
	Kind        DispatchKind
	Command     string
	Suggestions []string
	Err         error
}

func (e *DispatchError) Error() string {
	if e.Kind == UnknownCommand {
		var b strings.Builder
		fmt.Fprintf(&b, "unknown command %q for %q", e.Command, version.Name)
		if len(e.Suggestions) > 0 {
			b.WriteString("\n\nDid you mean this?\n")
			for _, s := range e.Suggestions {
				fmt.Fprintf(&b, "\t%s\n", s)
			}
		}
		return strings.TrimRight(b.String(), "\n")
	}
	if e.Command != "" {
		return fmt.Sprintf("%s: %v", e.Command, e.Err)
	}
	return fmt.Sprint(e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error from the qimu taxonomy to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var dispatchErr *DispatchError
	if errors.As(err, &dispatchErr) {
		return ExitUsage
	}
	if config.IsKind(err, config.InvalidTarget) {
		return ExitUsage
	}
	return ExitFailure
}

// PrintError writes err to w once, prefixed with "Error:". The prefix is
// colored when w is a terminal.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	prefix := "Error:"
	if logging.IsTerminal(w) {
		prefix = text.Colors{text.Bold, text.FgRed}.Sprint(prefix)
	}
	fmt.Fprintf(w, "%s %v\n", prefix, err)
}
