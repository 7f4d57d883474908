package cmdregistry

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Spec describes a subcommand to the dispatcher.
type Spec struct {
	Name string
	// Usage is the argument synopsis shown after the name, e.g. "[--full]".
	Usage string
	Short string
	Long  string
	// Args validates positional arguments. Nil accepts anything.
	Args func(args []string) error
	// Flags declares the subcommand's own flags. Nil means none.
	Flags func(fs *pflag.FlagSet)
}

// Command is a pluggable subcommand. Run returns the process exit status.
type Command interface {
	Spec() Spec
	Run(ctx *Context, args []string) int
}

// Registry maps subcommand names to commands, keeping registration order.
type Registry struct {
	order    []string
	commands map[string]Command
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds cmd. It panics on an empty or duplicate name.
func (r *Registry) Register(cmd Command) {
	name := strings.TrimSpace(cmd.Spec().Name)
	if name == "" {
		panic("cmdregistry: command registered without a name")
	}
	if _, exists := r.commands[name]; exists {
		panic(fmt.Sprintf("command %s already registered", name))
	}
	r.commands[name] = cmd
	r.order = append(r.order, name)
}

// Lookup returns the command and whether it exists.
func (r *Registry) Lookup(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Commands returns every command in registration order.
func (r *Registry) Commands() []Command {
	out := make([]Command, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.commands[name])
	}
	return out
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}
