package cmdregistry

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

type stubCommand struct {
	name string
	hit  *bool
}

func (s stubCommand) Spec() Spec {
	return Spec{
		Name:  s.name,
		Short: "stub",
		Args:  NoArgs,
		Flags: func(fs *pflag.FlagSet) { fs.Bool("flag", false, "test flag") },
	}
}

func (s stubCommand) Run(ctx *Context, _ []string) int {
	if s.hit != nil {
		*s.hit = true
	}
	if ctx.Options.ConfigFile != "custom.ini" {
		return ExitFailure
	}
	return ExitOK
}

func TestRegistryRegisterLookup(t *testing.T) {
	r := New()
	hit := false
	r.Register(stubCommand{name: "sample", hit: &hit})

	cmd, ok := r.Lookup("sample")
	if !ok {
		t.Fatalf("command not found")
	}
	if code := cmd.Run(&Context{Options: Options{ConfigFile: "custom.ini"}}, nil); code != ExitOK {
		t.Fatalf("unexpected exit %d", code)
	}
	if !hit {
		t.Fatalf("command was not invoked")
	}
	if _, ok := r.Lookup("missing"); ok {
		t.Fatalf("expected missing command lookup to fail")
	}
}

func TestRegistryKeepsOrder(t *testing.T) {
	r := New()
	for _, name := range []string{"version", "config", "reads-table"} {
		r.Register(stubCommand{name: name})
	}
	if got := strings.Join(r.Names(), ","); got != "version,config,reads-table" {
		t.Fatalf("unexpected order %s", got)
	}
	cmds := r.Commands()
	if len(cmds) != 3 || cmds[2].Spec().Name != "reads-table" {
		t.Fatalf("unexpected commands %v", cmds)
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	r := New()
	r.Register(stubCommand{name: "dup"})
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on duplicate register")
		}
	}()
	r.Register(stubCommand{name: "dup"})
}

func TestRegistryEmptyNamePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on empty name")
		}
	}()
	New().Register(stubCommand{name: "  "})
}

func TestArgValidators(t *testing.T) {
	cases := []struct {
		name    string
		check   func([]string) error
		args    []string
		wantErr bool
	}{
		{"none ok", NoArgs, nil, false},
		{"none extra", NoArgs, []string{"x"}, true},
		{"exact ok", ExactArgs(1), []string{"x"}, false},
		{"exact short", ExactArgs(1), nil, true},
		{"min ok", MinimumArgs(1), []string{"a", "b"}, false},
		{"min short", MinimumArgs(1), nil, true},
	}
	for _, tc := range cases {
		err := tc.check(tc.args)
		if (err != nil) != tc.wantErr {
			t.Fatalf("%s: err=%v wantErr=%v", tc.name, err, tc.wantErr)
		}
	}
}
