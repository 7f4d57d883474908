package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"qimu/internal/testsupport"
)

func TestConfigShowEmpty(t *testing.T) {
	testsupport.TempHome(t)

	out, errOut, code := runCLI(t, "config")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if out != "[qimu]\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestConfigSetBareKey(t *testing.T) {
	home := testsupport.TempHome(t)

	out, _, code := runCLI(t, "config", "--set", "foo", "bar")
	if code != 0 || out != "" {
		t.Fatalf("expected silent success, got exit %d stdout %q", code, out)
	}
	if v, ok := loadDefault(t).Get("qimu", "foo"); !ok || v != "bar" {
		t.Fatalf("qimu.foo = %q, %v", v, ok)
	}

	out, _, code = runCLI(t, "config")
	if code != 0 || out != "[qimu]\nfoo = bar\n" {
		t.Fatalf("unexpected show output %q (exit %d)", out, code)
	}
	if _, err := os.Stat(testsupport.DefaultConfigPath(home)); err != nil {
		t.Fatalf("expected default config to be written: %v", err)
	}
}

func TestConfigSetCreatesSection(t *testing.T) {
	testsupport.TempHome(t)

	if _, errOut, code := runCLI(t, "config", "--set", "sec.foo", "bar baz"); code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	doc := loadDefault(t)
	if v, ok := doc.Get("sec", "foo"); !ok || v != "bar baz" {
		t.Fatalf("sec.foo = %q, %v", v, ok)
	}
	if got := strings.Join(doc.Sections(), ","); got != "qimu,sec" {
		t.Fatalf("unexpected sections %s", got)
	}
}

func TestConfigSetInvalidTarget(t *testing.T) {
	home := testsupport.TempHome(t)

	out, errOut, code := runCLI(t, "config", "--set", "a.b.c", "x")
	if code != 2 || out != "" {
		t.Fatalf("expected exit 2, got %d stdout %q", code, out)
	}
	if !strings.Contains(errOut, `invalid config target "a.b.c"`) {
		t.Fatalf("unexpected stderr %q", errOut)
	}
	if _, err := os.Stat(testsupport.DefaultConfigPath(home)); !os.IsNotExist(err) {
		t.Fatalf("invalid target must not write the file: %v", err)
	}
}

func TestConfigSetRejectsAutoIncrementKey(t *testing.T) {
	home := testsupport.TempHome(t)

	for _, target := range []string{"-", "tools.-"} {
		_, errOut, code := runCLI(t, "config", "--set="+target, "x")
		if code != 2 {
			t.Fatalf("%s: expected exit 2, got %d (%q)", target, code, errOut)
		}
	}
	if _, err := os.Stat(testsupport.DefaultConfigPath(home)); !os.IsNotExist(err) {
		t.Fatalf("rejected target must not write the file: %v", err)
	}
}

func TestConfigSetRequiresValue(t *testing.T) {
	testsupport.TempHome(t)

	for _, args := range [][]string{
		{"config", "--set", "foo"},
		{"config", "--set", "foo", "a", "b"},
		{"config", "stray"},
	} {
		if _, _, code := runCLI(t, args...); code != 2 {
			t.Fatalf("%v: expected exit 2, got %d", args, code)
		}
	}
}

func TestConfigSetWritesOverrideFile(t *testing.T) {
	home := testsupport.TempHome(t)
	override := testsupport.WriteConfig(t, filepath.Join(t.TempDir(), "custom.ini"),
		"[qimu]",
		"threads = 4",
		"",
		"[tools]",
		"blast = /usr/bin/blastn",
	)

	if _, errOut, code := runCLI(t, "-c", override, "config", "--set", "threads", "8"); code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	want := "[qimu]\nthreads = 8\n\n[tools]\nblast = /usr/bin/blastn\n"
	if got := testsupport.ReadFile(t, override); got != want {
		t.Fatalf("unexpected override content %q", got)
	}
	if _, err := os.Stat(testsupport.DefaultConfigPath(home)); !os.IsNotExist(err) {
		t.Fatalf("default config must stay untouched: %v", err)
	}
}

func TestConfigTable(t *testing.T) {
	testsupport.TempHome(t)
	for _, args := range [][]string{
		{"config", "--set", "paths.db", "/data/db"},
		{"config", "--set", "paths.tmp", "/scratch"},
	} {
		if _, _, code := runCLI(t, args...); code != 0 {
			t.Fatalf("%v: exit %d", args, code)
		}
	}

	out, _, code := runCLI(t, "config", "--table")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	for _, want := range []string{"Section", "Parameter", "Value", "paths", "db", "/data/db", "tmp", "/scratch"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "SECTION") {
		t.Fatalf("headers must keep their case:\n%s", out)
	}
	if n := strings.Count(out, "paths"); n != 1 {
		t.Fatalf("section should be printed once per group, found %d:\n%s", n, out)
	}
}
