package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"qimu/internal/cmdregistry"
	"qimu/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx := newCommandContext()
	defer func() { _ = ctx.close() }()

	cmd := newRootCommand(ctx, newRegistry())
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return exitStatus(stderr, cmd.Execute())
}

func exitStatus(stderr io.Writer, err error) int {
	if err == nil {
		return cmdregistry.ExitOK
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	cmdregistry.PrintError(stderr, err)
	var dispatchErr *cmdregistry.DispatchError
	if errors.As(err, &dispatchErr) {
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", version.Name)
	}
	return cmdregistry.ExitCode(err)
}
