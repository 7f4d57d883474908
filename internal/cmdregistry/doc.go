// Package cmdregistry defines the contract between the qimu entrypoint and its
// subcommands. A Command describes itself with a Spec (name, usage, argument
// validator, flag schema) and runs against a shared Context that carries the
// resolved configuration, the configured logger and the output streams.
//
// The Registry only stores commands; cmd/qimu turns it into a cobra tree. This
// lets subcommands live in their own files without the entrypoint knowing
// their flags.
package cmdregistry
