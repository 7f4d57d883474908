// Package main hosts the qimu CLI entrypoint and command graph.
//
// The cobra tree is generated from a cmdregistry.Registry: every registered
// command becomes a subcommand with its own flag schema and argument
// validator. Before a subcommand runs, the root resolves the configuration
// file and configures logging exactly once, then hands the shared
// cmdregistry.Context to the handler. Handler exit statuses travel back to
// main through exitError.
//
// Add new functionality as a cmdregistry.Command in its own file and register
// it in newRegistry; the entrypoint itself should not grow command logic.
package main
