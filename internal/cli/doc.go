// Package cli wires together the Cobra command tree for the redline binary.
//
// It defines the root command and all subcommands (diff, decide, apply,
// config, version), binds flags, reads configuration, invokes the diff
// engine, and returns deterministic exit codes.
package cli
