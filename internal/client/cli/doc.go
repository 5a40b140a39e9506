// Package cli implements tagctl, a command-line client for the usertags
// server. Every subcommand is also available from an interactive REPL.
package cli
