// Package commands defines the bleprofile CLI and wires dependencies for subcommands.
//
// Commands
//
//   - scan    Scan for advertisers, pick one and append its profile
//   - list    Print the stored profiles
//
// # Implementation
//
// The root command loads configuration (defaults, bleprofile.yaml,
// BLEPROFILE_* variables, then flags), initialises logging and builds the
// dependency graph before any subcommand runs, so handlers share one
// app.Wire. Operator-facing output goes to the command's stdout; logs go
// to stderr.
package commands
