// Package commands defines the lunaphase CLI and wires dependencies for subcommands.
//
// Commands
//
//   - phase      Print the moon's phase for a date (default today)
//   - calendar   Print a month of phases
//   - image      Select, generate or write an image for a date
//   - seed       Render the eight static phase images
//
// # Implementation
//
// The root command reads configuration through viper and builds either the
// in-process engine (internal/app) or, with --server, an HTTP client for a
// running lunaserver. Both satisfy domain.PhaseClient, so subcommands do not
// care which one they talk to.
package commands
