// Package commands defines the cipherbox CLI and wires dependencies for subcommands.
//
// Commands
//
//   - (none)         Start the interactive shell
//   - shell          Start the interactive shell
//   - encode         Encode text with morse, binary or caesar
//   - decode         Decode text with morse, binary or caesar
//   - add            Add two binary strings in 8-bit arithmetic
//   - history        List recorded conversions (history clear empties it)
//
// # Implementation
//
// The root command loads the config and builds a dependency graph (history
// store, services, adder, animation) before any subcommand runs, so handlers
// share one app context and one logger.
package commands
