// Package app wires application dependencies for the CLI.
//
// It loads Config, then builds the history store, the conversion and history
// services, the adder and the shell animation, exposing them via the Wire
// struct for commands to use.
package app
