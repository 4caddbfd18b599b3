// Package logging builds the zap logger shared by commands and services.
//
// Logs go to stderr so the interactive shell owns stdout.
package logging
