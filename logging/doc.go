// Package logging builds the log/slog loggers used by the config accessor and the CLI.
// Output is JSON by default or text on request; level and format can come from the environment.
package logging
