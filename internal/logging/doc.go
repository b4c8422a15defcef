// Package logging builds slog loggers for the CLI and engine components and
// provides shared attribute helpers so log fields stay consistently named.
package logging
