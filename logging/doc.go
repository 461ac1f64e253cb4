// Package logging provides structured JSON logging via log/slog for the
// configuration resolution pipeline, plus a no-op logger used whenever a
// caller does not wire one in.
package logging
