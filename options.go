package skikt

import "log/slog"

// Options holds settings for a merge operation.
type Options struct {
	NamePattern    string
	SkipUnreadable bool
	Logger         *slog.Logger
	LogLevel       string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithNamePattern restricts discovery to files whose base name matches the
// given glob pattern (e.g. "config.*" or "app-*.yaml"). The pattern narrows
// the fixed .yaml/.yml extension filter; it cannot widen it. An invalid
// pattern fails the merge.
func WithNamePattern(pattern string) Option {
	return func(opts *Options) {
		opts.NamePattern = pattern
	}
}

// WithSkipUnreadable makes the scan skip unreadable directories and broken
// links, recording one diagnostic per skipped path, instead of failing the
// whole operation on the first traversal error.
func WithSkipUnreadable() Option {
	return func(opts *Options) {
		opts.SkipUnreadable = true
	}
}

// WithLogger sets the logger used for debug events during scanning and
// resolution. It takes precedence over WithLogLevel. When neither is set,
// logging is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithLogLevel enables a JSON logger on stderr at the given level for debug
// events during scanning and resolution. Valid levels are: "debug", "info",
// "warn", "error". An invalid level falls back to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}
