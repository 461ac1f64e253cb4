package skikt

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/0xalexb/skikt/hierarchy"
	"github.com/0xalexb/skikt/loader"
	"github.com/0xalexb/skikt/logging"
	"github.com/0xalexb/skikt/merge"
	"github.com/0xalexb/skikt/value"

	"github.com/gobwas/glob"
)

// Result is the outcome of a hierarchical merge: the effective
// configuration tree and the non-fatal diagnostics collected on the way.
// The tree is always a mapping, empty when no files were found.
type Result struct {
	Config      value.Value
	Diagnostics []string
}

// Merge resolves the effective configuration for targetPath under baseDir.
//
// Every YAML file (.yaml or .yml) whose directory lies between baseDir and
// the target is collected, parsed, and deep-merged in ascending depth
// order, so values closer to the root act as defaults and values closer to
// the target override them.
//
// Diagnostics on the returned Result report same-depth key collisions, an
// empty hierarchy, and — under WithSkipUnreadable — skipped paths. They
// never cause an error; fatal conditions are a target outside the base, an
// unreadable path under the default scan policy, and an unreadable or
// malformed file.
func Merge(baseDir, targetPath string, opts ...Option) (*Result, error) {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	scanOpts, err := options.scanOptions()
	if err != nil {
		return nil, err
	}

	base, _, rel, err := hierarchy.Resolve(baseDir, targetPath)
	if err != nil {
		return nil, fmt.Errorf("resolving hierarchy: %w", err)
	}

	files, diags, err := hierarchy.Scan(base, rel, scanOpts)
	if err != nil {
		return nil, fmt.Errorf("scanning hierarchy: %w", err)
	}

	if len(files) == 0 {
		diags = append(diags, fmt.Sprintf(
			"No YAML files found in hierarchy from %s to %s", baseDir, targetPath,
		))

		return &Result{Config: value.Mapping(), Diagnostics: diags}, nil
	}

	configs, err := loader.Load(files)
	if err != nil {
		return nil, fmt.Errorf("loading configuration files: %w", err)
	}

	merged, collisions := merge.ByDepth(configs)

	return &Result{Config: merged, Diagnostics: append(diags, collisions...)}, nil
}

func (o *Options) scanOptions() (hierarchy.ScanOptions, error) {
	scanOpts := hierarchy.ScanOptions{
		SkipUnreadable: o.SkipUnreadable,
		Logger:         o.logger(),
	}

	if o.NamePattern != "" {
		compiled, err := glob.Compile(o.NamePattern)
		if err != nil {
			return hierarchy.ScanOptions{}, fmt.Errorf("compiling name pattern %q: %w", o.NamePattern, err)
		}

		scanOpts.NamePattern = compiled
	}

	return scanOpts, nil
}

// logger resolves the effective logger: an explicitly injected one wins,
// then a stderr JSON logger at the configured level, then discard.
func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	if o.LogLevel != "" {
		return logging.NewLogger(logging.LoggerConfig{Level: o.LogLevel}, os.Stderr)
	}

	return logging.Nop()
}
