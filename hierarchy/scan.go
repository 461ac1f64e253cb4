package hierarchy

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/0xalexb/skikt/logging"

	"github.com/gobwas/glob"
)

// ScanOptions tune file discovery. The zero value scans with the default
// policy: every YAML file is considered and an unreadable directory aborts
// the scan.
type ScanOptions struct {
	// NamePattern, when non-nil, restricts discovery to files whose base
	// name matches the glob. The extension filter still applies.
	NamePattern glob.Glob
	// SkipUnreadable switches the scan from fail-fast to skip-and-diagnose:
	// unreadable directories and broken links are recorded as diagnostics
	// instead of aborting the walk.
	SkipUnreadable bool
	// Logger receives debug events for visited directories. Nil discards.
	Logger *slog.Logger
}

// Scan walks baseDir recursively, following symbolic links, and collects
// every YAML configuration file whose containing directory lies on the path
// from baseDir to the target. targetSegments is the target's location
// relative to baseDir as produced by Resolve; files directly in baseDir are
// always candidates.
//
// A directory is revisited at most once by canonical path, so link cycles
// terminate. Returned paths are sorted lexicographically. The second return
// holds non-fatal diagnostics produced under the SkipUnreadable policy.
func Scan(baseDir string, targetSegments []string, opts ScanOptions) ([]string, []string, error) {
	walker := &walker{
		opts:    opts,
		target:  targetSegments,
		visited: make(map[string]struct{}),
	}

	if walker.opts.Logger == nil {
		walker.opts.Logger = logging.Nop()
	}

	err := walker.walk(baseDir, nil)
	if err != nil {
		return nil, nil, err
	}

	sort.Strings(walker.files)

	return walker.files, walker.diags, nil
}

type walker struct {
	opts    ScanOptions
	target  []string
	visited map[string]struct{}
	files   []string
	diags   []string
}

func (w *walker) walk(dir string, segments []string) error {
	canonical, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return w.unreadable(dir, err)
	}

	if _, seen := w.visited[canonical]; seen {
		return nil
	}

	w.visited[canonical] = struct{}{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return w.unreadable(dir, err)
	}

	w.opts.Logger.Debug("scanning directory", "path", dir, "depth", len(segments))

	onTargetPath := isPrefix(segments, w.target)

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			info, statErr := os.Stat(path)
			if statErr != nil {
				err := w.unreadable(path, statErr)
				if err != nil {
					return err
				}

				continue
			}

			isDir = info.IsDir()
		}

		if isDir {
			child := make([]string, 0, len(segments)+1)
			child = append(child, segments...)
			child = append(child, entry.Name())

			err := w.walk(path, child)
			if err != nil {
				return err
			}

			continue
		}

		if onTargetPath && w.wantFile(entry.Name()) {
			w.files = append(w.files, path)
		}
	}

	return nil
}

// wantFile applies the extension filter and the optional name pattern.
// Extensions match case-sensitively on the two conventional forms.
func (w *walker) wantFile(name string) bool {
	ext := filepath.Ext(name)
	if ext != ".yaml" && ext != ".yml" {
		return false
	}

	if w.opts.NamePattern != nil && !w.opts.NamePattern.Match(name) {
		return false
	}

	return true
}

func (w *walker) unreadable(path string, cause error) error {
	if w.opts.SkipUnreadable {
		w.diags = append(w.diags, fmt.Sprintf("Skipping unreadable path %s: %v", path, cause))
		w.opts.Logger.Debug("skipping unreadable path", "path", path, "error", cause)

		return nil
	}

	return fmt.Errorf("reading %q: %w", path, cause)
}

// isPrefix reports whether dir is base itself or an ancestor-or-equal of
// the target location, segment by segment.
func isPrefix(dir, target []string) bool {
	if len(dir) > len(target) {
		return false
	}

	for i := range dir {
		if dir[i] != target[i] {
			return false
		}
	}

	return true
}
