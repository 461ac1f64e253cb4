package hierarchy

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrOutsideBase is returned when the target path is neither the base
// directory nor nested under it.
var ErrOutsideBase = errors.New("target path is not within base directory")

// Resolve canonicalizes baseDir and targetPath (absolute, symlinks
// evaluated) and verifies that the target lies inside the base. It returns
// both canonical paths and the ordered path segments from base to target.
// The segment list is empty when target and base are the same location.
//
// Resolve reads only the current symlink state of the filesystem; it has no
// other side effects. Both paths must exist, since canonicalization follows
// the links on disk.
func Resolve(baseDir, targetPath string) (string, string, []string, error) {
	base, err := canonicalize(baseDir)
	if err != nil {
		return "", "", nil, fmt.Errorf("resolving base directory %q: %w", baseDir, err)
	}

	target, err := canonicalize(targetPath)
	if err != nil {
		return "", "", nil, fmt.Errorf("resolving target path %q: %w", targetPath, err)
	}

	rel, ok := relativeSegments(base, target)
	if !ok {
		return "", "", nil, fmt.Errorf("target %q, base %q: %w", target, base, ErrOutsideBase)
	}

	return base, target, rel, nil
}

func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("evaluating symlinks: %w", err)
	}

	return resolved, nil
}

// relativeSegments splits the part of target below base into path segments.
// Containment is checked segment-wise, so a sibling whose name shares a
// string prefix with base (e.g. /r vs /rx) is correctly rejected.
func relativeSegments(base, target string) ([]string, bool) {
	if target == base {
		return nil, true
	}

	prefix := base
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}

	if !strings.HasPrefix(target, prefix) {
		return nil, false
	}

	return strings.Split(target[len(prefix):], string(filepath.Separator)), true
}
