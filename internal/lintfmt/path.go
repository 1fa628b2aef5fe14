package lintfmt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAsIs prints the path exactly as reported.
	PathModeAsIs PathMode = iota
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
	// PathModeAuto keeps short or relative paths and shortens long absolute
	// ones to their basename.
	PathModeAuto
)

// ParsePathMode converts a configuration value into PathMode.
func ParsePathMode(s string) (PathMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "as-is", "asis":
		return PathModeAsIs, nil
	case "absolute":
		return PathModeAbsolute, nil
	case "relative":
		return PathModeRelative, nil
	case "basename":
		return PathModeBasename, nil
	case "auto":
		return PathModeAuto, nil
	default:
		return PathModeAsIs, fmt.Errorf("invalid path mode %q (expected as-is|absolute|relative|basename|auto)", s)
	}
}

// autoPathLimit is the length above which auto mode falls back to basename.
const autoPathLimit = 40

// DisplayPath formats path for output. It never affects grouping or sorting.
func DisplayPath(path string, mode PathMode, baseDir string) string {
	if path == "" {
		return path
	}
	switch mode {
	case PathModeAbsolute:
		if baseDir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		if abs, err := filepath.Abs(path); err == nil {
			return filepath.ToSlash(abs)
		}
		return path
	case PathModeRelative:
		return relativePath(path, baseDir)
	case PathModeBasename:
		return filepath.Base(path)
	case PathModeAuto:
		if len(path) < autoPathLimit || !filepath.IsAbs(path) {
			return path
		}
		return filepath.Base(path)
	default:
		return path
	}
}

// relativePath makes path relative to baseDir, or to the working directory
// when baseDir is empty. Paths outside baseDir keep their ".." segments.
// Only paths on another volume fall back to absolute.
func relativePath(path, baseDir string) string {
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return path
		}
		baseDir = wd
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(absBase, absPath)
	if err != nil {
		return filepath.ToSlash(absPath)
	}
	return filepath.ToSlash(rel)
}
