package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// ─── File Picker ─────────────────────────────────────────────────────────────

// listFile is one entry in the file picker: an alternate list file matched
// by the configured glob, with its creation time for display.
type listFile struct {
	path    string
	created time.Time
}

// skipDirs lists directory names that are typically very large and will
// never contain user list files. Skipping them during glob resolution keeps
// startup fast even when the pattern walks a code tree.
var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	".hg":          true,
	".svn":         true,
	".venv":        true,
	"venv":         true,
	"__pycache__":  true,
	".cache":       true,
	"target":       true,
	"dist":         true,
	"build":        true,
}

// resolveListFiles expands a glob pattern (supporting **) and returns the
// matching regular files, newest first. Walks from the static prefix of the
// pattern so wildcards never force a scan of the filesystem root.
func resolveListFiles(glob string) []listFile {
	if glob == "" {
		return nil
	}
	glob = expandHome(glob)

	base := globBase(glob)
	if _, err := os.Stat(base); err != nil {
		return nil
	}

	var files []listFile
	filepath.WalkDir(base, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return filepath.SkipDir
		}
		if d.IsDir() {
			if path != base && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		matched, _ := doublestar.PathMatch(glob, path)
		if !matched {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		files = append(files, listFile{
			path:    path,
			created: fileCreatedTime(path, info.ModTime()),
		})
		return nil
	})
	sort.Slice(files, func(i, j int) bool {
		return files[i].created.After(files[j].created)
	})
	return files
}

// globBase returns the longest directory prefix of a glob pattern that
// contains no wildcard characters (* ? [ {).
func globBase(pattern string) string {
	for i, c := range pattern {
		if c == '*' || c == '?' || c == '[' || c == '{' {
			dir := pattern[:i]
			if j := strings.LastIndex(dir, string(filepath.Separator)); j >= 0 {
				return pattern[:j]
			}
			return "."
		}
	}
	return pattern
}
