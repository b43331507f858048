// Package scan turns the command line's path argument into the flat,
// ordered list of files the engine processes.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Collect expands path into the files to process.
//
// With useGlob, path is a glob pattern; combined with recursive, a `**`
// segment spans any number of directories. Otherwise a directory yields
// its files (recursing when recursive is set) and anything else is taken
// as a single file. Results are sorted so runs are deterministic.
func Collect(path string, recursive, useGlob bool) ([]string, error) {
	if useGlob {
		if recursive && strings.Contains(path, "**") {
			return globRecursive(path)
		}
		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, err
		}
		files := make([]string, 0, len(matches))
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil {
				return nil, err
			}
			if !info.IsDir() {
				files = append(files, m)
			}
		}
		sort.Strings(files)
		return files, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	if recursive {
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				files = append(files, filepath.Join(path, entry.Name()))
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// globRecursive expands a pattern containing `**`, which matches zero or
// more path segments. The walk starts at the longest pattern prefix free
// of glob metacharacters.
func globRecursive(pattern string) ([]string, error) {
	segments := strings.Split(filepath.ToSlash(pattern), "/")

	i := 0
	for i < len(segments) && !strings.ContainsAny(segments[i], "*?[") {
		i++
	}
	root := "."
	if i > 0 {
		root = strings.Join(segments[:i], "/")
		if root == "" {
			root = "/"
		}
	}
	rest := segments[i:]

	var files []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		if matchSegments(rest, strings.Split(filepath.ToSlash(rel), "/")) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// matchSegments matches path segments against pattern segments, where a
// `**` segment consumes zero or more of them.
func matchSegments(pattern, parts []string) bool {
	if len(pattern) == 0 {
		return len(parts) == 0
	}
	if pattern[0] == "**" {
		if matchSegments(pattern[1:], parts) {
			return true
		}
		return len(parts) > 0 && matchSegments(pattern, parts[1:])
	}
	if len(parts) == 0 {
		return false
	}
	ok, err := filepath.Match(pattern[0], parts[0])
	if err != nil || !ok {
		return false
	}
	return matchSegments(pattern[1:], parts[1:])
}
