package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// expand resolves an input pattern such as notes/**/*.txt to the regular
// files it matches. Absolute patterns are resolved from the root of the file
// system, others from the working directory.
func expand(pattern string) (fs.FS, []string, error) {
	pattern = filepath.ToSlash(pattern)
	root := "."
	if strings.HasPrefix(pattern, "/") {
		root = "/"
		pattern = strings.TrimLeft(pattern, "/")
	}
	fsys := os.DirFS(root)
	names, err := match(fsys, pattern)
	if err != nil {
		return nil, nil, err
	}
	return fsys, names, nil
}

// match finds the regular files in fsys that match pattern, sorted.
func match(fsys fs.FS, pattern string) ([]string, error) {
	pat := path.Clean(pattern)
	if _, err := doublestar.Match(pat, ""); err != nil {
		return nil, fmt.Errorf("bad input pattern %q: %w", pattern, err)
	}
	all, err := doublestar.Glob(fsys, pat)
	if err != nil {
		return nil, fmt.Errorf("expanding %q: %w", pattern, err)
	}
	var names []string
	for _, name := range all {
		info, err := fs.Stat(fsys, name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		if info.Mode().IsRegular() {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no files match %q", pattern)
	}
	sort.Strings(names)
	return names, nil
}
