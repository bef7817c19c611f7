// fileutil/fileutil.go
package fileutil

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ListFiles collects the regular files under root whose names match
// pattern and returns them in natural order. Patterns without a slash
// match base names ("*.bmp"); patterns containing a slash or "**" match
// the slash-separated path relative to root. With recursive off only
// root's direct children are considered.
func ListFiles(root, pattern string, recursive bool) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%q: %w", pattern, doublestar.ErrBadPattern)
	}
	onPath := strings.Contains(pattern, "/") || strings.Contains(pattern, "**")

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !recursive && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		var ok bool
		if onPath {
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return relErr
			}
			ok, _ = doublestar.Match(pattern, filepath.ToSlash(rel))
		} else {
			ok, _ = doublestar.Match(pattern, d.Name())
		}
		if ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(files, func(i, j int) bool {
		return NaturalLess(filepath.Base(files[i]), filepath.Base(files[j]))
	})
	return files, nil
}

// NaturalLess orders names the way humans read them: digit runs compare
// numerically and text runs case-insensitively, so "file2" sorts before
// "file10".
func NaturalLess(a, b string) bool {
	ra, rb := splitDigits(a), splitDigits(b)
	for i := 0; i < len(ra) && i < len(rb); i++ {
		if ra[i] == rb[i] {
			continue
		}
		if i%2 == 1 { // digit run
			if c := compareNumeric(ra[i], rb[i]); c != 0 {
				return c < 0
			}
			continue // same value, different zero padding
		}
		la, lb := strings.ToLower(ra[i]), strings.ToLower(rb[i])
		if la != lb {
			return la < lb
		}
	}
	return len(ra) < len(rb)
}

// splitDigits cuts s into alternating non-digit and digit runs. The run at
// index 0 is always the (possibly empty) non-digit one, so two results
// line up token-for-token under comparison.
func splitDigits(s string) []string {
	if s == "" {
		return []string{""}
	}
	isDigit := func(b byte) bool { return b >= '0' && b <= '9' }
	var runs []string
	if isDigit(s[0]) {
		runs = append(runs, "")
	}
	start := 0
	for i := 1; i < len(s); i++ {
		if isDigit(s[i]) != isDigit(s[i-1]) {
			runs = append(runs, s[start:i])
			start = i
		}
	}
	return append(runs, s[start:])
}

// compareNumeric compares two digit runs without parsing them, so names
// with counters too long for an int64 still order correctly.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
