// Package fonts locates font files for the window text. A configured font may be a file path
// or a loose family name such as "Inter" that is matched against the font directories.
package fonts

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Exts are the extensions treated as font files.
var Exts = []string{".ttf", ".otf"}

// ErrNotFound is returned when no font file matches.
var ErrNotFound = errors.New("font not found")

// BaseDirs returns the directories searched for fonts, relative to the working directory.
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns the paths of all font files under dir, relative to dir with forward slashes.
// A missing dir yields no paths and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalize lowercases and drops spaces, dashes, and underscores.
func normalize(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
}

// Find searches dirs for a font whose relative path contains search (loosely matched) and
// returns its full path. A "Regular" face wins when several match.
func Find(search string, dirs ...string) (string, error) {
	norm := normalize(strings.TrimSuffix(search, filepath.Ext(search)))
	if norm == "" {
		return "", ErrNotFound
	}
	var matches []string
	for _, base := range dirs {
		list, err := ScanDir(base)
		if err != nil {
			continue
		}
		for _, rel := range list {
			if strings.Contains(normalize(rel), norm) {
				matches = append(matches, filepath.Join(base, filepath.FromSlash(rel)))
			}
		}
	}
	if len(matches) == 0 {
		return "", ErrNotFound
	}
	for _, m := range matches {
		if strings.Contains(strings.ToLower(filepath.Base(m)), "regular") {
			return m, nil
		}
	}
	return matches[0], nil
}

// Resolve returns name itself when it is an existing font file, otherwise the best match in
// BaseDirs. An empty name means the built-in font and resolves to "".
func Resolve(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil
	}
	if fi, err := os.Stat(name); err == nil && !fi.IsDir() && isFont(name) {
		return name, nil
	}
	return Find(name, BaseDirs()...)
}
