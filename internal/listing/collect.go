package listing

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// DefaultRoot is listed when no root is given.
const DefaultRoot = "."

// Collect lists the direct children of every root and returns them as one
// listing, sorted by path across all roots and numbered from 1.
func Collect(roots []string) ([]IndexedEntry, error) {
	if len(roots) == 0 {
		roots = []string{DefaultRoot}
	}

	var entries []Entry
	for _, root := range roots {
		children, err := readDir(root)
		if err != nil {
			return nil, fmt.Errorf("couldn't list files in %q: %w", root, err)
		}
		entries = append(entries, children...)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return comparePaths(entries[i].Path, entries[j].Path) < 0
	})

	indexed := make([]IndexedEntry, len(entries))
	for i, entry := range entries {
		indexed[i] = IndexedEntry{Index: i + 1, Entry: entry}
	}
	return indexed, nil
}

// readDir returns the children of dir. Symlinks are not followed, so a link
// to a directory is reported as a file.
func readDir(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entries = append(entries, Entry{
			Path:  joinPath(dir, de.Name()),
			IsDir: de.IsDir(),
		})
	}
	return entries, nil
}

// joinPath appends name to dir without cleaning the result, so "." yields
// "./name" and the listing shows paths the way the user typed the root.
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + "/" + name
}

// comparePaths orders paths component by component. Empty components from
// repeated or trailing separators are ignored.
func comparePaths(a, b string) int {
	ac := splitComponents(a)
	bc := splitComponents(b)
	for i := 0; i < len(ac) && i < len(bc); i++ {
		if c := strings.Compare(ac[i], bc[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(ac) < len(bc):
		return -1
	case len(ac) > len(bc):
		return 1
	}
	// Same components; fall back to the raw bytes for a total order.
	return strings.Compare(a, b)
}

func splitComponents(p string) []string {
	parts := strings.Split(p, "/")
	out := parts[:0]
	for i, part := range parts {
		if part == "" && i != 0 {
			continue
		}
		out = append(out, part)
	}
	return out
}
