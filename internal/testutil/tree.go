package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// CreateTree creates files and directories below dir. Paths ending in "/"
// are created as directories; every other path becomes a file whose content
// is its own relative path.
func CreateTree(t *testing.T, dir string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(dir, p)
		if strings.HasSuffix(p, "/") {
			if err := os.MkdirAll(full, 0755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(p), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

// AssertTree fails the test unless dir contains exactly the given tree.
// Keys are relative paths, directories with a trailing "/"; values are file
// contents and are ignored for directories.
func AssertTree(t *testing.T, dir string, want map[string]string) {
	t.Helper()

	got := make(map[string]string)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == dir {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if d.IsDir() {
			got[rel+"/"] = ""
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		got[rel] = string(content)
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", dir, err)
	}

	normalized := make(map[string]string, len(want))
	for k, v := range want {
		if strings.HasSuffix(k, "/") {
			v = ""
		}
		normalized[k] = v
	}

	if diff := cmp.Diff(normalized, got); diff != "" {
		t.Errorf("tree mismatch in %s (-want +got):\n%s", dir, diff)
	}
}
