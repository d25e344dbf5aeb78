package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteEditorScript writes an executable /bin/sh script that stands in for
// the user's editor. The scratch file path is available to body as "$1".
func WriteEditorScript(t *testing.T, body string) string {
	t.Helper()
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}

	path := filepath.Join(t.TempDir(), "editor.sh")
	script := "#!/bin/sh\nset -e\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

// SedEditor returns an editor script that applies a sed expression to the
// scratch file in place.
func SedEditor(t *testing.T, expr string) string {
	t.Helper()
	return WriteEditorScript(t, `sed -e '`+expr+`' "$1" > "$1.tmp"
mv "$1.tmp" "$1"`)
}

// ReplaceEditor returns an editor script that overwrites the scratch file
// with content.
func ReplaceEditor(t *testing.T, content string) string {
	t.Helper()
	src := filepath.Join(t.TempDir(), "replacement.txt")
	if err := os.WriteFile(src, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return WriteEditorScript(t, `cat '`+src+`' > "$1"`)
}
