//go:build e2e

package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/schaermu/editdir/internal/testutil"
)

type run struct {
	stdout string
	stderr string
	code   int
}

// runBinary executes the built binary in dir with the given editor.
func runBinary(t *testing.T, bin, dir, editor string, args ...string) run {
	t.Helper()

	cmd := exec.Command(bin, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"EDITOR="+editor,
		"XDG_CONFIG_HOME="+t.TempDir(),
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	code := 0
	if err := cmd.Run(); err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			t.Fatalf("run %s: %v", bin, err)
		}
		code = exitErr.ExitCode()
	}
	return run{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

func TestCLI(t *testing.T) {
	bin := testutil.BuildBinary(t)

	t.Run("rename and delete", func(t *testing.T) {
		dir := t.TempDir()
		testutil.CreateTree(t, dir, "baz", "foo/", "foo/inner", "keep")

		r := runBinary(t, bin, dir, testutil.SedEditor(t, "s/baz/boop/;/foo/d"), "--verbose")
		if r.code != 0 {
			t.Fatalf("exit code %d, stderr %q", r.code, r.stderr)
		}
		want := "Moved file \"./baz\" to \"./boop\"\nRemoved directory \"./foo\"\n"
		if r.stdout != want {
			t.Errorf("stdout = %q, want %q", r.stdout, want)
		}
		testutil.AssertTree(t, dir, map[string]string{"boop": "baz", "keep": "keep"})
	})

	t.Run("invalid listing exits non-zero", func(t *testing.T) {
		dir := t.TempDir()
		testutil.CreateTree(t, dir, "baz")

		r := runBinary(t, bin, dir, testutil.SedEditor(t, "s/1/x/"))
		if r.code != 1 {
			t.Fatalf("exit code %d, want 1", r.code)
		}
		if !strings.HasPrefix(r.stderr, `Error: invalid index "x" at row 0`) {
			t.Errorf("stderr = %q", r.stderr)
		}
		testutil.AssertTree(t, dir, map[string]string{"baz": "baz"})
	})

	t.Run("editor failure exits non-zero", func(t *testing.T) {
		dir := t.TempDir()
		testutil.CreateTree(t, dir, "baz")

		r := runBinary(t, bin, dir, testutil.WriteEditorScript(t, "exit 2"))
		if r.code != 1 {
			t.Fatalf("exit code %d, want 1", r.code)
		}
		if !strings.Contains(r.stderr, "returned error code 2") {
			t.Errorf("stderr = %q", r.stderr)
		}
		testutil.AssertTree(t, dir, map[string]string{"baz": "baz"})
	})

	t.Run("version", func(t *testing.T) {
		r := runBinary(t, bin, t.TempDir(), "true", "--version")
		if r.code != 0 || !strings.HasPrefix(r.stdout, "editdir version ") {
			t.Errorf("code %d, stdout %q", r.code, r.stdout)
		}
	})
}
