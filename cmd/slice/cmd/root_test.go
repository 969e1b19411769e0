package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	if args == nil {
		args = []string{} // nil would make cobra fall back to os.Args
	}
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

// Must run before any test that passes -s, since flag values stick to the
// package-level command between Execute calls.
func TestRootDefaultsToWholeInput(t *testing.T) {
	got, err := runRoot(t, "a\r\nb\nc")
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if got != "a\nb\nc\n" {
		t.Errorf("output = %q, want %q", got, "a\nb\nc\n")
	}
}

func TestRootSlicesFile(t *testing.T) {
	path := writeTempFile(t, "1\n2\n3\n4\n5\n")

	got, err := runRoot(t, "", "-s", "1:3", path)
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if got != "2\n3\n" {
		t.Errorf("output = %q, want %q", got, "2\n3\n")
	}
}

func TestRootSlicesStdin(t *testing.T) {
	got, err := runRoot(t, "a\nb\nc\n", "-s", "-2:", "-")
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if got != "b\nc\n" {
		t.Errorf("output = %q, want %q", got, "b\nc\n")
	}
}

func TestRootEmptyRangeSucceeds(t *testing.T) {
	got, err := runRoot(t, "a\nb\n", "--slice", "1:1")
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if got != "" {
		t.Errorf("output = %q, want empty", got)
	}
}

func TestRootRejectsMalformedSlice(t *testing.T) {
	if _, err := runRoot(t, "", "-s", "x:1"); err == nil {
		t.Errorf("Execute() succeeded with malformed slice")
	}
	if _, err := runRoot(t, "", "-s", "1:2:3"); err == nil {
		t.Errorf("Execute() succeeded with three-part slice")
	}
}

func TestRootRejectsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.txt")
	if _, err := runRoot(t, "", "-s", ":", path); err == nil {
		t.Errorf("Execute() succeeded with missing file")
	}
}

// Keep last: the version flag value sticks to rootCmd once set.
func TestRootVersion(t *testing.T) {
	got, err := runRoot(t, "", "--version")
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if !strings.Contains(got, "slice version") {
		t.Errorf("version output = %q, want it to name the tool", got)
	}
}
