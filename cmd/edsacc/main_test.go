package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempSource(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "in.edsac")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestRunSucceedsOnValidSource(t *testing.T) {
	in := writeTempSource(t, "T 0 F")
	out := filepath.Join(filepath.Dir(in), "out.tape")
	if code := run([]string{"--input", in, "--output", out}); code != 0 {
		t.Fatalf("run() = %d; want 0", code)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected a non-empty tape file")
	}
}

func TestRunReturns1OnParseError(t *testing.T) {
	in := writeTempSource(t, "T 0 F /* unterminated")
	out := filepath.Join(filepath.Dir(in), "out.tape")
	if code := run([]string{"--input", in, "--output", out}); code != 1 {
		t.Errorf("run() = %d; want 1", code)
	}
}

func TestRunReturns2OnLinkError(t *testing.T) {
	in := writeTempSource(t, "A nosuch F")
	out := filepath.Join(filepath.Dir(in), "out.tape")
	if code := run([]string{"--input", in, "--output", out}); code != 2 {
		t.Errorf("run() = %d; want 2", code)
	}
}

func TestRunFallsBackToStdinWhenInputOmitted(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe failed: %v", err)
	}
	if _, err := w.WriteString("T 0 F"); err != nil {
		t.Fatalf("WriteString failed: %v", err)
	}
	w.Close()

	oldStdin := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = oldStdin }()

	out := filepath.Join(t.TempDir(), "out.tape")
	if code := run([]string{"--output", out}); code != 0 {
		t.Fatalf("run() = %d; want 0", code)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected a non-empty tape file")
	}
}

func TestRunHelpReturns0(t *testing.T) {
	if code := run([]string{"--help"}); code != 0 {
		t.Errorf("run() = %d; want 0", code)
	}
}

func TestRunSelectsInitialOrdersVersion(t *testing.T) {
	in := writeTempSource(t, "~io 1\nT 0 S")
	out := filepath.Join(filepath.Dir(in), "out.tape")
	if code := run([]string{"-1", "--input", in, "--output", out}); code != 0 {
		t.Fatalf("run() = %d; want 0", code)
	}
}
