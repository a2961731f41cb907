package cflat

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunFileExecutesProgram(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.cflat")
	if err := os.WriteFile(path, []byte(`void main() { print("hello"); } main();`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out, errOut bytes.Buffer
	if err := RunFile(path, bufio.NewReader(strings.NewReader("")), &out, &errOut); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "hello" {
		t.Fatalf("got %q, want %q", out.String(), "hello")
	}
}

func TestRunFileReportsSyntaxErrorsAndFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.cflat")
	if err := os.WriteFile(path, []byte(`var x = ;`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out, errOut bytes.Buffer
	err := RunFile(path, bufio.NewReader(strings.NewReader("")), &out, &errOut)
	if err == nil {
		t.Fatalf("expected a syntax error")
	}
	if !strings.Contains(errOut.String(), "Syntax:") {
		t.Fatalf("expected a Syntax diagnostic, got %q", errOut.String())
	}
}

func TestRunFileReportsRuntimeErrorsAndFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "div0.cflat")
	if err := os.WriteFile(path, []byte(`print(1/0);`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out, errOut bytes.Buffer
	err := RunFile(path, bufio.NewReader(strings.NewReader("")), &out, &errOut)
	if err == nil {
		t.Fatalf("expected a runtime error")
	}
	if !strings.Contains(errOut.String(), "Runtime:") {
		t.Fatalf("expected a Runtime diagnostic, got %q", errOut.String())
	}
}

// TestRunFileImportsFunctionsFromAnotherFile exercises `import math;`
// against the fixed "./cflatexe/" directory original_source/Importer.java
// hardcodes — imports never resolve relative to the importing file's own
// directory (see DESIGN.md's Driver entry).
func TestRunFileImportsFunctionsFromAnotherFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.Mkdir("cflatexe", 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join("cflatexe", "math.cflat"), []byte(`func square(n) { return n * n; }`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	mainPath := filepath.Join("cflatexe", "main.cflat")
	if err := os.WriteFile(mainPath, []byte("import math;\nprint(square(6));"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out, errOut bytes.Buffer
	if err := RunFile(mainPath, bufio.NewReader(strings.NewReader("")), &out, &errOut); err != nil {
		t.Fatalf("unexpected error: %v, stderr=%s", err, errOut.String())
	}
	if out.String() != "36" {
		t.Fatalf("got %q, want %q", out.String(), "36")
	}
}
