package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dendrascience/numchar/table"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestBuildCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "letters.csv")

	out, err := execute(t, "build", "--start", "65", "--end", "90", "--output", path)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if !strings.Contains(out, "[26 rows x 2 columns]") {
		t.Errorf("expected table dump in output, got:\n%s", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 27 {
		t.Fatalf("expected header and 26 rows, got %d lines", len(lines))
	}
	if lines[0] != "dec,hex,char" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "65,0x41,A" || lines[26] != "90,0x5a,Z" {
		t.Errorf("unexpected first/last rows %q, %q", lines[1], lines[26])
	}
}

func TestBuildCmd_Quiet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")

	out, err := execute(t, "build", "-s", "0", "-e", "31", "-o", path, "--quiet")
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if out != "" {
		t.Errorf("expected no output with --quiet, got %q", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected table at %s: %v", path, err)
	}
}

func TestBuildCmd_InvalidRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")

	_, err := execute(t, "build", "--start", "10", "--end", "5", "--output", path)
	if !errors.Is(err, table.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("expected no file to be written, stat returned %v", statErr)
	}
}

func TestBuildCmd_UnwritableOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "table.csv")

	_, err := execute(t, "build", "--end", "10", "--output", path, "--quiet")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestValidateCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	if _, err := execute(t, "build", "--start", "55000", "--end", "58000", "--output", path, "--quiet"); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	out, err := execute(t, "validate", "--path", path, "--verbose")
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if want := "Rows checked: 953\n"; !strings.Contains(out, want) {
		t.Errorf("expected %q in output, got:\n%s", want, out)
	}
	if !strings.Contains(out, "Plane 0 (Basic Multilingual Plane): 953") {
		t.Errorf("expected plane summary in output, got:\n%s", out)
	}
}

func TestValidateCmd_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	if err := os.WriteFile(path, []byte("dec,hex,char\n66,0x42,B\n65,0x41,A\n"), 0o644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	_, err := execute(t, "validate", "--path", path)
	if !errors.Is(err, table.ErrNotAscending) {
		t.Errorf("expected ErrNotAscending, got %v", err)
	}
}

func TestValidateCmd_RequiresPath(t *testing.T) {
	if _, err := execute(t, "validate"); err == nil {
		t.Error("expected error without --path")
	}
}

func TestCountCmd(t *testing.T) {
	out, err := execute(t, "count", "--start", "0xD700", "--end", "0x100ff")
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	// 0xD700..0xFFFF is 10496 values, less 2048 surrogates; 0x10000..0x100FF is 256.
	for _, want := range []string{"Basic Multilingual Plane", "8448", "Supplementary Multilingual Plane", "256", "Total: 8704 of 10752"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
}
