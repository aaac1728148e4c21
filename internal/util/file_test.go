package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureParentDir(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a", "b", "out.pdf")

	if err := EnsureParentDir(target); err != nil {
		t.Fatalf("EnsureParentDir: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "a", "b"))
	if err != nil {
		t.Fatalf("directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("expected a directory")
	}

	if err := EnsureParentDir("out.pdf"); err != nil {
		t.Errorf("bare file name should be accepted, got %v", err)
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")

	want := []byte("%PDF-1.7 not really")
	if err := os.WriteFile(src, want, 0644); err != nil {
		t.Fatal(err)
	}

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(want) {
		t.Errorf("copied content = %q, want %q", got, want)
	}

	if err := CopyFile(filepath.Join(dir, "missing"), dst); err == nil {
		t.Error("expected error for missing source")
	}
}
