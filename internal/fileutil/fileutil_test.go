package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCopyToTemp(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "photo.jpg")
	content := []byte("not really a jpeg")
	if err := os.WriteFile(src, content, 0o644); err != nil {
		t.Fatal(err)
	}

	tmpDir := filepath.Join(dir, "tmp")
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		t.Fatal(err)
	}

	dst, err := CopyToTemp(src, tmpDir, "ct_")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(dst) != tmpDir {
		t.Fatalf("expected copy inside %s, got %s", tmpDir, dst)
	}
	base := filepath.Base(dst)
	if !strings.HasPrefix(base, "ct_") || filepath.Ext(base) != ".jpg" {
		t.Fatalf("unexpected temp name %q", base)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Fatalf("content mismatch: got %q, want %q", got, content)
	}
}

func TestCopyToTempUniqueNames(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.png")
	if err := os.WriteFile(src, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	first, err := CopyToTemp(src, dir, "ct_")
	if err != nil {
		t.Fatal(err)
	}
	second, err := CopyToTemp(src, dir, "ct_")
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Fatalf("expected distinct temp names, got %s twice", first)
	}
}

func TestCopyToTemp_MissingSource(t *testing.T) {
	dir := t.TempDir()
	tmpDir := filepath.Join(dir, "tmp")
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		t.Fatal(err)
	}

	if _, err := CopyToTemp(filepath.Join(dir, "nope.jpg"), tmpDir, "ct_"); err == nil {
		t.Fatal("expected error for missing source")
	}
	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no temp files, found %d", len(entries))
	}
}

func TestCopyToTemp_Directory(t *testing.T) {
	dir := t.TempDir()
	if _, err := CopyToTemp(dir, t.TempDir(), "ct_"); err == nil {
		t.Fatal("expected error when source is a directory")
	}
}

func TestRemoveIfExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gone")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := RemoveIfExists(path); err != nil {
		t.Fatal(err)
	}
	if err := RemoveIfExists(path); err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
	if err := RemoveIfExists(""); err != nil {
		t.Fatalf("expected empty path to be ignored, got %v", err)
	}
}
