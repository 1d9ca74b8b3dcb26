package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"imagestage/internal/testsupport"
)

func TestIdentifyCommandTable(t *testing.T) {
	env := setupCLITestEnv(t)
	src := testsupport.WriteFakeImage(t, env.baseDir, "photo.jpg", 800, 600, "jpeg")

	out, _, err := runCLI(t, env, "identify", src)
	if err != nil {
		t.Fatalf("identify: %v", err)
	}
	requireContains(t, out, "photo.jpg")
	requireContains(t, out, "800")
	requireContains(t, out, "600")
	requireContains(t, out, "jpeg")
	requireNoWorkingCopies(t, env)
}

func TestIdentifyCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	first := testsupport.WriteFakeImage(t, env.baseDir, "a.png", 10, 20, "png")
	second := testsupport.WriteFakeImage(t, env.baseDir, "b.gif", 30, 40, "gif")

	out, _, err := runCLI(t, env, "identify", "--json", first, second)
	if err != nil {
		t.Fatalf("identify: %v", err)
	}
	var results []identifyResult
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if len(results) != 2 {
		t.Fatalf("expected two results, got %d", len(results))
	}
	if results[0].Width != 10 || results[0].Height != 20 || results[0].Format != "png" {
		t.Fatalf("unexpected first result %+v", results[0])
	}
	if results[1].Path != second || results[1].Format != "gif" {
		t.Fatalf("unexpected second result %+v", results[1])
	}
}

func TestIdentifyCommandMissingFile(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, env, "identify", filepath.Join(env.baseDir, "missing.jpg"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	requireContains(t, err.Error(), "missing.jpg")
}
