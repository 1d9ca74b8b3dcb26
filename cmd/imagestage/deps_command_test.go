package main

import (
	"testing"

	"imagestage/internal/testsupport"
)

func TestDepsCommandReportsTools(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedBinaries())

	out, _, err := runCLI(t, env, "deps")
	if err != nil {
		t.Fatalf("deps: %v", err)
	}
	requireContains(t, out, "identify")
	requireContains(t, out, "convert")
	requireContains(t, out, "yes")
	requireContains(t, out, "ImageMagick 7.1.1-15")
	requireContains(t, out, "Working-copy directory")
}

func TestDepsCommandFailsWhenToolMissing(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStubbedBinaries("identify"))

	out, _, err := runCLI(t, env, "deps")
	if err == nil {
		t.Fatal("expected missing dependency error")
	}
	requireContains(t, err.Error(), "1 required dependencies missing")
	requireContains(t, out, "not found")
}
