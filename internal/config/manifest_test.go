package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orange.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("writing manifest fixture: %s", err)
	}
	return path
}

func TestLoadValidManifest(t *testing.T) {
	path := writeManifest(t, `
sources:
  - main.orange
  - lib.orange
output: out.js
target: node
`)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(m.Sources) != 2 || m.Sources[0] != "main.orange" || m.Sources[1] != "lib.orange" {
		t.Errorf("unexpected sources: %+v", m.Sources)
	}
	if m.Output != "out.js" {
		t.Errorf("got output %q, want \"out.js\"", m.Output)
	}
	if m.Target != "node" {
		t.Errorf("got target %q, want \"node\"", m.Target)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing manifest file")
	}
}

func TestLoadRejectsEmptySources(t *testing.T) {
	path := writeManifest(t, `
sources: []
output: out.js
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a manifest with no sources")
	}
}

func TestLoadRejectsMissingOutput(t *testing.T) {
	path := writeManifest(t, `
sources:
  - main.orange
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a manifest with no output")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeManifest(t, "sources: [this is not\nvalid: yaml: at all")
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}
