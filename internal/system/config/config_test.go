package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmpty(t *testing.T) {
	c, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if *c != *Default() {
		t.Fatalf("Expected defaults; got %+v", c)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grass.yaml")

	err := os.WriteFile(path, []byte("language: hq9+\nhistory: ~/history\n"), 0o600)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	t.Setenv("GRASS_CONFIG", path)
	t.Setenv("HOME", dir)

	c, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if c.Language != HQ9 {
		t.Fatalf("Expected %s; got %s", HQ9, c.Language)
	}

	if expected := filepath.Join(dir, "history"); c.History != expected {
		t.Fatalf("Expected %s; got %s", expected, c.History)
	}
}

func TestMissing(t *testing.T) {
	t.Setenv("GRASS_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	c, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if c.Language != Grass {
		t.Fatalf("Expected %s; got %s", Grass, c.Language)
	}
}

func TestRead(t *testing.T) {
	c, err := Read(strings.NewReader("force: true\nprompt: \"> \"\n"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !c.Force || c.Prompt != "> " || c.Language != Grass {
		t.Fatalf("Unexpected settings: %+v", c)
	}
}

func TestUnknownLanguage(t *testing.T) {
	if _, err := Read(strings.NewReader("language: cobol\n")); err == nil {
		t.Fatal("Expected an error for an unknown language")
	}
}
