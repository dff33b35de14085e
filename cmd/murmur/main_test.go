package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitCommandInstallsPersonas(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"init", "--data-dir", dir})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out.String(), "personas written") {
		t.Fatalf("output: got=%q", out.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "persona", "personas.json")); err != nil {
		t.Fatalf("roster file: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "persona", "mina-reader.md")); err != nil {
		t.Fatalf("voice file: %v", err)
	}

	out.Reset()
	rootCmd.SetArgs([]string{"init", "--data-dir", dir})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("second init: %v", err)
	}
	if !strings.Contains(out.String(), "already present") {
		t.Fatalf("second output: got=%q", out.String())
	}
}

func TestGenerateRequiresPostID(t *testing.T) {
	rootCmd.SetArgs([]string{"generate"})
	rootCmd.SetErr(&bytes.Buffer{})
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("generate without args should fail")
	}
}
