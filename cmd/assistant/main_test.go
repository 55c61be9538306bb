package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigPath(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	if got := configPath(""); got != "" {
		t.Errorf("configPath() without file = %q, want empty", got)
	}
	if got := configPath("custom.yaml"); got != "custom.yaml" {
		t.Errorf("configPath(flag) = %q", got)
	}

	if err := os.WriteFile(defaultConfigFile, []byte("provider: openai\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := configPath(""); got != defaultConfigFile {
		t.Errorf("configPath() with file = %q, want %q", got, defaultConfigFile)
	}
}

func TestEnsureDirectories(t *testing.T) {
	root := t.TempDir()
	dirs := []string{filepath.Join(root, "inbox"), filepath.Join(root, "out", "nested")}

	if err := ensureDirectories(dirs...); err != nil {
		t.Fatalf("ensureDirectories() error = %v", err)
	}
	for _, d := range dirs {
		if info, err := os.Stat(d); err != nil || !info.IsDir() {
			t.Errorf("%s not created: %v", d, err)
		}
	}
}
