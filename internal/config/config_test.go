package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
editor: "nvim"
verbose: true
temp_dir: "/tmp/editdir"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Editor != "nvim" {
		t.Errorf("expected editor nvim, got %s", cfg.Editor)
	}
	if !cfg.Verbose {
		t.Error("expected verbose to be true")
	}
	if cfg.TempDir != "/tmp/editdir" {
		t.Errorf("expected temp_dir /tmp/editdir, got %s", cfg.TempDir)
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("EDITDIR_TEST_EDITOR", "/opt/bin/hx")
	t.Setenv("EDITDIR_TEST_TMP", "/var/tmp")

	path := writeConfig(t, `
editor: "$EDITDIR_TEST_EDITOR"
temp_dir: "${EDITDIR_TEST_TMP}/scratch"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Editor != "/opt/bin/hx" {
		t.Errorf("editor = %q, want /opt/bin/hx", cfg.Editor)
	}
	if cfg.TempDir != "/var/tmp/scratch" {
		t.Errorf("temp_dir = %q, want /var/tmp/scratch", cfg.TempDir)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Editor != "" || cfg.Verbose || cfg.TempDir != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "editor: [unterminated"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	_, err := Load(writeConfig(t, "temp_dir: relative/dir\n"))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "invalid configuration") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadOptional(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("LoadOptional returned error: %v", err)
	}
	if cfg == nil || cfg.Editor != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}

	// Errors other than a missing file still surface.
	if _, err := LoadOptional(writeConfig(t, "editor: [")); err == nil {
		t.Error("expected parse error from LoadOptional")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "empty config",
			cfg:     Config{},
			wantErr: false,
		},
		{
			name:    "editor and absolute temp dir",
			cfg:     Config{Editor: "vim", TempDir: "/tmp"},
			wantErr: false,
		},
		{
			name:    "blank editor",
			cfg:     Config{Editor: "   "},
			wantErr: true,
		},
		{
			name:    "multi-line editor",
			cfg:     Config{Editor: "vim\nrm"},
			wantErr: true,
		},
		{
			name:    "relative temp dir",
			cfg:     Config{TempDir: "tmp"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	path, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if path != "/xdg/editdir/config.yaml" {
		t.Errorf("DefaultPath() = %q", path)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/tester")
	path, err = DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if path != "/home/tester/.config/editdir/config.yaml" {
		t.Errorf("DefaultPath() = %q", path)
	}
}
