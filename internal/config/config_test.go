// GhProfile - GitHub Profile README Wizard
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// withHome points Home at a fresh temp dir for the duration of the test.
func withHome(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "ghprofile")
	old := Home
	Home = dir
	t.Cleanup(func() { Home = old })
	return dir
}

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.Wizard.DefaultMode != ModeBasic {
		t.Errorf("DefaultMode = %q, want basic", cfg.Wizard.DefaultMode)
	}
	if cfg.Wizard.Advanced() {
		t.Error("default config should not start in advanced mode")
	}
	if !cfg.Wizard.ConfirmQuit {
		t.Error("ConfirmQuit should default to true")
	}
	if cfg.Wizard.OutputPath() != DefaultProfilePath {
		t.Errorf("OutputPath() = %q, want %q", cfg.Wizard.OutputPath(), DefaultProfilePath)
	}
}

func TestOutputPath_Fallback(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"", DefaultProfilePath},
		{"   ", DefaultProfilePath},
		{"docs/me.toml", "docs/me.toml"},
	}
	for _, tc := range tests {
		w := WizardConfig{ProfilePath: tc.path}
		if got := w.OutputPath(); got != tc.want {
			t.Errorf("OutputPath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	want := &Config{
		Version: 1,
		Wizard: WizardConfig{
			DefaultMode: ModeAdvanced,
			ProfilePath: "me.toml",
			ConfirmQuit: false,
		},
	}
	if err := SaveConfigTo(want, path); err != nil {
		t.Fatalf("SaveConfigTo() error = %v", err)
	}
	got, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigFrom_NormalizesMode(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Advanced", ModeAdvanced},
		{" basic ", ModeBasic},
		{"expert", ModeBasic},
		{"", ModeBasic},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			data := []byte("version: 1\nwizard:\n  default_mode: \"" + tc.raw + "\"\n")
			if err := os.WriteFile(path, data, 0644); err != nil {
				t.Fatal(err)
			}
			cfg, err := LoadConfigFrom(path)
			if err != nil {
				t.Fatalf("LoadConfigFrom() error = %v", err)
			}
			if cfg.Wizard.DefaultMode != tc.want {
				t.Errorf("DefaultMode = %q, want %q", cfg.Wizard.DefaultMode, tc.want)
			}
		})
	}
}

func TestLoadConfigFrom_MissingKeysKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 1\nwizard:\n  default_mode: advanced\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom() error = %v", err)
	}
	want := &Config{
		Version: 1,
		Wizard: WizardConfig{
			DefaultMode: ModeAdvanced,
			ProfilePath: DefaultProfilePath,
			ConfirmQuit: true,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadConfigFrom() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigFrom_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("wizard: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfigFrom(path); err == nil {
		t.Error("LoadConfigFrom() should fail on invalid YAML")
	}
}

func TestLoadOrDefault_Missing(t *testing.T) {
	withHome(t)
	cfg := LoadOrDefault()
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("LoadOrDefault() mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteDefaults(t *testing.T) {
	home := withHome(t)
	if ConfigExists() {
		t.Fatal("config should not exist yet")
	}
	if err := WriteDefaults(); err != nil {
		t.Fatalf("WriteDefaults() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, "config.yaml")); err != nil {
		t.Fatalf("config.yaml not written: %v", err)
	}

	custom := DefaultConfig()
	custom.Wizard.ProfilePath = "custom.toml"
	if err := SaveConfig(custom); err != nil {
		t.Fatal(err)
	}
	if err := WriteDefaults(); err != nil {
		t.Fatalf("WriteDefaults() error = %v", err)
	}
	if got := LoadOrDefault().Wizard.ProfilePath; got != "custom.toml" {
		t.Errorf("WriteDefaults overwrote existing config: ProfilePath = %q", got)
	}
}

func TestXDGConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := xdgConfig(); got != "/tmp/xdg" {
		t.Errorf("xdgConfig() = %q, want /tmp/xdg", got)
	}
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/alice")
	if got := xdgConfig(); got != filepath.Join("/home/alice", ".config") {
		t.Errorf("xdgConfig() = %q, want /home/alice/.config", got)
	}
}
