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

import "strings"

// Wizard interaction modes accepted in config.yaml.
const (
	ModeBasic    = "basic"
	ModeAdvanced = "advanced"
)

// Config is the top-level ghprofile configuration (config.yaml).
type Config struct {
	Version int          `yaml:"version"`
	Wizard  WizardConfig `yaml:"wizard"`
}

// WizardConfig holds defaults for `ghprofile wizard`. Command-line flags
// take precedence over these.
type WizardConfig struct {
	DefaultMode string `yaml:"default_mode,omitempty"` // basic or advanced
	ProfilePath string `yaml:"profile_path,omitempty"`
	ConfirmQuit bool   `yaml:"confirm_quit"`
}

// Advanced reports whether the wizard should start in advanced mode.
func (w WizardConfig) Advanced() bool {
	return w.DefaultMode == ModeAdvanced
}

// OutputPath returns the profile path, falling back to DefaultProfilePath.
func (w WizardConfig) OutputPath() string {
	if strings.TrimSpace(w.ProfilePath) == "" {
		return DefaultProfilePath
	}
	return w.ProfilePath
}
