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

package wizard

import (
	"strings"

	"github.com/cloud-exit/ghprofile/internal/config"
	"github.com/cloud-exit/ghprofile/internal/profile"
)

// Mode is the wizard-level interaction mode. Advanced shows every field;
// Basic hides the fields flagged advanced.
type Mode int

const (
	ModeBasic Mode = iota
	ModeAdvanced
)

func (m Mode) String() string {
	if m == ModeAdvanced {
		return config.ModeAdvanced
	}
	return config.ModeBasic
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeAdvanced {
		return ModeBasic
	}
	return ModeAdvanced
}

// ParseMode maps a config.yaml default_mode value to a Mode. Anything other
// than "advanced" is Basic.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), config.ModeAdvanced) {
		return ModeAdvanced
	}
	return ModeBasic
}

// State is the wizard orchestrator: the current step, the interaction mode,
// and the profile under construction. The profile is owned by State until
// BuildConfig hands it off.
type State struct {
	step   Step
	mode   Mode
	cfg    profile.Config
	loaded profile.Config
}

// NewState starts an empty profile at the Welcome step.
func NewState(mode Mode) *State {
	return &State{step: StepWelcome, mode: mode}
}

// NewStateFromConfig starts at Welcome with cfg as the initial profile. cfg
// itself is never modified.
func NewStateFromConfig(mode Mode, cfg profile.Config) *State {
	return &State{step: StepWelcome, mode: mode, cfg: cfg.Clone(), loaded: cfg.Clone()}
}

func (s *State) CurrentStep() Step { return s.step }

func (s *State) Mode() Mode { return s.mode }

// SetMode changes the interaction mode. The step and profile are untouched.
func (s *State) SetMode(m Mode) { s.mode = m }

// Config gives the host loop write access to the profile between steps.
func (s *State) Config() *profile.Config { return &s.cfg }

// Loaded returns the profile as it was when the wizard started.
func (s *State) Loaded() profile.Config { return s.loaded }

func (s *State) NextStep() { s.step = s.step.Next() }

func (s *State) PrevStep() { s.step = s.step.Prev() }

// BuildConfig hands the finished profile to the caller. The State is reset
// and must not be used afterwards.
func (s *State) BuildConfig() profile.Config {
	cfg := s.cfg
	*s = State{}
	return cfg
}
