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
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cloud-exit/ghprofile/internal/profile"
)

func TestNewState(t *testing.T) {
	s := NewState(ModeBasic)
	if s.CurrentStep() != StepWelcome {
		t.Errorf("CurrentStep() = %v, want Welcome", s.CurrentStep())
	}
	if s.Mode() != ModeBasic {
		t.Errorf("Mode() = %v, want basic", s.Mode())
	}
	if !s.Config().IsZero() {
		t.Errorf("Config() = %+v, want zero value", *s.Config())
	}
}

func TestState_NextPrev(t *testing.T) {
	s := NewState(ModeAdvanced)
	s.NextStep()
	if s.CurrentStep() != StepIdentity {
		t.Fatalf("after NextStep: %v, want Identity", s.CurrentStep())
	}
	s.PrevStep()
	s.PrevStep()
	if s.CurrentStep() != StepWelcome {
		t.Errorf("after PrevStep x2: %v, want Welcome", s.CurrentStep())
	}
	for range StepCount() + 3 {
		s.NextStep()
	}
	if s.CurrentStep() != StepPreviewGenerate {
		t.Errorf("after many NextStep: %v, want PreviewGenerate", s.CurrentStep())
	}
}

func TestState_SetMode(t *testing.T) {
	s := NewState(ModeBasic)
	s.NextStep()
	s.Config().Meta.Username = "octocat"
	s.SetMode(ModeAdvanced)

	if s.Mode() != ModeAdvanced {
		t.Errorf("Mode() = %v, want advanced", s.Mode())
	}
	if s.CurrentStep() != StepIdentity {
		t.Errorf("CurrentStep() = %v, want Identity", s.CurrentStep())
	}
	if s.Config().Meta.Username != "octocat" {
		t.Errorf("Username = %q, want octocat", s.Config().Meta.Username)
	}
}

func TestState_BuildConfig(t *testing.T) {
	cfg := profile.Config{
		Meta:  profile.Meta{Username: "octocat"},
		About: &profile.About{Role: "Engineer"},
	}
	s := NewStateFromConfig(ModeAdvanced, cfg)
	s.NextStep()

	got := s.BuildConfig()
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("BuildConfig() mismatch (-want +got):\n%s", diff)
	}
	if !s.Config().IsZero() {
		t.Error("State should not keep the profile after BuildConfig")
	}
}

func TestMode(t *testing.T) {
	if ModeBasic.Toggle() != ModeAdvanced || ModeAdvanced.Toggle() != ModeBasic {
		t.Error("Toggle() should swap basic and advanced")
	}
	tests := []struct {
		in   string
		want Mode
	}{
		{"advanced", ModeAdvanced},
		{" Advanced ", ModeAdvanced},
		{"basic", ModeBasic},
		{"", ModeBasic},
		{"expert", ModeBasic},
	}
	for _, tt := range tests {
		if got := ParseMode(tt.in); got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if ModeAdvanced.String() != "advanced" || ModeBasic.String() != "basic" {
		t.Errorf("String() = %q/%q", ModeBasic, ModeAdvanced)
	}
}
