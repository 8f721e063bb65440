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
)

func TestSteps_Order(t *testing.T) {
	want := []Step{
		StepWelcome, StepIdentity, StepAbout, StepSocial, StepSkills, StepStats,
		StepProjects, StepBlog, StepDynamic, StepExtras, StepLayout, StepPreviewGenerate,
	}
	if diff := cmp.Diff(want, Steps()); diff != "" {
		t.Errorf("Steps() mismatch (-want +got):\n%s", diff)
	}
	if StepCount() != 12 {
		t.Errorf("StepCount() = %d, want 12", StepCount())
	}
}

func TestStep_NextPrev(t *testing.T) {
	all := Steps()
	for i, s := range all {
		if i < len(all)-1 {
			if got := s.Next(); got != all[i+1] {
				t.Errorf("%v.Next() = %v, want %v", s, got, all[i+1])
			}
		}
		if i > 0 {
			if got := s.Prev(); got != all[i-1] {
				t.Errorf("%v.Prev() = %v, want %v", s, got, all[i-1])
			}
		}
	}
}

func TestStep_Boundaries(t *testing.T) {
	if got := StepWelcome.Prev(); got != StepWelcome {
		t.Errorf("Welcome.Prev() = %v, want Welcome", got)
	}
	if got := StepPreviewGenerate.Next(); got != StepPreviewGenerate {
		t.Errorf("PreviewGenerate.Next() = %v, want PreviewGenerate", got)
	}
	if !StepWelcome.IsFirst() || StepWelcome.IsLast() {
		t.Error("Welcome should be first and not last")
	}
	if !StepPreviewGenerate.IsLast() || StepPreviewGenerate.IsFirst() {
		t.Error("PreviewGenerate should be last and not first")
	}
}

func TestStep_Labels(t *testing.T) {
	tests := []struct {
		step Step
		want string
	}{
		{StepWelcome, "Welcome"},
		{StepSocial, "Social Links"},
		{StepBlog, "Blog & Content"},
		{StepPreviewGenerate, "Preview & Generate"},
		{Step(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.step.Label(); got != tt.want {
			t.Errorf("Step(%d).Label() = %q, want %q", int(tt.step), got, tt.want)
		}
	}
}

func TestStep_Index(t *testing.T) {
	if got := StepWelcome.Index(); got != 0 {
		t.Errorf("Welcome.Index() = %d, want 0", got)
	}
	if got := StepPreviewGenerate.Index(); got != 11 {
		t.Errorf("PreviewGenerate.Index() = %d, want 11", got)
	}
	if got := Step(-3).Index(); got != -1 {
		t.Errorf("Step(-3).Index() = %d, want -1", got)
	}
	if got := Step(-3).Next(); got != Step(-3) {
		t.Errorf("unknown step Next() = %v, want itself", got)
	}
}

func TestStepAction_String(t *testing.T) {
	for _, a := range []StepAction{ActionContinue, ActionNextStep, ActionPrevStep, ActionGenerate, ActionQuit} {
		if a.String() == "" || a.String() == "unknown" {
			t.Errorf("StepAction(%d).String() = %q", int(a), a.String())
		}
	}
}
