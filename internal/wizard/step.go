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

// Package wizard implements the interactive profile wizard: the step state
// machine, the wizard state that owns the profile under construction, and the
// bubbletea host loop that binds widgets to profile fields.
package wizard

// Step identifies one page of the wizard.
type Step int

const (
	StepWelcome Step = iota
	StepIdentity
	StepAbout
	StepSocial
	StepSkills
	StepStats
	StepProjects
	StepBlog
	StepDynamic
	StepExtras
	StepLayout
	StepPreviewGenerate
)

// stepInfo describes a wizard step for the sidebar and titles.
type stepInfo struct {
	Step  Step
	Label string
}

// steps is the fixed transition order.
var steps = []stepInfo{
	{StepWelcome, "Welcome"},
	{StepIdentity, "Identity"},
	{StepAbout, "About"},
	{StepSocial, "Social Links"},
	{StepSkills, "Skills"},
	{StepStats, "Stats"},
	{StepProjects, "Projects"},
	{StepBlog, "Blog & Content"},
	{StepDynamic, "Dynamic"},
	{StepExtras, "Extras"},
	{StepLayout, "Layout"},
	{StepPreviewGenerate, "Preview & Generate"},
}

// Steps returns every step in order.
func Steps() []Step {
	out := make([]Step, len(steps))
	for i, si := range steps {
		out[i] = si.Step
	}
	return out
}

// StepCount is the number of wizard steps.
func StepCount() int { return len(steps) }

// Index returns the zero-based position of s, or -1 if s is not a step.
func (s Step) Index() int {
	for i, si := range steps {
		if si.Step == s {
			return i
		}
	}
	return -1
}

// Next returns the following step. The last step is its own successor.
func (s Step) Next() Step {
	i := s.Index()
	if i < 0 || i == len(steps)-1 {
		return s
	}
	return steps[i+1].Step
}

// Prev returns the preceding step. The first step is its own predecessor.
func (s Step) Prev() Step {
	i := s.Index()
	if i <= 0 {
		return s
	}
	return steps[i-1].Step
}

// IsFirst reports whether s is Welcome.
func (s Step) IsFirst() bool { return s.Index() == 0 }

// IsLast reports whether s is Preview & Generate.
func (s Step) IsLast() bool { return s.Index() == len(steps)-1 }

// Label returns the human-readable step name.
func (s Step) Label() string {
	if i := s.Index(); i >= 0 {
		return steps[i].Label
	}
	return "Unknown"
}

func (s Step) String() string { return s.Label() }
