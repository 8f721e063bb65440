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

// StepAction is what a step's key handler asks the host loop to do next.
type StepAction int

const (
	// ActionContinue means the key was consumed by the step; stay put.
	ActionContinue StepAction = iota
	// ActionNextStep advances to the following step.
	ActionNextStep
	// ActionPrevStep returns to the preceding step.
	ActionPrevStep
	// ActionGenerate finishes the wizard from any step.
	ActionGenerate
	// ActionQuit abandons the wizard.
	ActionQuit
)

func (a StepAction) String() string {
	switch a {
	case ActionNextStep:
		return "next"
	case ActionPrevStep:
		return "prev"
	case ActionGenerate:
		return "generate"
	case ActionQuit:
		return "quit"
	default:
		return "continue"
	}
}
