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

package widget

// Toggle is an on/off switch flipped by Enter or Space.
type Toggle struct {
	Label   string
	Focused bool

	value bool
}

func NewToggle(label string, value bool) Toggle {
	return Toggle{Label: label, value: value}
}

func (t *Toggle) Value() bool { return t.value }

func (t *Toggle) Flip() { t.value = !t.value }

func (t *Toggle) SetFocused(f bool) { t.Focused = f }

func (t *Toggle) HandleKey(k Key) {
	if k.Code == KeyEnter || k.Code == KeySpace {
		t.Flip()
	}
}
