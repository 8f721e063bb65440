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

// SingleSelect picks one option from a fixed list. Navigation moves a
// highlight; only Enter commits it as the selection.
type SingleSelect struct {
	Label   string
	Focused bool

	options   []string
	highlight int
	selected  int // -1 until the first confirm
}

// NewSingleSelect returns a select with the first option highlighted.
func NewSingleSelect(label string, options []string) SingleSelect {
	return NewSingleSelectWithDefault(label, options, 0)
}

// NewSingleSelectWithDefault highlights option def, clamped into range.
func NewSingleSelectWithDefault(label string, options []string, def int) SingleSelect {
	opts := make([]string, len(options))
	copy(opts, options)
	return SingleSelect{
		Label:     label,
		options:   opts,
		highlight: clampIndex(def, len(opts)),
		selected:  -1,
	}
}

// Options returns a copy of the option list.
func (s *SingleSelect) Options() []string {
	out := make([]string, len(s.options))
	copy(out, s.options)
	return out
}

func (s *SingleSelect) Highlight() int { return s.highlight }

func (s *SingleSelect) SetFocused(f bool) { s.Focused = f }

// HighlightedValue returns the option under the highlight, or "" when there
// are no options.
func (s *SingleSelect) HighlightedValue() string {
	if len(s.options) == 0 {
		return ""
	}
	return s.options[s.highlight]
}

// SelectedIndex returns the confirmed index, if any.
func (s *SingleSelect) SelectedIndex() (int, bool) {
	if s.selected < 0 {
		return 0, false
	}
	return s.selected, true
}

// Selected returns the confirmed option, if any.
func (s *SingleSelect) Selected() (string, bool) {
	if s.selected < 0 {
		return "", false
	}
	return s.options[s.selected], true
}

func (s *SingleSelect) MoveUp() {
	if s.highlight > 0 {
		s.highlight--
	}
}

func (s *SingleSelect) MoveDown() {
	if s.highlight+1 < len(s.options) {
		s.highlight++
	}
}

// Confirm selects the highlighted option. No-op on an empty list.
func (s *SingleSelect) Confirm() {
	if len(s.options) == 0 {
		return
	}
	s.selected = s.highlight
}

func (s *SingleSelect) HandleKey(k Key) {
	switch k.Code {
	case KeyUp:
		s.MoveUp()
	case KeyDown:
		s.MoveDown()
	case KeyEnter:
		s.Confirm()
	}
}

// clampIndex returns i limited to [0, n-1], or 0 when n is 0.
func clampIndex(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
