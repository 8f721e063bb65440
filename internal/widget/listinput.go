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

import "strings"

// EditMode is the sub-state shared by ListInput and PairedInput.
type EditMode int

const (
	// Adding routes keys to the draft field(s).
	Adding EditMode = iota
	// Browsing moves over confirmed entries and deletes them.
	Browsing
)

func (m EditMode) String() string {
	if m == Browsing {
		return "browsing"
	}
	return "adding"
}

// ListInput collects an ordered list of strings. Enter appends the trimmed
// draft; Tab switches to browsing the entries.
type ListInput struct {
	Label   string
	Input   TextInput
	Mode    EditMode
	Focused bool

	entries   []string
	highlight int
}

// NewListInput returns a list pre-filled with entries.
func NewListInput(label string, entries ...string) ListInput {
	l := ListInput{Label: label, Input: NewTextInput("Add new")}
	l.entries = append(l.entries, entries...)
	return l
}

// Entries returns a copy of the confirmed entries.
func (l *ListInput) Entries() []string {
	if len(l.entries) == 0 {
		return nil
	}
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *ListInput) Highlight() int { return l.highlight }

func (l *ListInput) HandleKey(k Key) {
	switch l.Mode {
	case Adding:
		switch k.Code {
		case KeyEnter:
			val := strings.TrimSpace(l.Input.Value())
			if val != "" {
				l.entries = append(l.entries, val)
				l.Input.Clear()
			}
		case KeyTab:
			if len(l.entries) > 0 {
				l.Mode = Browsing
				l.highlight = 0
			}
		default:
			l.Input.HandleKey(k)
		}
	case Browsing:
		switch k.Code {
		case KeyTab, KeyBackTab:
			l.Mode = Adding
		case KeyUp:
			l.highlight = stepHighlight(l.highlight, -1, len(l.entries))
		case KeyDown:
			l.highlight = stepHighlight(l.highlight, +1, len(l.entries))
		case KeyDelete, KeyBackspace:
			l.entries, l.highlight = removeEntry(l.entries, l.highlight)
			if len(l.entries) == 0 {
				l.Mode = Adding
			}
		}
	}
	l.Input.Focused = l.Focused && l.Mode == Adding
}

func (l *ListInput) SetFocused(f bool) {
	l.Focused = f
	l.Input.Focused = f && l.Mode == Adding
}

// stepHighlight moves h by delta within [0, n-1] without wrapping.
func stepHighlight(h, delta, n int) int {
	h += delta
	if h >= n {
		h = n - 1
	}
	if h < 0 {
		h = 0
	}
	return h
}

// removeEntry deletes entries[h] and returns the new slice and a highlight
// that still points inside it.
func removeEntry[T any](entries []T, h int) ([]T, int) {
	if h < 0 || h >= len(entries) {
		return entries, h
	}
	entries = append(entries[:h], entries[h+1:]...)
	if h >= len(entries) && h > 0 {
		h--
	}
	return entries, h
}
