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

// PairField names one of the two fields of a PairedInput.
type PairField int

const (
	FirstField PairField = iota
	SecondField
)

func (f PairField) String() string {
	if f == SecondField {
		return "second"
	}
	return "first"
}

// Pair is one confirmed two-field entry.
type Pair struct {
	First  string
	Second string
}

// PairedInput collects (first, second) entries such as article title + URL.
//
// In Adding mode Tab cycles First -> Second -> Browsing (or back to First when
// there is nothing to browse). Enter appends only when both trimmed fields are
// non-empty.
type PairedInput struct {
	Label      string
	First      TextInput
	Second     TextInput
	Mode       EditMode
	FocusField PairField
	Focused    bool

	entries   []Pair
	highlight int
}

// NewPairedInput returns an empty editor with First focused.
func NewPairedInput(label, firstLabel, secondLabel string, entries ...Pair) PairedInput {
	p := PairedInput{
		Label:  label,
		First:  NewTextInput(firstLabel),
		Second: NewTextInput(secondLabel),
	}
	p.entries = append(p.entries, entries...)
	p.syncFocus()
	return p
}

// Entries returns a copy of the confirmed pairs.
func (p *PairedInput) Entries() []Pair {
	if len(p.entries) == 0 {
		return nil
	}
	out := make([]Pair, len(p.entries))
	copy(out, p.entries)
	return out
}

func (p *PairedInput) Highlight() int { return p.highlight }

func (p *PairedInput) HandleKey(k Key) {
	if p.Mode == Browsing {
		p.handleBrowsing(k)
	} else {
		p.handleAdding(k)
	}
	p.syncFocus()
}

func (p *PairedInput) handleAdding(k Key) {
	switch k.Code {
	case KeyEnter:
		first := strings.TrimSpace(p.First.Value())
		second := strings.TrimSpace(p.Second.Value())
		if first == "" || second == "" {
			return
		}
		p.entries = append(p.entries, Pair{First: first, Second: second})
		p.First.Clear()
		p.Second.Clear()
		p.FocusField = FirstField
	case KeyTab:
		if p.FocusField == FirstField {
			p.FocusField = SecondField
			return
		}
		if len(p.entries) > 0 {
			p.browse()
		} else {
			p.FocusField = FirstField
		}
	case KeyBackTab:
		if p.FocusField == SecondField {
			p.FocusField = FirstField
			return
		}
		if len(p.entries) > 0 {
			p.browse()
		}
	default:
		if p.FocusField == FirstField {
			p.First.HandleKey(k)
		} else {
			p.Second.HandleKey(k)
		}
	}
}

func (p *PairedInput) handleBrowsing(k Key) {
	switch k.Code {
	case KeyTab, KeyBackTab:
		p.add()
	case KeyUp:
		p.highlight = stepHighlight(p.highlight, -1, len(p.entries))
	case KeyDown:
		p.highlight = stepHighlight(p.highlight, +1, len(p.entries))
	case KeyDelete, KeyBackspace:
		p.entries, p.highlight = removeEntry(p.entries, p.highlight)
		if len(p.entries) == 0 {
			p.add()
		}
	}
}

func (p *PairedInput) browse() {
	p.Mode = Browsing
	p.highlight = 0
}

func (p *PairedInput) add() {
	p.Mode = Adding
	p.FocusField = FirstField
}

func (p *PairedInput) SetFocused(f bool) {
	p.Focused = f
	p.syncFocus()
}

// syncFocus mirrors FocusField onto the child fields' Focused flags.
func (p *PairedInput) syncFocus() {
	adding := p.Focused && p.Mode == Adding
	p.First.Focused = adding && p.FocusField == FirstField
	p.Second.Focused = adding && p.FocusField == SecondField
}
