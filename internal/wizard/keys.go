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
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cloud-exit/ghprofile/internal/widget"
)

// keyMap holds the host-level bindings. Everything else goes to the focused
// widget.
type keyMap struct {
	NextStep   key.Binding
	PrevStep   key.Binding
	Generate   key.Binding
	ToggleMode key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextStep, k.PrevStep, k.NextField, k.Generate, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextStep, k.PrevStep, k.Generate},
		{k.NextField, k.PrevField, k.ToggleMode},
		{k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextStep: key.NewBinding(
			key.WithKeys("ctrl+n", "pgdown"),
			key.WithHelp("ctrl+n", "next step"),
		),
		PrevStep: key.NewBinding(
			key.WithKeys("esc", "ctrl+p", "pgup"),
			key.WithHelp("esc", "prev step"),
		),
		Generate: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "generate"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "basic/advanced"),
		),
		NextField: key.NewBinding(
			key.WithKeys("ctrl+down", "ctrl+f"),
			key.WithHelp("ctrl+↓", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("ctrl+up", "ctrl+b"),
			key.WithHelp("ctrl+↑", "prev field"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// translateKey maps a terminal key event onto the widget key vocabulary.
// Pasted text yields one key per rune; keys with no widget meaning yield nil.
func translateKey(msg tea.KeyMsg) []widget.Key {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		keys := make([]widget.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				continue
			}
			keys = append(keys, widget.Char(r))
		}
		return keys
	case tea.KeySpace:
		return []widget.Key{widget.Char(' ')}
	}
	if code, ok := keyCodes[msg.Type]; ok {
		return []widget.Key{widget.Press(code)}
	}
	return nil
}

var keyCodes = map[tea.KeyType]widget.KeyCode{
	tea.KeyBackspace: widget.KeyBackspace,
	tea.KeyDelete:    widget.KeyDelete,
	tea.KeyLeft:      widget.KeyLeft,
	tea.KeyRight:     widget.KeyRight,
	tea.KeyHome:      widget.KeyHome,
	tea.KeyCtrlA:     widget.KeyHome,
	tea.KeyEnd:       widget.KeyEnd,
	tea.KeyCtrlE:     widget.KeyEnd,
	tea.KeyUp:        widget.KeyUp,
	tea.KeyDown:      widget.KeyDown,
	tea.KeyEnter:     widget.KeyEnter,
	tea.KeyTab:       widget.KeyTab,
	tea.KeyShiftTab:  widget.KeyBackTab,
}
