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

// Package widget implements the interactive input primitives used by the
// profile wizard: text fields, toggles, selects and list editors.
//
// Widgets are plain state machines. They consume logical keys and never draw
// anything; rendering and the mapping from terminal events to Key values live
// in the wizard host.
package widget

// KeyCode identifies a logical key.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyRune
	KeySpace
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyUp
	KeyDown
	KeyEnter
	KeyTab
	KeyBackTab
)

var keyNames = map[KeyCode]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeySpace:     "space",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackTab:   "shift+tab",
}

func (c KeyCode) String() string {
	if s, ok := keyNames[c]; ok {
		return s
	}
	return "unknown"
}

// Key is a single key event. Rune is only meaningful for KeyRune and KeySpace.
type Key struct {
	Code KeyCode
	Rune rune
}

// Char returns the key for typing r. A space maps to KeySpace so widgets that
// treat space as a confirm key see it as such.
func Char(r rune) Key {
	if r == ' ' {
		return Key{Code: KeySpace, Rune: ' '}
	}
	return Key{Code: KeyRune, Rune: r}
}

// Press returns the key for a non-character code.
func Press(code KeyCode) Key {
	if code == KeySpace {
		return Char(' ')
	}
	return Key{Code: code}
}

// Keys expands s into one Char key per rune.
func Keys(s string) []Key {
	keys := make([]Key, 0, len(s))
	for _, r := range s {
		keys = append(keys, Char(r))
	}
	return keys
}

func (k Key) String() string {
	if k.Code == KeyRune {
		return string(k.Rune)
	}
	return k.Code.String()
}
