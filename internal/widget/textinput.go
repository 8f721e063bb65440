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

// TextInput is a single-line text field with a cursor.
//
// The cursor is a rune offset and always stays within [0, len(value)].
type TextInput struct {
	Label   string
	Focused bool

	value  []rune
	cursor int
}

// NewTextInput returns an empty field.
func NewTextInput(label string) TextInput {
	return TextInput{Label: label}
}

// NewTextInputWithValue returns a field pre-filled with value and the cursor
// at the end.
func NewTextInputWithValue(label, value string) TextInput {
	t := TextInput{Label: label}
	t.SetValue(value)
	return t
}

// Value returns the current text.
func (t *TextInput) Value() string { return string(t.value) }

// Cursor returns the cursor position in runes.
func (t *TextInput) Cursor() int { return t.cursor }

// Len returns the text length in runes.
func (t *TextInput) Len() int { return len(t.value) }

func (t *TextInput) SetFocused(f bool) { t.Focused = f }

// SetValue replaces the text and moves the cursor to the end.
func (t *TextInput) SetValue(s string) {
	t.value = []rune(s)
	t.cursor = len(t.value)
}

// Clear empties the field.
func (t *TextInput) Clear() {
	t.value = nil
	t.cursor = 0
}

// Insert adds r at the cursor and advances it.
func (t *TextInput) Insert(r rune) {
	t.value = append(t.value, 0)
	copy(t.value[t.cursor+1:], t.value[t.cursor:])
	t.value[t.cursor] = r
	t.cursor++
}

// DeleteBackward removes the rune before the cursor.
func (t *TextInput) DeleteBackward() {
	if t.cursor == 0 {
		return
	}
	t.value = append(t.value[:t.cursor-1], t.value[t.cursor:]...)
	t.cursor--
}

// DeleteForward removes the rune under the cursor.
func (t *TextInput) DeleteForward() {
	if t.cursor >= len(t.value) {
		return
	}
	t.value = append(t.value[:t.cursor], t.value[t.cursor+1:]...)
}

func (t *TextInput) MoveLeft() {
	if t.cursor > 0 {
		t.cursor--
	}
}

func (t *TextInput) MoveRight() {
	if t.cursor < len(t.value) {
		t.cursor++
	}
}

func (t *TextInput) MoveHome() { t.cursor = 0 }

func (t *TextInput) MoveEnd() { t.cursor = len(t.value) }

// HandleKey applies an editing key. Keys that do not edit text are ignored.
func (t *TextInput) HandleKey(k Key) {
	switch k.Code {
	case KeyRune, KeySpace:
		t.Insert(k.Rune)
	case KeyBackspace:
		t.DeleteBackward()
	case KeyDelete:
		t.DeleteForward()
	case KeyLeft:
		t.MoveLeft()
	case KeyRight:
		t.MoveRight()
	case KeyHome:
		t.MoveHome()
	case KeyEnd:
		t.MoveEnd()
	}
}
