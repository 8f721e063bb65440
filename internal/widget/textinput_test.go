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

import (
	"math/rand"
	"testing"
)

func typeInto(t *TextInput, s string) {
	for _, k := range Keys(s) {
		t.HandleKey(k)
	}
}

func TestTextInput_New(t *testing.T) {
	in := NewTextInput("Username")
	if in.Value() != "" || in.Cursor() != 0 {
		t.Errorf("NewTextInput = (%q, %d), want (\"\", 0)", in.Value(), in.Cursor())
	}
	if in.Label != "Username" {
		t.Errorf("Label = %q, want Username", in.Label)
	}
}

func TestTextInput_Typing(t *testing.T) {
	in := NewTextInput("Username")
	typeInto(&in, "alice")
	if in.Value() != "alice" || in.Cursor() != 5 {
		t.Errorf("after typing: (%q, %d), want (alice, 5)", in.Value(), in.Cursor())
	}
}

func TestTextInput_SpaceInserts(t *testing.T) {
	in := NewTextInput("Name")
	typeInto(&in, "a b")
	if in.Value() != "a b" {
		t.Errorf("Value() = %q, want %q", in.Value(), "a b")
	}
}

func TestTextInput_Backspace(t *testing.T) {
	in := NewTextInputWithValue("Username", "alice")
	in.HandleKey(Press(KeyBackspace))
	if in.Value() != "alic" || in.Cursor() != 4 {
		t.Errorf("after backspace: (%q, %d), want (alic, 4)", in.Value(), in.Cursor())
	}
}

func TestTextInput_BackspaceAtStartIsNoop(t *testing.T) {
	in := NewTextInput("Username")
	for i := 0; i < 5; i++ {
		in.HandleKey(Press(KeyBackspace))
	}
	if in.Value() != "" || in.Cursor() != 0 {
		t.Errorf("backspace on empty: (%q, %d), want (\"\", 0)", in.Value(), in.Cursor())
	}

	in.SetValue("ab")
	in.MoveHome()
	in.HandleKey(Press(KeyBackspace))
	if in.Value() != "ab" || in.Cursor() != 0 {
		t.Errorf("backspace at home: (%q, %d), want (ab, 0)", in.Value(), in.Cursor())
	}
}

func TestTextInput_DeleteForward(t *testing.T) {
	in := NewTextInputWithValue("Username", "alice")
	in.HandleKey(Press(KeyDelete))
	if in.Value() != "alice" {
		t.Errorf("delete at end changed value to %q", in.Value())
	}
	in.MoveHome()
	in.HandleKey(Press(KeyDelete))
	if in.Value() != "lice" || in.Cursor() != 0 {
		t.Errorf("delete at home: (%q, %d), want (lice, 0)", in.Value(), in.Cursor())
	}
}

func TestTextInput_CursorLeftRight(t *testing.T) {
	in := NewTextInputWithValue("Username", "alice")
	in.HandleKey(Press(KeyLeft))
	in.HandleKey(Press(KeyLeft))
	if in.Cursor() != 3 {
		t.Errorf("Cursor() = %d, want 3", in.Cursor())
	}
	in.HandleKey(Press(KeyRight))
	if in.Cursor() != 4 {
		t.Errorf("Cursor() = %d, want 4", in.Cursor())
	}
	in.HandleKey(Press(KeyRight))
	in.HandleKey(Press(KeyRight))
	if in.Cursor() != 5 {
		t.Errorf("Cursor() past end = %d, want 5", in.Cursor())
	}
}

func TestTextInput_InsertMiddle(t *testing.T) {
	in := NewTextInputWithValue("Username", "alice")
	for i := 0; i < 3; i++ {
		in.HandleKey(Press(KeyLeft))
	}
	in.HandleKey(Char('X'))
	if in.Value() != "alXice" || in.Cursor() != 3 {
		t.Errorf("insert middle: (%q, %d), want (alXice, 3)", in.Value(), in.Cursor())
	}
}

func TestTextInput_HomeEnd(t *testing.T) {
	in := NewTextInputWithValue("Username", "alice")
	in.HandleKey(Press(KeyHome))
	if in.Cursor() != 0 {
		t.Errorf("Home: Cursor() = %d, want 0", in.Cursor())
	}
	in.HandleKey(Press(KeyEnd))
	if in.Cursor() != 5 {
		t.Errorf("End: Cursor() = %d, want 5", in.Cursor())
	}
}

func TestTextInput_Clear(t *testing.T) {
	in := NewTextInputWithValue("Username", "alice")
	in.Clear()
	if in.Value() != "" || in.Cursor() != 0 {
		t.Errorf("Clear: (%q, %d), want (\"\", 0)", in.Value(), in.Cursor())
	}
}

func TestTextInput_MultibyteCursor(t *testing.T) {
	in := NewTextInputWithValue("Name", "Zoë")
	if in.Cursor() != 3 {
		t.Fatalf("Cursor() = %d, want 3 runes", in.Cursor())
	}
	in.HandleKey(Press(KeyBackspace))
	if in.Value() != "Zo" {
		t.Errorf("Value() = %q, want Zo", in.Value())
	}
}

func TestTextInput_IgnoresNavigationKeys(t *testing.T) {
	in := NewTextInputWithValue("Name", "abc")
	for _, code := range []KeyCode{KeyUp, KeyDown, KeyEnter, KeyTab, KeyBackTab} {
		in.HandleKey(Press(code))
	}
	if in.Value() != "abc" || in.Cursor() != 3 {
		t.Errorf("after ignored keys: (%q, %d), want (abc, 3)", in.Value(), in.Cursor())
	}
}

func TestTextInput_CursorInvariantUnderRandomEdits(t *testing.T) {
	codes := []KeyCode{KeyRune, KeySpace, KeyBackspace, KeyDelete, KeyLeft, KeyRight, KeyHome, KeyEnd}
	rng := rand.New(rand.NewSource(42))
	in := NewTextInput("fuzz")
	for i := 0; i < 5000; i++ {
		code := codes[rng.Intn(len(codes))]
		k := Press(code)
		if code == KeyRune {
			k = Char(rune('a' + rng.Intn(26)))
		}
		in.HandleKey(k)
		if in.Cursor() < 0 || in.Cursor() > in.Len() {
			t.Fatalf("step %d (%v): cursor %d outside [0, %d]", i, k, in.Cursor(), in.Len())
		}
	}
}
