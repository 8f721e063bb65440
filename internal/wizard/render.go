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
	"fmt"
	"strings"

	"github.com/cloud-exit/ghprofile/internal/widget"
)

// maxListRows caps how many items of a searchable list are drawn at once.
const maxListRows = 10

func pointer(focused bool) string {
	if focused {
		return cursorStyle.Render("> ")
	}
	return "  "
}

// renderField draws one form row.
func renderField(f field) string {
	switch c := f.ctl.(type) {
	case *widget.TextInput:
		return pointer(c.Focused) + labelStyle.Render(c.Label+":") + " " + textValue(c, f.hint)
	case *widget.Toggle:
		return pointer(c.Focused) + checkbox(c.Value()) + " " + c.Label
	case *widget.SingleSelect:
		return renderSelect(c)
	case *widget.SearchableList:
		return renderSearchList(f.label, c)
	case *widget.ListInput:
		return renderListInput(c, f.hint)
	case *widget.PairedInput:
		return renderPairedInput(c)
	}
	return ""
}

// textValue shows the value with a block cursor when focused, or the hint
// when the field is empty.
func textValue(t *widget.TextInput, hint string) string {
	v := []rune(t.Value())
	if !t.Focused {
		if len(v) == 0 && hint != "" {
			return dimStyle.Render(hint)
		}
		return string(v)
	}
	c := t.Cursor()
	at, after := " ", ""
	if c < len(v) {
		at = string(v[c])
		after = string(v[c+1:])
	}
	out := selectedStyle.Render(string(v[:c])) + textCursorStyle.Render(at) + selectedStyle.Render(after)
	if len(v) == 0 && hint != "" {
		out += " " + dimStyle.Render(hint)
	}
	return out
}

func checkbox(on bool) string {
	if on {
		return selectedStyle.Render("[x]")
	}
	return "[ ]"
}

func renderSelect(s *widget.SingleSelect) string {
	chosen, ok := s.Selected()
	if !s.Focused {
		value := dimStyle.Render("not set")
		if ok {
			value = chosen
		}
		return pointer(false) + labelStyle.Render(s.Label+":") + " " + value
	}
	var b strings.Builder
	b.WriteString(pointer(true) + labelStyle.Render(s.Label+":") + "\n")
	sel, hasSel := s.SelectedIndex()
	for i, opt := range s.Options() {
		mark := "( )"
		if hasSel && i == sel {
			mark = selectedStyle.Render("(•)")
		}
		line := fmt.Sprintf("    %s%s %s", pointer(i == s.Highlight()), mark, opt)
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderSearchList(label string, l *widget.SearchableList) string {
	var b strings.Builder
	selected := l.Selected()
	b.WriteString(fmt.Sprintf("%s%s %s\n", pointer(l.Focused), labelStyle.Render(label), dimStyle.Render(fmt.Sprintf("(%d selected)", len(selected)))))
	b.WriteString("    Search: " + textValue(&l.Search, "type to filter") + "\n")

	items := l.VisibleItems()
	if len(items) == 0 {
		b.WriteString(dimStyle.Render("    No matches.") + "\n")
	}
	h := l.Highlight()
	start := 0
	if h >= maxListRows {
		start = h - maxListRows + 1
	}
	end := min(len(items), start+maxListRows)
	lastCategory := ""
	for i := start; i < end; i++ {
		it := items[i]
		if it.Category != "" && it.Category != lastCategory {
			b.WriteString("    " + categoryStyle.Render(it.Category) + "\n")
			lastCategory = it.Category
		}
		cur := l.Focused && l.Mode == widget.ListNavigate && i == h
		name := it.Label
		if cur {
			name = selectedStyle.Render(name)
		}
		b.WriteString(fmt.Sprintf("      %s%s %s\n", pointer(cur), checkbox(it.Selected), name))
	}
	if end < len(items) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("      ... %d more", len(items)-end)) + "\n")
	}
	if len(selected) > 0 {
		b.WriteString("    Selected: " + selectedStyle.Render(strings.Join(selected, ", ")) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderListInput(l *widget.ListInput, hint string) string {
	var b strings.Builder
	b.WriteString(pointer(l.Focused) + labelStyle.Render(l.Label) + "\n")
	for i, e := range l.Entries() {
		cur := l.Focused && l.Mode == widget.Browsing && i == l.Highlight()
		b.WriteString("    " + pointer(cur) + "- " + e + "\n")
	}
	b.WriteString("    + " + textValue(&l.Input, hint))
	return b.String()
}

func renderPairedInput(p *widget.PairedInput) string {
	var b strings.Builder
	b.WriteString(pointer(p.Focused) + labelStyle.Render(p.Label) + "\n")
	for i, e := range p.Entries() {
		cur := p.Focused && p.Mode == widget.Browsing && i == p.Highlight()
		b.WriteString(fmt.Sprintf("    %s- %s %s\n", pointer(cur), e.First, dimStyle.Render("("+e.Second+")")))
	}
	b.WriteString("    + " + p.First.Label + ": " + textValue(&p.First, "") + "\n")
	b.WriteString("      " + p.Second.Label + ": " + textValue(&p.Second, ""))
	if d, ok := pairDraft(p); !ok && d != (widget.Pair{}) {
		b.WriteString("\n      " + warnStyle.Render(fmt.Sprintf("Fill in both %s and %s, or this entry is dropped.", p.First.Label, p.Second.Label)))
	}
	return b.String()
}

// widgetHint returns the key hint for the focused control.
func widgetHint(c control) string {
	switch c := c.(type) {
	case *widget.TextInput:
		return "Type to edit, Enter/Tab: next field"
	case *widget.Toggle:
		return "Space/Enter: toggle, Tab: next field"
	case *widget.SingleSelect:
		return "↑/↓: move, Enter: choose"
	case *widget.SearchableList:
		if c.Mode == widget.ListSearch {
			return "Type to filter, Tab: browse results"
		}
		return "↑/↓: move, Space/Enter: select, Tab: back to search"
	case *widget.ListInput:
		if c.Mode == widget.Adding {
			return "Enter: add, Tab: browse entries"
		}
		return "↑/↓: move, Delete: remove, Tab: back to adding"
	case *widget.PairedInput:
		if c.Mode == widget.Adding {
			return "Enter: add (both fields), Tab: next field"
		}
		return "↑/↓: move, Delete: remove, Tab: back to adding"
	}
	return ""
}
