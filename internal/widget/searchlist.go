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

// ListMode selects how a SearchableList routes keys.
type ListMode int

const (
	// ListSearch sends keys to the query field.
	ListSearch ListMode = iota
	// ListNavigate moves the highlight and toggles items.
	ListNavigate
)

func (m ListMode) String() string {
	if m == ListNavigate {
		return "navigate"
	}
	return "search"
}

// ListItem is one selectable entry. Category is empty for flat lists.
type ListItem struct {
	Label    string
	Category string
	Selected bool
}

// Category groups labels for NewCategorizedList.
type Category struct {
	Name   string
	Labels []string
}

// SearchableList is a multi-select list filtered by a case-insensitive
// substring query.
//
// Filtering only hides items; it never reorders or drops them, so selections
// made under one filter survive any other filter. The highlight is an index
// into the filtered view and is re-clamped to that view every time the list
// handles a key or reports it. Growing the view back does not restore an
// earlier position.
type SearchableList struct {
	Search  TextInput
	Mode    ListMode
	Focused bool

	items     []ListItem
	highlight int
}

// NewSearchableList builds an uncategorized list.
func NewSearchableList(labels ...string) SearchableList {
	l := SearchableList{Search: NewTextInput("Search")}
	for _, label := range labels {
		l.items = append(l.items, ListItem{Label: label})
	}
	return l
}

// NewCategorizedList builds a list whose items keep their category. Items are
// stored category by category in the order given.
func NewCategorizedList(categories ...Category) SearchableList {
	l := SearchableList{Search: NewTextInput("Search")}
	for _, c := range categories {
		for _, label := range c.Labels {
			l.items = append(l.items, ListItem{Label: label, Category: c.Name})
		}
	}
	return l
}

// AddItem appends an item unless the category already holds the label. The
// same label may appear under several categories.
func (l *SearchableList) AddItem(label, category string) {
	if l.indexOf(label, category) >= 0 {
		return
	}
	l.items = append(l.items, ListItem{Label: label, Category: category})
}

// Items returns every item in insertion order.
func (l *SearchableList) Items() []ListItem {
	out := make([]ListItem, len(l.items))
	copy(out, l.items)
	return out
}

// Query returns the current search text.
func (l *SearchableList) Query() string { return l.Search.Value() }

// VisibleItems returns the items matching the current query.
func (l *SearchableList) VisibleItems() []ListItem {
	idx := l.visible()
	out := make([]ListItem, 0, len(idx))
	for _, i := range idx {
		out = append(out, l.items[i])
	}
	return out
}

// Selected returns the labels of all selected items regardless of the filter.
func (l *SearchableList) Selected() []string {
	var out []string
	for _, it := range l.items {
		if it.Selected {
			out = append(out, it.Label)
		}
	}
	return out
}

// SelectedItems is like Selected but keeps categories.
func (l *SearchableList) SelectedItems() []ListItem {
	var out []ListItem
	for _, it := range l.items {
		if it.Selected {
			out = append(out, it)
		}
	}
	return out
}

// SetSelected marks exactly the given labels as selected. Unknown labels are
// ignored.
func (l *SearchableList) SetSelected(labels ...string) {
	want := make(map[string]bool, len(labels))
	for _, s := range labels {
		want[s] = true
	}
	l.SetSelectedFunc(func(it ListItem) bool { return want[it.Label] })
}

// SetSelectedFunc selects exactly the items for which fn returns true.
func (l *SearchableList) SetSelectedFunc(fn func(ListItem) bool) {
	for i := range l.items {
		l.items[i].Selected = fn(l.items[i])
	}
}

// Highlight returns the highlight clamped to the filtered view.
func (l *SearchableList) Highlight() int {
	return clampIndex(l.highlight, len(l.visible()))
}

// HighlightedItem returns the item under the highlight, if the view is not
// empty.
func (l *SearchableList) HighlightedItem() (ListItem, bool) {
	idx := l.visible()
	if len(idx) == 0 {
		return ListItem{}, false
	}
	return l.items[idx[clampIndex(l.highlight, len(idx))]], true
}

// ToggleHighlighted flips the selection of the highlighted item.
func (l *SearchableList) ToggleHighlighted() {
	idx := l.visible()
	if len(idx) == 0 {
		return
	}
	i := idx[clampIndex(l.highlight, len(idx))]
	l.items[i].Selected = !l.items[i].Selected
}

func (l *SearchableList) HandleKey(k Key) {
	switch l.Mode {
	case ListSearch:
		if k.Code == KeyTab {
			l.Mode = ListNavigate
			l.highlight = 0
			return
		}
		l.Search.HandleKey(k)
	case ListNavigate:
		switch k.Code {
		case KeyTab, KeyBackTab:
			l.Mode = ListSearch
		case KeyUp:
			if l.highlight > 0 {
				l.highlight--
			}
		case KeyDown:
			l.highlight++
		case KeyEnter, KeySpace:
			l.ToggleHighlighted()
		}
	}
	l.highlight = clampIndex(l.highlight, len(l.visible()))
	l.Search.Focused = l.Focused && l.Mode == ListSearch
}

// SetFocused focuses the list; the search field shows focus in Search mode.
func (l *SearchableList) SetFocused(f bool) {
	l.Focused = f
	l.Search.Focused = f && l.Mode == ListSearch
}

// visible returns the indexes of items matching the query.
func (l *SearchableList) visible() []int {
	query := strings.ToLower(l.Search.Value())
	out := make([]int, 0, len(l.items))
	for i, it := range l.items {
		if query == "" || strings.Contains(strings.ToLower(it.Label), query) {
			out = append(out, i)
		}
	}
	return out
}

func (l *SearchableList) indexOf(label, category string) int {
	for i, it := range l.items {
		if it.Label == label && it.Category == category {
			return i
		}
	}
	return -1
}
