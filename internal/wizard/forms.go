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
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/cloud-exit/ghprofile/internal/profile"
	"github.com/cloud-exit/ghprofile/internal/widget"
)

// control is a widget the host routes keys to.
type control interface {
	HandleKey(widget.Key)
	SetFocused(bool)
}

// field is one row of a step form. commit copies the widget value into the
// profile owned by State.
type field struct {
	label    string
	hint     string
	advanced bool
	ctl      control
	commit   func(s *State)
}

func (f field) adv() field {
	f.advanced = true
	return f
}

func (f field) hinted(h string) field {
	f.hint = h
	return f
}

// stepForm builds every field of one step, pre-filled from the profile.
type stepForm func(s *State) []field

// stepForms is the step -> field adapter table.
var stepForms = [...]stepForm{
	StepWelcome:         welcomeFields,
	StepIdentity:        identityFields,
	StepAbout:           aboutFields,
	StepSocial:          socialFields,
	StepSkills:          skillsFields,
	StepStats:           statsFields,
	StepProjects:        projectsFields,
	StepBlog:            blogFields,
	StepDynamic:         dynamicFields,
	StepExtras:          extrasFields,
	StepLayout:          layoutFields,
	StepPreviewGenerate: nil,
}

// form holds the visible fields of the current step and which one has focus.
type form struct {
	step   Step
	fields []field
	focus  int
}

// buildForm creates the form for the current step. Advanced fields are left
// out in Basic mode, so their stored values are never overwritten.
func buildForm(s *State) form {
	f := form{step: s.CurrentStep()}
	i := s.CurrentStep().Index()
	if i < 0 || stepForms[i] == nil {
		return f
	}
	for _, fld := range stepForms[i](s) {
		if fld.advanced && s.Mode() == ModeBasic {
			continue
		}
		f.fields = append(f.fields, fld)
	}
	f.setFocus(0)
	return f
}

// commit writes every visible field into the profile and drops sections that
// ended up empty.
func (f *form) commit(s *State) {
	for _, fld := range f.fields {
		if fld.commit != nil {
			fld.commit(s)
		}
	}
	pruneSections(s.Config())
}

func (f *form) focused() *field {
	if f.focus < 0 || f.focus >= len(f.fields) {
		return nil
	}
	return &f.fields[f.focus]
}

func (f *form) setFocus(i int) {
	if len(f.fields) == 0 {
		f.focus = 0
		return
	}
	f.focus = max(0, min(i, len(f.fields)-1))
	for j := range f.fields {
		f.fields[j].ctl.SetFocused(j == f.focus)
	}
}

func (f *form) moveFocus(delta int) { f.setFocus(f.focus + delta) }

// focusLabel moves focus to the field with the given label, if present.
func (f *form) focusLabel(label string) {
	for i, fld := range f.fields {
		if fld.label == label {
			f.setFocus(i)
			return
		}
	}
}

// advance moves to the next field, or asks for the next step from the last.
func (f *form) advance() StepAction {
	if f.focus >= len(f.fields)-1 {
		return ActionNextStep
	}
	f.moveFocus(+1)
	return ActionContinue
}

// handleKey routes one key to the focused field. Simple fields (text, toggle,
// select) let Tab move between fields and Enter advance; composite widgets
// keep Tab and Enter for themselves.
func (f *form) handleKey(k widget.Key) StepAction {
	fld := f.focused()
	if fld == nil {
		if k.Code == widget.KeyEnter {
			if f.step.IsLast() {
				return ActionGenerate
			}
			return ActionNextStep
		}
		return ActionContinue
	}
	if isSimple(fld.ctl) {
		switch k.Code {
		case widget.KeyTab:
			f.moveFocus(+1)
			return ActionContinue
		case widget.KeyBackTab:
			f.moveFocus(-1)
			return ActionContinue
		case widget.KeyEnter:
			if _, ok := fld.ctl.(*widget.Toggle); !ok {
				fld.ctl.HandleKey(k)
				return f.advance()
			}
		}
	}
	fld.ctl.HandleKey(k)
	return ActionContinue
}

func isSimple(c control) bool {
	switch c.(type) {
	case *widget.TextInput, *widget.SingleSelect, *widget.Toggle:
		return true
	}
	return false
}

// editingText reports whether printable keys currently go into a text field.
func (f *form) editingText() bool {
	fld := f.focused()
	if fld == nil {
		return false
	}
	switch c := fld.ctl.(type) {
	case *widget.TextInput:
		return true
	case *widget.SearchableList:
		return c.Mode == widget.ListSearch
	case *widget.ListInput:
		return c.Mode == widget.Adding
	case *widget.PairedInput:
		return c.Mode == widget.Adding
	}
	return false
}

// --- Field constructors ---

func textField(label, value string, set func(s *State, v string)) field {
	in := widget.NewTextInputWithValue(label, value)
	return field{
		label:  label,
		ctl:    &in,
		commit: func(s *State) { set(s, strings.TrimSpace(in.Value())) },
	}
}

// numField edits a positive integer. Anything else is stored as unset.
func numField(label string, cur *int, set func(s *State, v *int)) field {
	value := ""
	if cur != nil {
		value = strconv.Itoa(*cur)
	}
	in := widget.NewTextInputWithValue(label, value)
	return field{
		label: label,
		ctl:   &in,
		commit: func(s *State) {
			n, err := strconv.Atoi(strings.TrimSpace(in.Value()))
			if err != nil || n <= 0 {
				set(s, nil)
				return
			}
			set(s, profile.Int(n))
		},
	}
}

// toggleField edits an optional bool. Off is stored as unset unless the
// profile the wizard started from set the value explicitly.
func toggleField(label string, cur, loaded *bool, set func(s *State, v *bool)) field {
	tg := widget.NewToggle(label, profile.BoolValue(cur))
	return field{
		label: label,
		ctl:   &tg,
		commit: func(s *State) {
			if !tg.Value() && loaded == nil {
				set(s, nil)
				return
			}
			set(s, profile.Bool(tg.Value()))
		},
	}
}

// selectField picks one of choices. A current value outside choices is kept
// as an extra option. Without a confirmed choice the current value stays.
func selectField(label string, choices []choice, cur string, set func(s *State, v string)) field {
	idx := slices.IndexFunc(choices, func(c choice) bool { return c.Value == cur })
	if idx < 0 && cur != "" {
		choices = append(slices.Clone(choices), choice{Label: cur, Value: cur})
		idx = len(choices) - 1
	}
	labels := make([]string, len(choices))
	for i, c := range choices {
		labels[i] = c.Label
	}
	sel := widget.NewSingleSelectWithDefault(label, labels, max(idx, 0))
	if idx >= 0 {
		sel.Confirm()
	}
	return field{
		label: label,
		ctl:   &sel,
		commit: func(s *State) {
			if i, ok := sel.SelectedIndex(); ok {
				set(s, choices[i].Value)
				return
			}
			set(s, cur)
		},
	}
}

// listField edits a list of strings. Text typed but not yet added with Enter
// is committed as a last entry.
func listField(label string, entries []string, set func(s *State, v []string)) field {
	l := widget.NewListInput(label, entries...)
	return field{
		label: label,
		ctl:   &l,
		commit: func(s *State) {
			out := l.Entries()
			if draft := strings.TrimSpace(l.Input.Value()); draft != "" {
				out = append(out, draft)
			}
			set(s, out)
		},
	}
}

// pairField edits a list of pairs. A draft pair is committed only when both
// halves are filled in.
func pairField(label, first, second string, entries []widget.Pair, set func(s *State, v []widget.Pair)) field {
	p := widget.NewPairedInput(label, first, second, entries...)
	return field{
		label: label,
		ctl:   &p,
		commit: func(s *State) {
			out := p.Entries()
			if draft, ok := pairDraft(&p); ok {
				out = append(out, draft)
			}
			set(s, out)
		},
	}
}

// pairDraft returns the trimmed pair being typed, if both halves are set.
func pairDraft(p *widget.PairedInput) (widget.Pair, bool) {
	d := widget.Pair{
		First:  strings.TrimSpace(p.First.Value()),
		Second: strings.TrimSpace(p.Second.Value()),
	}
	return d, d.First != "" && d.Second != ""
}

// --- Section helpers ---

// sectionOf returns *p, allocating the section first if it is absent.
func sectionOf[T any](p **T) *T {
	if *p == nil {
		*p = new(T)
	}
	return *p
}

// valueOf returns a copy of the section, or its zero value when absent.
func valueOf[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// prune drops a section whose fields are all unset.
func prune[T any](p **T) {
	if *p != nil && reflect.ValueOf(*p).Elem().IsZero() {
		*p = nil
	}
}

func pruneSections(c *profile.Config) {
	prune(&c.Header)
	prune(&c.About)
	prune(&c.Social)
	prune(&c.Skills)
	prune(&c.Stats)
	prune(&c.Projects)
	prune(&c.Blog)
	prune(&c.Dynamic)
	prune(&c.Layout)
	prune(&c.Sponsors)
	prune(&c.Extras)
}

// --- Steps ---

func welcomeFields(s *State) []field {
	return []field{
		selectField("Wizard mode", modeChoices, s.Mode().String(), func(s *State, v string) {
			s.SetMode(ParseMode(v))
		}),
	}
}

func identityFields(s *State) []field {
	cfg := s.Config()
	h := valueOf(cfg.Header)
	header := func(s *State) *profile.Header { return sectionOf(&s.Config().Header) }
	return []field{
		textField("GitHub username", cfg.Meta.Username, func(s *State, v string) {
			s.Config().Meta.Username = v
		}).hinted("required"),
		textField("Display name", cfg.Meta.Name, func(s *State, v string) {
			s.Config().Meta.Name = v
		}),
		selectField("Header style", headerStyleChoices, string(h.Style), func(s *State, v string) {
			header(s).Style = profile.HeaderStyle(v)
		}),
		textField("Tagline", h.Tagline, func(s *State, v string) { header(s).Tagline = v }),
		listField("Typing lines", h.TypingLines, func(s *State, v []string) {
			header(s).TypingLines = v
		}).adv(),
		textField("Typing font", h.TypingFont, func(s *State, v string) {
			header(s).TypingFont = v
		}).hinted("Fira Code").adv(),
		textField("Typing color", h.TypingColor, func(s *State, v string) {
			header(s).TypingColor = v
		}).hinted("hex, e.g. f75c7e").adv(),
		textField("Banner URL", h.BannerURL, func(s *State, v string) {
			header(s).BannerURL = v
		}).adv(),
	}
}

func aboutFields(s *State) []field {
	a := valueOf(s.Config().About)
	about := func(s *State) *profile.About { return sectionOf(&s.Config().About) }
	return []field{
		textField("Role", a.Role, func(s *State, v string) { about(s).Role = v }),
		textField("Company", a.Company, func(s *State, v string) { about(s).Company = v }),
		textField("Currently working on", a.CurrentWork, func(s *State, v string) { about(s).CurrentWork = v }),
		textField("Currently learning", a.Learning, func(s *State, v string) { about(s).Learning = v }),
		textField("How to reach me", a.ReachMe, func(s *State, v string) { about(s).ReachMe = v }),
		textField("Fun fact", a.FunFact, func(s *State, v string) { about(s).FunFact = v }),
		textField("Pronouns", a.Pronouns, func(s *State, v string) { about(s).Pronouns = v }).adv(),
		textField("Location", a.Location, func(s *State, v string) { about(s).Location = v }).adv(),
		textField("Timezone", a.Timezone, func(s *State, v string) { about(s).Timezone = v }).adv(),
	}
}

func socialFields(s *State) []field {
	soc := valueOf(s.Config().Social)
	out := make([]field, 0, len(SocialPlatforms))
	for _, p := range SocialPlatforms {
		f := textField(p.Label, *p.Field(&soc), func(s *State, v string) {
			*p.Field(sectionOf(&s.Config().Social)) = v
		}).hinted(p.Placeholder)
		if p.Advanced {
			f = f.adv()
		}
		out = append(out, f)
	}
	return out
}

func skillsFields(s *State) []field {
	list := skillCategoryList(s.Config().Skills)
	return []field{{
		label: "Tech stack",
		ctl:   &list,
		commit: func(s *State) {
			byCategory := make(map[string][]string)
			for _, it := range list.SelectedItems() {
				byCategory[it.Category] = append(byCategory[it.Category], it.Label)
			}
			skills := sectionOf(&s.Config().Skills)
			for _, c := range SkillCategories {
				*c.Field(skills) = byCategory[c.Name]
			}
		},
	}}
}

func statsFields(s *State) []field {
	st := valueOf(s.Config().Stats)
	ld := valueOf(s.Loaded().Stats)
	stats := func(s *State) *profile.Stats { return sectionOf(&s.Config().Stats) }
	return []field{
		toggleField("Stats card", st.StatsCard, ld.StatsCard, func(s *State, v *bool) { stats(s).StatsCard = v }),
		toggleField("Top languages card", st.TopLangs, ld.TopLangs, func(s *State, v *bool) { stats(s).TopLangs = v }),
		toggleField("Streak card", st.Streak, ld.Streak, func(s *State, v *bool) { stats(s).Streak = v }),
		toggleField("Profile views counter", st.ProfileViews, ld.ProfileViews, func(s *State, v *bool) { stats(s).ProfileViews = v }),
		toggleField("Contributor stats", st.ContributorStats, ld.ContributorStats, func(s *State, v *bool) {
			stats(s).ContributorStats = v
		}).adv(),
		toggleField("Trophies", st.Trophies, ld.Trophies, func(s *State, v *bool) { stats(s).Trophies = v }).adv(),
		toggleField("Contribution snake", st.ContributionSnake, ld.ContributionSnake, func(s *State, v *bool) {
			stats(s).ContributionSnake = v
		}).adv(),
		selectField("Theme", plainChoices(StatsThemes), st.Theme, func(s *State, v string) { stats(s).Theme = v }),
		toggleField("Hide border", st.HideBorder, ld.HideBorder, func(s *State, v *bool) { stats(s).HideBorder = v }).adv(),
		selectField("Top languages layout", plainChoices(TopLangsLayouts), st.TopLangsLayout, func(s *State, v string) {
			stats(s).TopLangsLayout = v
		}).adv(),
		numField("Top languages count", st.TopLangsCount, func(s *State, v *int) {
			stats(s).TopLangsCount = v
		}).hinted("e.g. 8").adv(),
	}
}

func projectsFields(s *State) []field {
	p := valueOf(s.Config().Projects)
	projects := func(s *State) *profile.Projects { return sectionOf(&s.Config().Projects) }
	return []field{
		listField("Featured repositories", p.Repos, func(s *State, v []string) {
			projects(s).Repos = v
		}).hinted("owner/repo"),
		selectField("Display", displayChoices, string(p.Display), func(s *State, v string) {
			projects(s).Display = profile.ProjectDisplay(v)
		}),
	}
}

func blogFields(s *State) []field {
	b := valueOf(s.Config().Blog)
	blog := func(s *State) *profile.Blog { return sectionOf(&s.Config().Blog) }
	articles := make([]widget.Pair, len(b.Articles))
	for i, a := range b.Articles {
		articles[i] = widget.Pair{First: a.Title, Second: a.URL}
	}
	return []field{
		listField("RSS feeds", b.RSSURLs, func(s *State, v []string) { blog(s).RSSURLs = v }),
		pairField("Articles", "Title", "URL", articles, func(s *State, v []widget.Pair) {
			var out []profile.Article
			for _, p := range v {
				out = append(out, profile.Article{Title: p.First, URL: p.Second})
			}
			blog(s).Articles = out
		}),
		textField("YouTube channel", b.YouTube, func(s *State, v string) { blog(s).YouTube = v }).adv(),
		textField("Newsletter", b.Newsletter, func(s *State, v string) { blog(s).Newsletter = v }).adv(),
	}
}

func dynamicFields(s *State) []field {
	d := valueOf(s.Config().Dynamic)
	ld := valueOf(s.Loaded().Dynamic)
	dyn := func(s *State) *profile.Dynamic { return sectionOf(&s.Config().Dynamic) }
	return []field{
		toggleField("WakaTime stats", d.WakaTime, ld.WakaTime, func(s *State, v *bool) { dyn(s).WakaTime = v }),
		toggleField("Recent GitHub activity", d.GitHubActivity, ld.GitHubActivity, func(s *State, v *bool) { dyn(s).GitHubActivity = v }),
		textField("Spotify user ID", d.SpotifyUID, func(s *State, v string) { dyn(s).SpotifyUID = v }).adv(),
		textField("Stack Overflow user ID", d.StackOverflowUID, func(s *State, v string) {
			dyn(s).StackOverflowUID = v
		}).adv(),
	}
}

func extrasFields(s *State) []field {
	cfg := s.Config()
	e := valueOf(cfg.Extras)
	sp := valueOf(cfg.Sponsors)
	ldSp := valueOf(s.Loaded().Sponsors)
	extras := func(s *State) *profile.Extras { return sectionOf(&s.Config().Extras) }
	sponsors := func(s *State) *profile.Sponsors { return sectionOf(&s.Config().Sponsors) }
	collapsible := make([]widget.Pair, len(e.Collapsible))
	for i, c := range e.Collapsible {
		collapsible[i] = widget.Pair{First: c.Summary, Second: c.Content}
	}
	return []field{
		toggleField("GitHub Sponsors", sp.GitHubSponsors, ldSp.GitHubSponsors, func(s *State, v *bool) { sponsors(s).GitHubSponsors = v }),
		textField("Ko-fi", sp.KoFi, func(s *State, v string) { sponsors(s).KoFi = v }).hinted("https://ko-fi.com/username"),
		textField("Buy Me a Coffee", sp.BuyMeACoffee, func(s *State, v string) {
			sponsors(s).BuyMeACoffee = v
		}).hinted("https://buymeacoffee.com/username"),
		listField("Certifications", e.Certifications, func(s *State, v []string) { extras(s).Certifications = v }),
		textField("PGP fingerprint", e.PGPFingerprint, func(s *State, v string) { extras(s).PGPFingerprint = v }).adv(),
		textField("Xbox gamertag", e.Xbox, func(s *State, v string) { extras(s).Xbox = v }).adv(),
		textField("Steam ID", e.Steam, func(s *State, v string) { extras(s).Steam = v }).adv(),
		textField("PSN ID", e.PSN, func(s *State, v string) { extras(s).PSN = v }).adv(),
		listField("Custom markdown blocks", e.CustomBlocks, func(s *State, v []string) { extras(s).CustomBlocks = v }).adv(),
		pairField("Collapsible sections", "Summary", "Content", collapsible, func(s *State, v []widget.Pair) {
			var out []profile.CollapsibleSection
			for _, p := range v {
				out = append(out, profile.CollapsibleSection{Summary: p.First, Content: p.Second})
			}
			extras(s).Collapsible = out
		}).adv(),
	}
}

func layoutFields(s *State) []field {
	l := valueOf(s.Config().Layout)
	ld := valueOf(s.Loaded().Layout)
	layout := func(s *State) *profile.Layout { return sectionOf(&s.Config().Layout) }
	return []field{
		selectField("Template", templateChoices, string(l.Template), func(s *State, v string) {
			layout(s).Template = profile.Template(v)
		}),
		toggleField("Dark mode", l.DarkMode, ld.DarkMode, func(s *State, v *bool) { layout(s).DarkMode = v }),
		toggleField("Centered", l.Centered, ld.Centered, func(s *State, v *bool) { layout(s).Centered = v }),
	}
}
