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

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cloud-exit/ghprofile/internal/profile"
)

// Options configures a wizard run.
type Options struct {
	Mode        Mode
	Profile     *profile.Config // pre-fills every step when non-nil
	ConfirmQuit bool            // ask for a second Ctrl+C before discarding input
}

// Model is the root bubbletea model for the wizard.
type Model struct {
	state    *State
	form     form
	keys     keyMap
	help     help.Model
	visited  map[Step]bool
	width    int
	height   int
	preview  string
	quitWarn bool

	confirmQuit bool
	cancelled   bool
	generated   bool
	result      profile.Config
}

// NewModel creates a wizard model at the Welcome step.
func NewModel(opts Options) Model {
	var st *State
	if opts.Profile != nil {
		st = NewStateFromConfig(opts.Mode, *opts.Profile)
	} else {
		st = NewState(opts.Mode)
	}
	m := Model{
		state:       st,
		keys:        defaultKeyMap(),
		help:        help.New(),
		visited:     make(map[Step]bool),
		confirmQuit: opts.ConfirmQuit,
	}
	return m.enterStep()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.contentWidth()
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.generated || m.cancelled {
		return m, nil
	}
	if !key.Matches(msg, m.keys.Quit) {
		m.quitWarn = false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.confirmQuit && !m.quitWarn && m.hasInput() {
			m.quitWarn = true
			return m, nil
		}
		return m.apply(ActionQuit)
	case key.Matches(msg, m.keys.Generate):
		return m.apply(ActionGenerate)
	case key.Matches(msg, m.keys.NextStep):
		return m.apply(ActionNextStep)
	case key.Matches(msg, m.keys.PrevStep):
		return m.apply(ActionPrevStep)
	case key.Matches(msg, m.keys.ToggleMode):
		return m.toggleMode(), nil
	case key.Matches(msg, m.keys.NextField):
		m.form.moveFocus(+1)
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.form.moveFocus(-1)
		return m, nil
	case key.Matches(msg, m.keys.Help) && (msg.String() != "?" || !m.form.editingText()):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	for _, k := range translateKey(msg) {
		if action := m.form.handleKey(k); action != ActionContinue {
			return m.apply(action)
		}
	}
	return m, nil
}

// apply carries out a StepAction. Every transition commits the current form
// first.
func (m Model) apply(action StepAction) (tea.Model, tea.Cmd) {
	switch action {
	case ActionQuit:
		m.cancelled = true
		return m, tea.Quit
	case ActionGenerate:
		m.form.commit(m.state)
		m.result = m.state.BuildConfig()
		m.generated = true
		return m, tea.Quit
	case ActionNextStep:
		m.form.commit(m.state)
		m.visited[m.state.CurrentStep()] = true
		m.state.NextStep()
		return m.enterStep(), nil
	case ActionPrevStep:
		m.form.commit(m.state)
		m.visited[m.state.CurrentStep()] = true
		m.state.PrevStep()
		return m.enterStep(), nil
	}
	return m, nil
}

// enterStep rebuilds the form for the current step.
func (m Model) enterStep() Model {
	m.form = buildForm(m.state)
	m.preview = ""
	if m.state.CurrentStep() == StepPreviewGenerate {
		data, err := profile.Marshal(m.state.Config())
		if err != nil {
			m.preview = warnStyle.Render(err.Error())
		} else {
			m.preview = strings.TrimRight(string(data), "\n")
		}
	}
	return m
}

// toggleMode switches Basic/Advanced and rebuilds the form, keeping focus on
// the same field when it is still shown.
func (m Model) toggleMode() Model {
	m.form.commit(m.state)
	var label string
	if f := m.form.focused(); f != nil {
		label = f.label
	}
	m.state.SetMode(m.state.Mode().Toggle())
	m = m.enterStep()
	if label != "" {
		m.form.focusLabel(label)
	}
	return m
}

// hasInput reports whether quitting would discard anything.
func (m Model) hasInput() bool {
	m.form.commit(m.state)
	return !m.state.Config().IsZero()
}

// Cancelled returns true if the user quit without generating.
func (m Model) Cancelled() bool { return m.cancelled }

// Generated returns true once the profile has been handed off.
func (m Model) Generated() bool { return m.generated }

// Result returns the finished profile. Only valid after Generated.
func (m Model) Result() profile.Config { return m.result }

// CurrentStep returns the step on screen.
func (m Model) CurrentStep() Step { return m.state.CurrentStep() }

// Mode returns the current interaction mode.
func (m Model) Mode() Mode { return m.state.Mode() }

func (m Model) View() string {
	if m.generated || m.cancelled {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), " "+m.viewStep())
}

func (m Model) viewStep() string {
	var b strings.Builder
	step := m.state.CurrentStep()
	b.WriteString(m.stepTitle())
	b.WriteString("  ")
	b.WriteString(modeStyle.Render(m.state.Mode().String()))
	b.WriteString("\n")
	if sub := stepSubtitles[step]; sub != "" {
		b.WriteString(subtitleStyle.Render(sub))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if step == StepPreviewGenerate {
		b.WriteString(previewStyle.Render(m.preview))
		b.WriteString("\n")
	}
	for _, f := range m.form.fields {
		b.WriteString(renderField(f))
		b.WriteString("\n")
	}

	if m.quitWarn {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render("Press Ctrl+C again to quit without saving."))
		b.WriteString("\n")
	}

	hint := "Enter: next step"
	if step == StepPreviewGenerate {
		hint = "Enter: generate profile.toml"
	}
	if f := m.form.focused(); f != nil {
		hint = widgetHint(f.ctl)
	}
	b.WriteString(helpStyle.Render(hint))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

var stepSubtitles = map[Step]string{
	StepWelcome:         "Build a profile.toml for your GitHub profile README. Pick how much to ask.",
	StepIdentity:        "Who you are and how the README greets visitors.",
	StepAbout:           "A few lines about you. Leave anything blank to skip it.",
	StepSocial:          "Links shown as badges.",
	StepSkills:          "Search and select the technologies you use.",
	StepStats:           "GitHub stats cards and their theme.",
	StepProjects:        "Repositories to feature.",
	StepBlog:            "Feeds and hand-picked posts.",
	StepDynamic:         "Live integrations refreshed by GitHub Actions.",
	StepExtras:          "Sponsorship, certifications and anything else.",
	StepLayout:          "Overall template and theming.",
	StepPreviewGenerate: "Review the generated configuration.",
}

// stepTitle formats a step title like "Step 3/12: About".
func (m Model) stepTitle() string {
	step := m.state.CurrentStep()
	return titleStyle.Render(fmt.Sprintf("Step %d/%d: %s", step.Index()+1, StepCount(), step.Label()))
}

// contentWidth returns the available width for step content, accounting for
// the sidebar.
func (m Model) contentWidth() int {
	w := m.width - sidebarWidth - 2
	if w < 40 {
		w = 40
	}
	return w
}

// renderSidebar lists every step, marking the current and visited ones.
func (m Model) renderSidebar() string {
	var b strings.Builder
	b.WriteString("\n")
	current := m.state.CurrentStep()
	for i, s := range Steps() {
		label := fmt.Sprintf("%2d. %s", i+1, s.Label())
		switch {
		case s == current:
			b.WriteString(sidebarActiveStyle.Render(">> " + label))
		case m.visited[s]:
			b.WriteString("   " + sidebarVisitedStyle.Render(label+" ✓"))
		default:
			b.WriteString("   " + dimStyle.Render(label))
		}
		b.WriteString("\n")
	}
	return sidebarStyle.Render(b.String())
}
