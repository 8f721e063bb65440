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
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cloud-exit/ghprofile/internal/profile"
)

func keyType(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msgs through Update and returns the final model and last command.
func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", next)
		}
	}
	return m, cmd
}

func TestModel_Start(t *testing.T) {
	m := NewModel(Options{})
	if m.CurrentStep() != StepWelcome {
		t.Errorf("CurrentStep() = %v, want Welcome", m.CurrentStep())
	}
	if m.Mode() != ModeBasic {
		t.Errorf("Mode() = %v, want basic", m.Mode())
	}
	if m.Init() != nil {
		t.Error("Init() should not return a command")
	}
	if !strings.Contains(m.View(), "Step 1/12: Welcome") {
		t.Errorf("View() missing step title:\n%s", m.View())
	}
}

func TestModel_WelcomePicksAdvanced(t *testing.T) {
	m, _ := send(t, NewModel(Options{}), keyType(tea.KeyDown), keyType(tea.KeyEnter))
	if m.CurrentStep() != StepIdentity {
		t.Errorf("CurrentStep() = %v, want Identity", m.CurrentStep())
	}
	if m.Mode() != ModeAdvanced {
		t.Errorf("Mode() = %v, want advanced", m.Mode())
	}
}

func TestModel_TypeAndNavigate(t *testing.T) {
	m, _ := send(t, NewModel(Options{}),
		keyType(tea.KeyEnter),
		runes("octocat"),
		keyType(tea.KeyCtrlN),
	)
	if m.CurrentStep() != StepAbout {
		t.Fatalf("CurrentStep() = %v, want About", m.CurrentStep())
	}
	if got := m.state.Config().Meta.Username; got != "octocat" {
		t.Errorf("Username = %q, want octocat", got)
	}

	m, _ = send(t, m, keyType(tea.KeyEsc))
	if m.CurrentStep() != StepIdentity {
		t.Errorf("after Esc: %v, want Identity", m.CurrentStep())
	}
	if !strings.Contains(m.View(), "octocat") {
		t.Error("Identity step should be pre-filled after going back")
	}
	if !m.visited[StepAbout] {
		t.Error("About should be marked visited")
	}
}

func TestModel_QuestionMarkTypesInTextField(t *testing.T) {
	m, _ := send(t, NewModel(Options{}), keyType(tea.KeyEnter), runes("?"))
	if m.help.ShowAll {
		t.Error("? in a text field should not toggle help")
	}
	m, _ = send(t, m, keyType(tea.KeyCtrlN))
	if got := m.state.Config().Meta.Username; got != "?" {
		t.Errorf("Username = %q, want ?", got)
	}

	m, _ = send(t, NewModel(Options{}), runes("?"))
	if !m.help.ShowAll {
		t.Error("? outside a text field should toggle help")
	}
}

func TestModel_Generate(t *testing.T) {
	m, cmd := send(t, NewModel(Options{}),
		keyType(tea.KeyEnter),
		runes("octocat"),
		keyType(tea.KeyCtrlG),
	)
	if !m.Generated() {
		t.Fatal("Generated() = false after Ctrl+G")
	}
	if cmd == nil {
		t.Error("Ctrl+G should return tea.Quit")
	}
	if got := m.Result().Meta.Username; got != "octocat" {
		t.Errorf("Result().Meta.Username = %q, want octocat", got)
	}
	if m.View() != "" {
		t.Error("View() should be empty once finished")
	}

	m, _ = send(t, m, runes("x"))
	if got := m.Result().Meta.Username; got != "octocat" {
		t.Error("keys after generating should be ignored")
	}
}

func TestModel_PreviewAndEnterGenerates(t *testing.T) {
	cfg := profile.Config{Meta: profile.Meta{Username: "octocat"}}
	m := NewModel(Options{Profile: &cfg})
	for range StepCount() - 1 {
		m, _ = send(t, m, keyType(tea.KeyCtrlN))
	}
	if m.CurrentStep() != StepPreviewGenerate {
		t.Fatalf("CurrentStep() = %v, want PreviewGenerate", m.CurrentStep())
	}
	shown, err := profile.Parse([]byte(m.preview), true)
	if err != nil {
		t.Fatalf("preview is not a valid profile: %v\n%s", err, m.preview)
	}
	if shown.Meta.Username != "octocat" {
		t.Errorf("preview username = %q, want octocat:\n%s", shown.Meta.Username, m.preview)
	}

	m, _ = send(t, m, keyType(tea.KeyEnter))
	if !m.Generated() {
		t.Fatal("Enter on preview should generate")
	}
	if m.Result().Meta.Username != "octocat" {
		t.Errorf("Result() = %+v", m.Result())
	}
}

func TestModel_QuitWithoutInput(t *testing.T) {
	m, cmd := send(t, NewModel(Options{ConfirmQuit: true}), keyType(tea.KeyCtrlC))
	if !m.Cancelled() {
		t.Error("Ctrl+C with nothing entered should quit immediately")
	}
	if cmd == nil {
		t.Error("quit should return tea.Quit")
	}
}

func TestModel_ConfirmQuit(t *testing.T) {
	m, _ := send(t, NewModel(Options{ConfirmQuit: true}),
		keyType(tea.KeyEnter),
		runes("octocat"),
		keyType(tea.KeyCtrlC),
	)
	if m.Cancelled() {
		t.Fatal("first Ctrl+C should only warn")
	}
	if !strings.Contains(m.View(), "Ctrl+C again") {
		t.Error("View() should show the quit warning")
	}

	disarmed, _ := send(t, m, runes("x"))
	if disarmed.quitWarn {
		t.Error("another key should clear the quit warning")
	}

	m, _ = send(t, m, keyType(tea.KeyCtrlC))
	if !m.Cancelled() {
		t.Error("second Ctrl+C should quit")
	}
	if m.Generated() {
		t.Error("quitting should not generate")
	}
}

func TestModel_QuitWithoutConfirm(t *testing.T) {
	m, _ := send(t, NewModel(Options{}),
		keyType(tea.KeyEnter),
		runes("octocat"),
		keyType(tea.KeyCtrlC),
	)
	if !m.Cancelled() {
		t.Error("Ctrl+C should quit when confirmation is off")
	}
}

func TestModel_ToggleMode(t *testing.T) {
	m, _ := send(t, NewModel(Options{}), keyType(tea.KeyEnter), runes("octocat"))
	m, _ = send(t, m, keyType(tea.KeyCtrlT))

	if m.Mode() != ModeAdvanced {
		t.Errorf("Mode() = %v, want advanced", m.Mode())
	}
	if m.CurrentStep() != StepIdentity {
		t.Errorf("CurrentStep() = %v, want Identity", m.CurrentStep())
	}
	if len(m.form.fields) != 8 {
		t.Errorf("advanced identity fields = %d, want 8", len(m.form.fields))
	}
	if f := m.form.focused(); f == nil || f.label != "GitHub username" {
		t.Errorf("focus should stay on GitHub username, got %v", f)
	}
	if got := m.state.Config().Meta.Username; got != "octocat" {
		t.Errorf("Username = %q, want octocat after mode switch", got)
	}
}

func TestModel_FieldNavigationKeys(t *testing.T) {
	m, _ := send(t, NewModel(Options{}), keyType(tea.KeyEnter), keyType(tea.KeyCtrlF))
	if m.form.focus != 1 {
		t.Errorf("focus after Ctrl+F = %d, want 1", m.form.focus)
	}
	m, _ = send(t, m, keyType(tea.KeyCtrlB))
	if m.form.focus != 0 {
		t.Errorf("focus after Ctrl+B = %d, want 0", m.form.focus)
	}
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := send(t, NewModel(Options{}), tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.width, m.height)
	}
	if m.help.Width != 120-sidebarWidth-2 {
		t.Errorf("help width = %d", m.help.Width)
	}
}

func TestModel_SidebarListsSteps(t *testing.T) {
	view := NewModel(Options{}).View()
	for _, s := range Steps() {
		if !strings.Contains(view, s.Label()) {
			t.Errorf("sidebar missing %q", s.Label())
		}
	}
}
