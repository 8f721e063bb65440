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
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cloud-exit/ghprofile/internal/profile"
)

// ErrCancelled is returned by Run when the user quits before generating.
var ErrCancelled = errors.New("wizard cancelled")

// Run executes the wizard TUI and returns the finished profile. If
// opts.Profile is set, every step is pre-filled from it.
func Run(opts Options) (*profile.Config, error) {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard error: %w", err)
	}

	wm := finalModel.(Model)
	if wm.Cancelled() || !wm.Generated() {
		return nil, ErrCancelled
	}
	cfg := wm.Result()
	return &cfg, nil
}
