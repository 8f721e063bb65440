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

package profile

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrMissingUsername is returned when meta.username is empty.
	ErrMissingUsername = errors.New("missing required field: meta.username")
	// ErrUnknownTemplate is returned for a layout.template outside Templates.
	ErrUnknownTemplate = errors.New("unknown template")
	// ErrUnknownHeaderStyle is returned for a header.style outside HeaderStyles.
	ErrUnknownHeaderStyle = errors.New("unknown header style")
	// ErrUnknownDisplay is returned for a projects.display outside ProjectDisplays.
	ErrUnknownDisplay = errors.New("unknown project display")
)

// Validate checks the fields the renderer cannot work without. It does not
// check that URLs or handles are reachable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Meta.Username) == "" {
		return ErrMissingUsername
	}
	if c.Header != nil && c.Header.Style != "" && !slices.Contains(HeaderStyles, c.Header.Style) {
		return fmt.Errorf("%w: %s", ErrUnknownHeaderStyle, c.Header.Style)
	}
	if c.Projects != nil && c.Projects.Display != "" && !slices.Contains(ProjectDisplays, c.Projects.Display) {
		return fmt.Errorf("%w: %s", ErrUnknownDisplay, c.Projects.Display)
	}
	if c.Layout != nil && c.Layout.Template != "" && !slices.Contains(Templates, c.Layout.Template) {
		return fmt.Errorf("%w: %s", ErrUnknownTemplate, c.Layout.Template)
	}
	return nil
}
