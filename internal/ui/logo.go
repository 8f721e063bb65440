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


package ui

import "fmt"

// Logo prints the ghprofile ASCII logo with tagline.
func Logo() {
	fmt.Fprint(Stdout, Cyan)
	fmt.Fprintln(Stdout, `        _                     __ _ _`)
	fmt.Fprintln(Stdout, `   __ _| |__  _ __  _ __ ___ / _(_) | ___`)
	fmt.Fprintln(Stdout, `  / _' | '_ \| '_ \| '__/ _ \ |_| | |/ _ \`)
	fmt.Fprintln(Stdout, ` | (_| | | | | |_) | | | (_) |  _| | |  __/`)
	fmt.Fprintln(Stdout, `  \__, |_| |_| .__/|_|  \___/|_| |_|_|\___|`)
	fmt.Fprintln(Stdout, `  |___/      |_|`)
	fmt.Fprint(Stdout, NC)
	fmt.Fprintf(Stdout, "%sGitHub profile README wizard%s\n", Dim, NC)
}
