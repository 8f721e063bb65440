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

package cmd

import (
	"fmt"

	"github.com/cloud-exit/ghprofile/internal/profile"
	"github.com/cloud-exit/ghprofile/internal/ui"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a profile.toml and list its sections",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")
		return runCheck(args[0], strict)
	},
}

func runCheck(path string, strict bool) error {
	load := profile.Load
	if strict {
		load = profile.LoadStrict
	}
	cfg, err := load(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	ui.Successf("%s is valid (user %s)", path, cfg.Meta.Username)
	for _, s := range cfg.Sections() {
		ui.Bullet(s)
	}
	return nil
}

func init() {
	checkCmd.Flags().Bool("strict", false, "Reject keys that are not part of the profile schema")
	rootCmd.AddCommand(checkCmd)
}
