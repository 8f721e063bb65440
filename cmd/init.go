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
	"github.com/cloud-exit/ghprofile/internal/config"
	"github.com/cloud-exit/ghprofile/internal/profile"
	"github.com/cloud-exit/ghprofile/internal/ui"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented starter profile.toml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
		force, _ := cmd.Flags().GetBool("force")
		return runInit(outputPath(out, config.LoadOrDefault()), force)
	},
}

func runInit(path string, force bool) error {
	ui.Logo()
	if err := profile.WriteStarter(path, force); err != nil {
		return err
	}
	ui.Successf("Starter profile written to %s", path)
	ui.Info("Set meta.username, then uncomment the sections you want.")
	return nil
}

func init() {
	initCmd.Flags().StringP("output", "o", "", "Where to write the starter (default from settings, else profile.toml)")
	initCmd.Flags().Bool("force", false, "Overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}
