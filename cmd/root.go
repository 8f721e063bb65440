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

	"github.com/cloud-exit/ghprofile/internal/config"
	"github.com/cloud-exit/ghprofile/internal/ui"
	"github.com/spf13/cobra"
)

// Version is set by ldflags at build time.
var Version = "0.1.0"

// skipSetupCommands are commands that should not write the first-run settings.
var skipSetupCommands = map[string]bool{
	"version":    true,
	"help":       true,
	"completion": true,
	"check":      true,
}

var rootCmd = &cobra.Command{
	Use:   "ghprofile",
	Short: "GitHub profile README wizard",
	Long:  "ghprofile – Build a profile.toml for your GitHub profile README with an interactive wizard",
	// Errors are printed by Execute in the ui format.
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, _ := cmd.Flags().GetBool("verbose")
		ui.Verbose = v

		if !config.ConfigExists() && !skipSetupCommands[cmd.Name()] {
			if err := config.WriteDefaults(); err != nil {
				ui.Warnf("Could not write default settings: %v", err)
			} else {
				ui.Debugf("Wrote default settings to %s", config.ConfigFile())
			}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWizard(wizardFlags{})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ghprofile version %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(versionCmd)

	rootCmd.SetVersionTemplate("ghprofile version {{.Version}}\n")
	rootCmd.Version = Version
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Error(err.Error())
	}
}
