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
	"errors"
	"fmt"
	"os"

	"github.com/cloud-exit/ghprofile/internal/config"
	"github.com/cloud-exit/ghprofile/internal/profile"
	"github.com/cloud-exit/ghprofile/internal/ui"
	"github.com/cloud-exit/ghprofile/internal/wizard"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type wizardFlags struct {
	advanced bool
	output   string
	from     string
	force    bool
}

var wizFlags wizardFlags

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Run the interactive profile wizard",
	Long: `Walks through identity, about, social links, skills, stats, projects, blog,
dynamic widgets, extras and layout, then writes the result as profile.toml.

Use --from to start from an existing profile. Basic mode asks only for the
essentials; press Ctrl+T at any time to switch to advanced mode.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWizard(wizFlags)
	},
}

func runWizard(f wizardFlags) error {
	settings := config.LoadOrDefault()
	out := outputPath(f.output, settings)

	if err := checkOverwrite(out, f); err != nil {
		return err
	}

	// Non-interactive terminal: fall back to the starter file
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		ui.Logo()
		ui.Warn("Non-interactive terminal detected. Writing the starter profile instead.")
		if err := profile.WriteStarter(out, f.force); err != nil {
			return err
		}
		ui.Successf("Starter profile written to %s. Run 'ghprofile wizard' interactively to fill it in.", out)
		return nil
	}

	var existing *profile.Config
	if f.from != "" {
		cfg, err := profile.Load(f.from)
		if err != nil {
			return err
		}
		existing = cfg
		ui.Debugf("Loaded %v from %s", cfg.Sections(), f.from)
	}

	mode := wizardMode(f.advanced, settings)
	ui.Debugf("Starting wizard in %s mode", mode)

	cfg, err := wizard.Run(wizard.Options{
		Mode:        mode,
		Profile:     existing,
		ConfirmQuit: settings.Wizard.ConfirmQuit,
	})
	if errors.Is(err, wizard.ErrCancelled) {
		ui.Info("Wizard cancelled. Nothing was written.")
		return nil
	}
	if err != nil {
		return err
	}

	return saveResult(cfg, out)
}

// outputPath picks the -o flag, then the configured profile_path.
func outputPath(flag string, settings *config.Config) string {
	if flag != "" {
		return flag
	}
	return settings.Wizard.OutputPath()
}

// wizardMode picks --advanced, then the configured default_mode.
func wizardMode(advanced bool, settings *config.Config) wizard.Mode {
	if advanced || settings.Wizard.Advanced() {
		return wizard.ModeAdvanced
	}
	return wizard.ModeBasic
}

// checkOverwrite refuses to replace an existing profile unless --force is set
// or the wizard is editing that same file.
func checkOverwrite(out string, f wizardFlags) error {
	if f.force || f.from == out || !profile.Exists(out) {
		return nil
	}
	return fmt.Errorf("%s already exists (use --force to overwrite, or --from %s to edit it)", out, out)
}

// saveResult writes the finished profile. An incomplete profile is still
// saved so the user can finish it by hand.
func saveResult(cfg *profile.Config, out string) error {
	if err := cfg.Validate(); err != nil {
		ui.Warnf("Profile is incomplete: %v", err)
	}
	if err := profile.Save(cfg, out); err != nil {
		return err
	}
	ui.Successf("Profile written to %s", out)
	ui.Info("Check it with: ghprofile check " + out)
	return nil
}

func init() {
	f := wizardCmd.Flags()
	f.BoolVar(&wizFlags.advanced, "advanced", false, "Start in advanced mode (every field)")
	f.StringVarP(&wizFlags.output, "output", "o", "", "Where to write the profile (default from settings, else profile.toml)")
	f.StringVar(&wizFlags.from, "from", "", "Pre-fill the wizard from an existing profile.toml")
	f.BoolVar(&wizFlags.force, "force", false, "Overwrite an existing output file")

	rootCmd.AddCommand(wizardCmd)
}
