package installer

import (
	"fmt"

	"github.com/nvmup/nvmup/src/internal/profile"
	"github.com/nvmup/nvmup/src/internal/tui"
	"github.com/nvmup/nvmup/src/internal/ui"
)

// patchProfiles appends the activation snippet to every existing profile
// candidate. A machine with no profile file at all is a soft condition:
// the user gets the snippet to paste manually and the run still succeeds.
func (i *Installer) patchProfiles() {
	snippet := profile.Snippet(i.cfg.InstallDir, i.cfg.NodeVersion)
	existing := profile.Existing(profile.Candidates(i.cfg.Profile))

	if len(existing) == 0 {
		ui.Warning("No shell profile found (looked for .bashrc, .bash_profile, .zshrc, .profile)")
		ui.Info("Create one, or append the following to the profile of your choice:")
		ui.Println("%s", snippet)
		return
	}

	for _, path := range existing {
		has, err := profile.ContainsSnippet(path)
		if err != nil {
			ui.Warning("Could not read %s: %v", path, err)
			continue
		}

		if has {
			ui.Info("%s already sources nvm, skipping", path)
			continue
		}

		if err := profile.Append(path, snippet); err != nil {
			ui.Warning("Could not update %s: %v", path, err)
			continue
		}

		ui.Success("Appended nvm activation snippet to %s", path)
	}
}

// printCompletion prints the final banner and restart reminder
func (i *Installer) printCompletion() {
	banner := fmt.Sprintf("nvm %s installed in %s", i.cfg.Tag, i.cfg.InstallDir)
	fmt.Println(tui.RenderSuccessBox(banner))
	ui.Info("Close and reopen your terminal to start using nvm")
}
