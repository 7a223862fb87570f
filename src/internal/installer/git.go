package installer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nvmup/nvmup/src/internal/ui"
)

// installFromGit clones nvm into the install directory, or updates an
// existing clone in place, then checks out the pinned release tag.
func (i *Installer) installFromGit() error {
	dir := i.cfg.InstallDir

	if i.hasExistingClone() {
		ui.Info("nvm is already installed in %s, updating", ui.Highlight(dir))

		spinner := ui.NewSpinner("Fetching updates...")
		spinner.Start()

		if output, err := i.runGit(dir, "fetch"); err != nil {
			spinner.Error("Update failed")
			ui.Debug("git fetch output: %s", string(output))
			return exitErr(CodeUpdateFailed,
				fmt.Errorf("failed to update nvm, run `cd %s && git fetch` to fix it yourself: %w", dir, err))
		}

		spinner.Success("Fetched updates")
	} else {
		ui.Info("Cloning nvm into %s", ui.Highlight(dir))

		if err := os.MkdirAll(dir, 0755); err != nil {
			return exitErr(CodeCloneFailed, fmt.Errorf("failed to create install directory %s: %w", dir, err))
		}

		spinner := ui.NewSpinner("Cloning repository...")
		spinner.Start()

		if output, err := i.runGit("", "clone", i.cfg.GitSource(), dir); err != nil {
			spinner.Error("Clone failed")
			ui.Debug("git clone output: %s", string(output))
			return exitErr(CodeCloneFailed, fmt.Errorf("failed to clone %s: %w", i.cfg.GitSource(), err))
		}

		spinner.Success("Cloned repository")
	}

	if output, err := i.runGit(dir, "checkout", i.cfg.Tag); err != nil {
		ui.Debug("git checkout output: %s", string(output))
		return exitErr(CodeCheckoutFailed, fmt.Errorf("failed to check out %s: %w", i.cfg.Tag, err))
	}

	// Stale default-branch ref is cosmetic only, failures here are ignored
	if _, err := i.runGit(dir, "branch", "-D", "master"); err != nil {
		ui.Debug("git branch -D master failed (ignored): %v", err)
	}

	ui.Success("nvm %s is ready in %s", i.cfg.Tag, dir)
	return nil
}

// hasExistingClone reports whether the install directory already holds a
// git working copy
func (i *Installer) hasExistingClone() bool {
	info, err := os.Stat(filepath.Join(i.cfg.InstallDir, ".git"))
	return err == nil && info.IsDir()
}
