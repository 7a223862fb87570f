package installer

import (
	"fmt"
	"os"

	"github.com/nvmup/nvmup/src/internal/fetch"
	"github.com/nvmup/nvmup/src/internal/ui"
)

// installFromScript downloads nvm.sh and the nvm-exec helper with the
// resolved download client and marks the helper executable.
func (i *Installer) installFromScript() error {
	if i.client == nil {
		client, err := i.newDownloader()
		if err != nil {
			return exitErr(CodeNoDownloader, fmt.Errorf("no download tool available: %w", err))
		}
		i.client = client
	}

	if err := os.MkdirAll(i.cfg.InstallDir, 0755); err != nil {
		return fmt.Errorf("failed to create install directory %s: %w", i.cfg.InstallDir, err)
	}

	ui.Info("Downloading nvm %s with %s", i.cfg.Tag, i.client.Tool())

	if err := i.client.Download(i.cfg.ScriptSource(), i.cfg.ScriptPath(), fetch.Silent(), fetch.FollowRedirects()); err != nil {
		return exitErr(CodeScriptDownload, fmt.Errorf("failed to download nvm.sh: %w", err))
	}
	ui.Success("Downloaded %s", i.cfg.ScriptPath())

	if err := i.client.Download(i.cfg.HelperSource(), i.cfg.HelperPath(), fetch.Silent(), fetch.FollowRedirects()); err != nil {
		return exitErr(CodeHelperDownload, fmt.Errorf("failed to download nvm-exec: %w", err))
	}
	ui.Success("Downloaded %s", i.cfg.HelperPath())

	return i.markHelperExecutable()
}

// installFromHTTP downloads the same two files with the built-in HTTP
// client. Never auto-detected, only used when explicitly requested.
func (i *Installer) installFromHTTP() error {
	if err := os.MkdirAll(i.cfg.InstallDir, 0755); err != nil {
		return fmt.Errorf("failed to create install directory %s: %w", i.cfg.InstallDir, err)
	}

	ui.Info("Downloading nvm %s with the built-in HTTP client", i.cfg.Tag)

	if err := i.httpDownload(i.cfg.ScriptSource(), i.cfg.ScriptPath()); err != nil {
		return exitErr(CodeScriptDownload, fmt.Errorf("failed to download nvm.sh: %w", err))
	}

	if err := i.httpDownload(i.cfg.HelperSource(), i.cfg.HelperPath()); err != nil {
		return exitErr(CodeHelperDownload, fmt.Errorf("failed to download nvm-exec: %w", err))
	}

	return i.markHelperExecutable()
}

func (i *Installer) markHelperExecutable() error {
	if err := i.chmod(i.cfg.HelperPath(), 0755); err != nil {
		return exitErr(CodeChmodFailed, fmt.Errorf("failed to mark %s executable: %w", i.cfg.HelperPath(), err))
	}

	ui.Success("nvm %s is ready in %s", i.cfg.Tag, i.cfg.InstallDir)
	return nil
}
