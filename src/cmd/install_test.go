package cmd

import (
	"testing"

	"github.com/nvmup/nvmup/src/internal/config"
)

func TestResolveConfigFlagPrecedence(t *testing.T) {
	t.Setenv(config.EnvInstallDir, "/env/nvm")
	t.Setenv(config.EnvMethod, "git")
	t.Setenv(config.EnvSource, "")
	t.Setenv(config.EnvProfile, "")
	t.Setenv(config.EnvNodeVersion, "")

	installMethodFlag = "script"
	installDirFlag = "/flag/nvm"
	installProfileFlag = ""
	installSourceFlag = ""
	installNodeFlag = ""
	defer func() {
		installMethodFlag = ""
		installDirFlag = ""
	}()

	cfg := resolveConfig()

	if cfg.Method != "script" {
		t.Errorf("Method = %q, want flag value script over env git", cfg.Method)
	}
	if cfg.InstallDir != "/flag/nvm" {
		t.Errorf("InstallDir = %q, want flag value /flag/nvm", cfg.InstallDir)
	}
}

func TestResolveConfigEnvFallback(t *testing.T) {
	t.Setenv(config.EnvInstallDir, "/env/nvm")
	t.Setenv(config.EnvMethod, "")

	installMethodFlag = ""
	installDirFlag = ""
	installProfileFlag = ""
	installSourceFlag = ""
	installNodeFlag = ""

	cfg := resolveConfig()

	if cfg.InstallDir != "/env/nvm" {
		t.Errorf("InstallDir = %q, want env value /env/nvm", cfg.InstallDir)
	}
	if cfg.Method != "" {
		t.Errorf("Method = %q, want auto-detect (empty)", cfg.Method)
	}
}
