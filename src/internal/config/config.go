// Package config manages nvmup configuration resolved from the environment
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nvmup/nvmup/src/internal/constants"
)

// DefaultTag is the nvm release installed when NVM_VERSION is not set
const DefaultTag = "v0.21.0"

// Environment variables consumed by nvmup
const (
	EnvInstallDir  = "NVM_DIR"
	EnvSource      = "NVM_SOURCE"
	EnvMethod      = "NVM_METHOD"
	EnvProfile     = "PROFILE"
	EnvNodeVersion = "NVM_NODE_VERSION"
	EnvTag         = "NVM_VERSION"
	EnvMode        = "NVMUP_ENV"
)

// testingMode is the EnvMode value that disables installation side effects
const testingMode = "testing"

// Config holds all installer settings, read from the environment exactly
// once at startup. Command-line flags may overwrite individual fields
// afterwards; the installer itself never consults the environment.
type Config struct {
	InstallDir  string // where nvm is cloned or downloaded to
	Source      string // explicit source locator override, empty to derive
	Method      string // forced install method, empty to auto-detect
	Profile     string // explicit profile file override
	NodeVersion string // version activated by the snippet's `nvm use` line
	Tag         string // pinned nvm release tag
	TestMode    bool   // resolve configuration only, skip all side effects
}

// FromEnv builds a Config from the process environment
func FromEnv() *Config {
	return &Config{
		InstallDir:  installDirFromEnv(),
		Source:      os.Getenv(EnvSource),
		Method:      os.Getenv(EnvMethod),
		Profile:     os.Getenv(EnvProfile),
		NodeVersion: os.Getenv(EnvNodeVersion),
		Tag:         tagFromEnv(),
		TestMode:    os.Getenv(EnvMode) == testingMode,
	}
}

func installDirFromEnv() string {
	if dir := os.Getenv(EnvInstallDir); dir != "" {
		return dir
	}

	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to a relative directory if home is not available
		return ".nvm"
	}

	return filepath.Join(home, ".nvm")
}

func tagFromEnv() string {
	if tag := os.Getenv(EnvTag); tag != "" {
		return tag
	}
	return DefaultTag
}

// GitSource returns the repository address for the git method.
// The explicit source override takes precedence over the derived value.
func (c *Config) GitSource() string {
	if c.Source != "" {
		return c.Source
	}
	return "https://github.com/nvm-sh/nvm.git"
}

// ScriptSource returns the URL of the main nvm.sh script for the script
// and http methods. The explicit source override takes precedence.
func (c *Config) ScriptSource() string {
	if c.Source != "" {
		return c.Source
	}
	return fmt.Sprintf("https://raw.githubusercontent.com/nvm-sh/nvm/%s/nvm.sh", c.Tag)
}

// HelperSource returns the URL of the nvm-exec helper. It is always
// derived from the pinned tag so that main-script and helper failures
// stay distinguishable even under a source override.
func (c *Config) HelperSource() string {
	return fmt.Sprintf("https://raw.githubusercontent.com/nvm-sh/nvm/%s/nvm-exec", c.Tag)
}

// ScriptPath returns the install path of the main nvm.sh script
func (c *Config) ScriptPath() string {
	return filepath.Join(c.InstallDir, "nvm.sh")
}

// HelperPath returns the install path of the nvm-exec helper
func (c *Config) HelperPath() string {
	return filepath.Join(c.InstallDir, "nvm-exec")
}

// ValidMethod reports whether the forced method names a known strategy
func (c *Config) ValidMethod() bool {
	switch c.Method {
	case "", constants.MethodGit, constants.MethodScript, constants.MethodHTTP:
		return true
	}
	return false
}
