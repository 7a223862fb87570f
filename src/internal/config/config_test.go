package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, env := range []string{EnvInstallDir, EnvSource, EnvMethod, EnvProfile, EnvNodeVersion, EnvTag, EnvMode} {
		t.Setenv(env, "")
	}

	cfg := FromEnv()

	if !strings.HasSuffix(cfg.InstallDir, ".nvm") {
		t.Errorf("InstallDir = %q, want path ending in .nvm", cfg.InstallDir)
	}
	if cfg.Tag != DefaultTag {
		t.Errorf("Tag = %q, want %q", cfg.Tag, DefaultTag)
	}
	if cfg.Method != "" {
		t.Errorf("Method = %q, want auto-detect (empty)", cfg.Method)
	}
	if cfg.NodeVersion != "" {
		t.Errorf("NodeVersion = %q, want empty default", cfg.NodeVersion)
	}
	if cfg.TestMode {
		t.Error("TestMode = true, want false by default")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvInstallDir, "/opt/nvm")
	t.Setenv(EnvSource, "https://example.com/nvm.git")
	t.Setenv(EnvMethod, "script")
	t.Setenv(EnvProfile, "/home/user/.profile")
	t.Setenv(EnvNodeVersion, "v0.10.32")
	t.Setenv(EnvTag, "v0.22.0")
	t.Setenv(EnvMode, "testing")

	cfg := FromEnv()

	if cfg.InstallDir != "/opt/nvm" {
		t.Errorf("InstallDir = %q, want /opt/nvm", cfg.InstallDir)
	}
	if cfg.Source != "https://example.com/nvm.git" {
		t.Errorf("Source = %q", cfg.Source)
	}
	if cfg.Method != "script" {
		t.Errorf("Method = %q, want script", cfg.Method)
	}
	if cfg.Profile != "/home/user/.profile" {
		t.Errorf("Profile = %q", cfg.Profile)
	}
	if cfg.NodeVersion != "v0.10.32" {
		t.Errorf("NodeVersion = %q", cfg.NodeVersion)
	}
	if cfg.Tag != "v0.22.0" {
		t.Errorf("Tag = %q, want v0.22.0", cfg.Tag)
	}
	if !cfg.TestMode {
		t.Error("TestMode = false, want true when NVMUP_ENV=testing")
	}
}

func TestSourceLocators(t *testing.T) {
	cfg := &Config{InstallDir: "/opt/nvm", Tag: "v0.21.0"}

	if got := cfg.GitSource(); got != "https://github.com/nvm-sh/nvm.git" {
		t.Errorf("GitSource() = %q", got)
	}
	if got := cfg.ScriptSource(); got != "https://raw.githubusercontent.com/nvm-sh/nvm/v0.21.0/nvm.sh" {
		t.Errorf("ScriptSource() = %q", got)
	}
	if got := cfg.HelperSource(); got != "https://raw.githubusercontent.com/nvm-sh/nvm/v0.21.0/nvm-exec" {
		t.Errorf("HelperSource() = %q", got)
	}

	// Explicit override wins for the primary locator only
	cfg.Source = "https://mirror.local/nvm.sh"
	if got := cfg.GitSource(); got != cfg.Source {
		t.Errorf("GitSource() with override = %q, want %q", got, cfg.Source)
	}
	if got := cfg.ScriptSource(); got != cfg.Source {
		t.Errorf("ScriptSource() with override = %q, want %q", got, cfg.Source)
	}
	if got := cfg.HelperSource(); !strings.Contains(got, "nvm-exec") {
		t.Errorf("HelperSource() must stay derived, got %q", got)
	}
}

func TestInstallPaths(t *testing.T) {
	cfg := &Config{InstallDir: "/opt/nvm", Tag: DefaultTag}

	if got := cfg.ScriptPath(); got != filepath.Join("/opt/nvm", "nvm.sh") {
		t.Errorf("ScriptPath() = %q", got)
	}
	if got := cfg.HelperPath(); got != filepath.Join("/opt/nvm", "nvm-exec") {
		t.Errorf("HelperPath() = %q", got)
	}
}

func TestValidMethod(t *testing.T) {
	tests := []struct {
		method string
		want   bool
	}{
		{method: "", want: true},
		{method: "git", want: true},
		{method: "script", want: true},
		{method: "http", want: true},
		{method: "ftp", want: false},
		{method: "GIT", want: false},
	}

	for _, tt := range tests {
		t.Run("method "+tt.method, func(t *testing.T) {
			cfg := &Config{Method: tt.method}
			if got := cfg.ValidMethod(); got != tt.want {
				t.Errorf("ValidMethod() with %q = %v, want %v", tt.method, got, tt.want)
			}
		})
	}
}
