// Package installer implements the nvm bootstrap: it fetches nvm into the
// install directory (git clone/update or file download) and patches the
// user's shell profiles with the activation snippet.
package installer

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/nvmup/nvmup/src/internal/config"
	"github.com/nvmup/nvmup/src/internal/constants"
	"github.com/nvmup/nvmup/src/internal/download"
	"github.com/nvmup/nvmup/src/internal/fetch"
	"github.com/nvmup/nvmup/src/internal/ui"
)

// downloader is the slice of fetch.Client the installer needs
type downloader interface {
	Download(url, destPath string, flags ...fetch.Flag) error
	Tool() fetch.Tool
}

// Installer performs one installation run. It lives for exactly one call
// to Run; every step is a private method on this value.
type Installer struct {
	cfg *config.Config

	// Collaborator seams, swapped out by tests
	lookPath      func(name string) (string, error)
	runGit        func(dir string, args ...string) ([]byte, error)
	newDownloader func() (downloader, error)
	httpDownload  func(url, destPath string) error
	chmod         func(path string, mode os.FileMode) error

	gitPath string
	client  downloader
}

// New creates an installer for the given configuration
func New(cfg *config.Config) *Installer {
	return &Installer{
		cfg:      cfg,
		lookPath: exec.LookPath,
		runGit: func(dir string, args ...string) ([]byte, error) {
			cmd := exec.Command(constants.ToolGit, args...)
			cmd.Dir = dir
			return cmd.CombinedOutput()
		},
		newDownloader: func() (downloader, error) {
			return fetch.Detect()
		},
		httpDownload: download.File,
		chmod:        os.Chmod,
	}
}

// Run executes the whole installation: method resolution, fetch/update,
// profile patching, completion banner. Fatal errors carry exit codes;
// a missing profile is a soft condition and does not fail the run.
func (i *Installer) Run() error {
	method, err := i.resolveMethod()
	if err != nil {
		return err
	}

	ui.Debug("Resolved install method: %s", method)

	switch method {
	case constants.MethodGit:
		err = i.installFromGit()
	case constants.MethodScript:
		err = i.installFromScript()
	case constants.MethodHTTP:
		err = i.installFromHTTP()
	}
	if err != nil {
		return err
	}

	i.patchProfiles()
	i.printCompletion()

	return nil
}

// resolveMethod validates a forced method or probes for available tools.
// Nothing in the install directory is touched before this step succeeds.
func (i *Installer) resolveMethod() (string, error) {
	switch i.cfg.Method {
	case constants.MethodGit:
		path, err := i.lookPath(constants.ToolGit)
		if err != nil {
			return "", exitErr(CodeGitMissing, fmt.Errorf("install method is set to git, but git is not installed"))
		}
		i.gitPath = path
		return constants.MethodGit, nil

	case constants.MethodScript:
		client, err := i.newDownloader()
		if err != nil {
			return "", exitErr(CodeNoDownloader, fmt.Errorf("install method is set to script, but no download tool is available: %w", err))
		}
		i.client = client
		return constants.MethodScript, nil

	case constants.MethodHTTP:
		// Built-in HTTP client, nothing to probe for
		return constants.MethodHTTP, nil

	case "":
		if path, err := i.lookPath(constants.ToolGit); err == nil {
			i.gitPath = path
			return constants.MethodGit, nil
		}
		if client, err := i.newDownloader(); err == nil {
			i.client = client
			return constants.MethodScript, nil
		}
		return "", exitErr(CodeNoMethod, fmt.Errorf("no install method available: install git, curl, or wget and try again"))

	default:
		return "", exitErr(CodeNoMethod, fmt.Errorf("unknown install method %q (expected git, script, or http)", i.cfg.Method))
	}
}
