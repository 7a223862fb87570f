// Package fetch abstracts over the curl and wget download clients so the
// installer can request downloads by intent instead of by tool-specific
// command lines.
package fetch

import (
	"fmt"
	"os/exec"

	"github.com/nvmup/nvmup/src/internal/constants"
	"github.com/nvmup/nvmup/src/internal/ui"
)

// Tool identifies a supported download client
type Tool string

// Supported download clients, in order of preference
const (
	Curl Tool = constants.ToolCurl
	Wget Tool = constants.ToolWget
)

// flagKind enumerates the symbolic download intents
type flagKind int

const (
	kindSilent flagKind = iota
	kindProgressBar
	kindFollowRedirects
	kindHeaderOnly
	kindOutputFile
	kindResumeFromOffset
)

// Flag is a symbolic download intent, translated per tool when the
// command line is built
type Flag struct {
	kind  flagKind
	value string
}

// Silent suppresses all client progress output
func Silent() Flag { return Flag{kind: kindSilent} }

// ProgressBar requests a simple progress bar display
func ProgressBar() Flag { return Flag{kind: kindProgressBar} }

// FollowRedirects requests that HTTP redirects be followed.
// wget follows redirects by default, so it translates to nothing there.
func FollowRedirects() Flag { return Flag{kind: kindFollowRedirects} }

// HeaderOnly fetches response headers without the body
func HeaderOnly() Flag { return Flag{kind: kindHeaderOnly} }

// OutputFile writes the response body to the given path
func OutputFile(path string) Flag { return Flag{kind: kindOutputFile, value: path} }

// ResumeFromOffset continues a partial download where it left off
func ResumeFromOffset() Flag { return Flag{kind: kindResumeFromOffset} }

// translate maps one intent to the concrete argument list for a tool
func translate(tool Tool, f Flag) []string {
	switch tool {
	case Curl:
		switch f.kind {
		case kindSilent:
			return []string{"-s"}
		case kindProgressBar:
			return []string{"--progress-bar"}
		case kindFollowRedirects:
			return []string{"-L"}
		case kindHeaderOnly:
			return []string{"-I"}
		case kindOutputFile:
			return []string{"-o", f.value}
		case kindResumeFromOffset:
			return []string{"-C", "-"}
		}
	case Wget:
		switch f.kind {
		case kindSilent:
			return []string{"-q"}
		case kindProgressBar:
			return []string{"--progress=bar"}
		case kindFollowRedirects:
			// wget follows redirects by default
			return nil
		case kindHeaderOnly:
			return []string{"--server-response"}
		case kindOutputFile:
			return []string{"-O", f.value}
		case kindResumeFromOffset:
			return []string{"-c"}
		}
	}
	return nil
}

// Client invokes one concrete download tool
type Client struct {
	tool Tool
	path string

	// runCmd is swapped out by tests
	runCmd func(name string, args ...string) ([]byte, error)
}

// lookPath is swapped out by tests
var lookPath = exec.LookPath

// Detect probes for a download client, preferring curl over wget
func Detect() (*Client, error) {
	for _, tool := range []Tool{Curl, Wget} {
		if path, err := lookPath(string(tool)); err == nil {
			ui.Debug("Using download client: %s (%s)", tool, path)
			return NewClient(tool, path), nil
		}
	}
	return nil, fmt.Errorf("neither curl nor wget is available on PATH")
}

// NewClient creates a client for a specific tool binary
func NewClient(tool Tool, path string) *Client {
	return &Client{
		tool: tool,
		path: path,
		runCmd: func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).CombinedOutput()
		},
	}
}

// Tool returns which download client this client drives
func (c *Client) Tool() Tool {
	return c.tool
}

// Args builds the full argument list for fetching a URL with the given intents
func (c *Client) Args(url string, flags ...Flag) []string {
	var args []string
	for _, f := range flags {
		args = append(args, translate(c.tool, f)...)
	}
	return append(args, url)
}

// Download fetches a URL into destPath using the selected client
func (c *Client) Download(url, destPath string, flags ...Flag) error {
	args := c.Args(url, append(flags, OutputFile(destPath))...)
	ui.Debug("Running: %s %v", c.path, args)

	output, err := c.runCmd(c.path, args...)
	if err != nil {
		ui.Debug("%s output: %s", c.tool, string(output))
		return fmt.Errorf("%s failed to download %s: %w", c.tool, url, err)
	}

	return nil
}
