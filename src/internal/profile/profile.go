// Package profile locates shell startup files and patches them with the
// nvm activation snippet.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Marker is the substring whose presence in a profile file means the
// activation snippet has already been installed
const Marker = "nvm.sh"

// defaultCandidates are the shell startup files considered for patching,
// in order, relative to the user's home directory
var defaultCandidates = []string{
	".bashrc",
	".bash_profile",
	".zshrc",
	".profile",
}

// Candidates returns the ordered list of profile files to consider.
// An explicit override path is placed first; the fixed defaults follow.
func Candidates(override string) []string {
	var candidates []string
	if override != "" {
		candidates = append(candidates, override)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return candidates
	}

	for _, name := range defaultCandidates {
		path := filepath.Join(home, name)
		if path != override {
			candidates = append(candidates, path)
		}
	}

	return candidates
}

// Existing filters candidates down to the files that are present
func Existing(candidates []string) []string {
	var existing []string
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			existing = append(existing, path)
		}
	}
	return existing
}

// Snippet builds the activation text block appended to profile files.
// nodeVersion is optional; when empty the `nvm use` line is omitted.
func Snippet(installDir, nodeVersion string) string {
	var b strings.Builder

	b.WriteString("\n# Added by nvmup\n")
	fmt.Fprintf(&b, "export NVM_DIR=%q\n", installDir)
	b.WriteString(`[ -s "$NVM_DIR/nvm.sh" ] && . "$NVM_DIR/nvm.sh"  # This loads nvm` + "\n")
	if nodeVersion != "" {
		fmt.Fprintf(&b, "nvm use %s\n", nodeVersion)
	}

	return b.String()
}

// ContainsSnippet reports whether the file already carries the marker
func ContainsSnippet(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	return strings.Contains(string(data), Marker), nil
}

// Append appends the snippet to an existing profile file
func Append(path, snippet string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open profile %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(snippet); err != nil {
		return fmt.Errorf("failed to write to profile %s: %w", path, err)
	}

	return nil
}
