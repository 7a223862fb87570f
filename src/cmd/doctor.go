package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/nvmup/nvmup/src/internal/config"
	"github.com/nvmup/nvmup/src/internal/constants"
	"github.com/nvmup/nvmup/src/internal/profile"
	"github.com/nvmup/nvmup/src/internal/tui"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check prerequisites and current install state",
	Long: `Inspect the environment without changing anything: which download
tools are available, whether nvm is already installed, and which shell
profiles exist and already source nvm.

Example:
  nvmup doctor`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.FromEnv()

		tools := tui.NewTable("Tool", "Status")
		tools.SetTitle("External Tools")
		for _, tool := range []string{constants.ToolGit, constants.ToolCurl, constants.ToolWget} {
			if path, err := exec.LookPath(tool); err == nil {
				tools.AddRow(tool, tui.GetCheckMark()+" "+tui.RenderMuted(path))
			} else {
				tools.AddRow(tool, tui.GetCrossMark()+" not found")
			}
		}
		fmt.Println(tools.Render())
		fmt.Println()

		state := tui.NewTable("Install Directory", "State")
		state.SetTitle("nvm")
		state.AddRow(cfg.InstallDir, installState(cfg))
		fmt.Println(state.Render())
		fmt.Println()

		profiles := tui.NewTable("Profile", "State")
		profiles.SetTitle("Shell Profiles")
		for _, path := range profile.Existing(profile.Candidates(cfg.Profile)) {
			if has, err := profile.ContainsSnippet(path); err == nil && has {
				profiles.AddRow(path, tui.GetCheckMark()+" sources nvm")
			} else {
				profiles.AddRow(path, tui.GetCrossMark()+" not patched")
			}
		}
		if profiles.RowCount() == 0 {
			profiles.AddRow(tui.RenderMuted("none found"), "")
		}
		fmt.Println(profiles.Render())
	},
}

// installState describes what currently occupies the install directory
func installState(cfg *config.Config) string {
	if info, err := os.Stat(filepath.Join(cfg.InstallDir, ".git")); err == nil && info.IsDir() {
		return "git checkout"
	}
	if _, err := os.Stat(cfg.ScriptPath()); err == nil {
		return "downloaded files"
	}
	return "not installed"
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
