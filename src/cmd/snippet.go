package cmd

import (
	"fmt"
	"strings"

	"github.com/nvmup/nvmup/src/internal/config"
	"github.com/nvmup/nvmup/src/internal/profile"
	"github.com/spf13/cobra"
)

var snippetCmd = &cobra.Command{
	Use:   "snippet",
	Short: "Print the shell activation snippet",
	Long: `Print the exact text nvmup appends to shell profiles, for pasting
into a profile manually.

Example:
  nvmup snippet >> ~/.config/shell/rc`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.FromEnv()
		fmt.Println(strings.TrimSpace(profile.Snippet(cfg.InstallDir, cfg.NodeVersion)))
	},
}

func init() {
	rootCmd.AddCommand(snippetCmd)
}
