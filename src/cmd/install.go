package cmd

import (
	"os"
	"runtime"

	"github.com/nvmup/nvmup/src/internal/config"
	"github.com/nvmup/nvmup/src/internal/constants"
	"github.com/nvmup/nvmup/src/internal/installer"
	"github.com/nvmup/nvmup/src/internal/ui"
	"github.com/spf13/cobra"
)

var (
	installMethodFlag  string
	installDirFlag     string
	installProfileFlag string
	installSourceFlag  string
	installNodeFlag    string
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install nvm and patch your shell profile",
	Long: `Install nvm into the configured directory and append the activation
snippet to your shell startup files.

The install method is auto-detected: git clone when git is available,
otherwise a direct download of nvm.sh and nvm-exec via curl or wget.

Environment overrides: NVM_DIR, NVM_SOURCE, NVM_METHOD, PROFILE,
NVM_NODE_VERSION, NVM_VERSION. Flags take precedence over the environment.

Examples:
  nvmup install
  nvmup install --method script
  NVM_DIR=/opt/nvm nvmup install`,
	Run: func(cmd *cobra.Command, args []string) {
		if runtime.GOOS == constants.OSWindows {
			ui.Error("nvm does not support Windows; use nvm-windows instead")
			os.Exit(installer.CodeGeneric)
		}

		cfg := resolveConfig()

		if !cfg.ValidMethod() {
			ui.Error("Unknown install method %q (expected git, script, or http)", cfg.Method)
			os.Exit(installer.CodeNoMethod)
		}

		if cfg.TestMode {
			ui.Warning("%s=testing is set, resolving configuration without installing", config.EnvMode)
			ui.Info("Install directory: %s", cfg.InstallDir)
			ui.Info("Pinned release: %s", cfg.Tag)
			return
		}

		ui.Header("Installing nvm %s", cfg.Tag)

		if err := installer.New(cfg).Run(); err != nil {
			ui.Error("%v", err)
			os.Exit(installer.ExitCode(err))
		}
	},
}

// resolveConfig reads the environment once, then applies flag overrides
func resolveConfig() *config.Config {
	cfg := config.FromEnv()

	if installMethodFlag != "" {
		cfg.Method = installMethodFlag
	}
	if installDirFlag != "" {
		cfg.InstallDir = installDirFlag
	}
	if installProfileFlag != "" {
		cfg.Profile = installProfileFlag
	}
	if installSourceFlag != "" {
		cfg.Source = installSourceFlag
	}
	if installNodeFlag != "" {
		cfg.NodeVersion = installNodeFlag
	}

	return cfg
}

func init() {
	rootCmd.AddCommand(installCmd)
	installCmd.Flags().StringVar(&installMethodFlag, "method", "", "Force install method: git, script, or http")
	installCmd.Flags().StringVar(&installDirFlag, "dir", "", "Install directory (default ~/.nvm)")
	installCmd.Flags().StringVar(&installProfileFlag, "profile", "", "Shell profile file to patch first")
	installCmd.Flags().StringVar(&installSourceFlag, "source", "", "Override the source repository or script URL")
	installCmd.Flags().StringVar(&installNodeFlag, "node-version", "", "Node version the snippet activates via nvm use")
}
