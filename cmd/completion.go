/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/esimdash/esimdash-cli/internal/command"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:                   "completion [bash|zsh|fish|powershell]",
	Short:                 "Generate completion script",
	Long:                  completionUsage(),
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	PersistentPreRunE:     withoutConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletionV2(out, true)
		case "zsh":
			return cmd.Root().GenZshCompletion(out)
		case "fish":
			return cmd.Root().GenFishCompletion(out, true)
		default:
			return cmd.Root().GenPowerShellCompletionWithDesc(out)
		}
	},
}

// withoutConfig replaces the root pre-run for commands that never talk to
// the ESIM service.
func withoutConfig(cmd *cobra.Command, args []string) error {
	return nil
}

// brewPrefix is where Homebrew keeps bash completions on macOS.
func brewPrefix() string {
	prefix := "/usr/local"
	if runtime.GOOS != "darwin" || !command.Exists("brew") {
		return prefix
	}
	out, err := exec.Command("brew", "--prefix").CombinedOutput()
	if err != nil {
		return prefix
	}
	return strings.TrimSpace(string(out))
}

func completionUsage() string {
	return fmt.Sprintf(`To load completions:

Bash:

  $ source <(esimdash completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ esimdash completion bash > /etc/bash_completion.d/esimdash
  # macOS:
  $ esimdash completion bash > %s/etc/bash_completion.d/esimdash

Zsh:

  # If shell completion is not already enabled, execute once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  $ esimdash completion zsh > "${fpath[1]}/_esimdash"

fish:

  $ esimdash completion fish > ~/.config/fish/completions/esimdash.fish

PowerShell:

  PS> esimdash completion powershell | Out-String | Invoke-Expression
`, brewPrefix())
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
