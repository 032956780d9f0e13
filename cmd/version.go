/*
Copyright © 2025 Ian Shuley

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

	"github.com/spf13/cobra"

	"secretgen/pkg/version"
)

func newVersionCmd() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Display version information for secretgen including:
	• Version number
	• Git commit hash
	• Build date
	• Go version used
	• Platform information`,
		Example: `  secretgen version           # Show full version info
  secretgen version --short   # Show short version only
  secretgen --version         # Show full version info (flag)
  secretgen -v                # Show full version info (short flag)`,
		Annotations: map[string]string{skipPlatform: "true"},
		Args:        cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if short, _ := cmd.Flags().GetBool("short"); short {
				fmt.Fprintln(cmd.OutOrStdout(), version.Short())
				return
			}

			fmt.Fprintln(cmd.OutOrStdout(), version.BuildInfo())
		},
	}

	versionCmd.Flags().Bool("short", false, "show short version only")
	return versionCmd
}
