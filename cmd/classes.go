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
	"github.com/spf13/cobra"

	"secretgen/internal/output"
	"secretgen/internal/platform"
)

func newClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List the character classes and their alphabets.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := platform.MustFromContext(cmd.Context())
			format, err := output.ParseFormat(app.Settings.Output)
			if err != nil {
				return err
			}
			return output.New(cmd.OutOrStdout(), format).Classes()
		},
	}
}
