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
	"secretgen/pkg/entropy"
)

func newEstimateCmd() *cobra.Command {
	estimateCmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the strength of a configuration without generating.",
		Long: `Estimate the entropy of secrets produced by a configuration.

Entropy is length * log2(pool size). Below 64 bits is Weak, below 128 bits
is Moderate and anything above is Strong. Length bounds are not enforced so
short or very long configurations can still be compared.`,
		Example: `  secretgen estimate
  secretgen estimate -l 12 --classes special
  secretgen estimate -l 64 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := platform.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			cfg, err := app.GenerationConfig()
			if err != nil {
				return err
			}

			report, err := entropy.Estimate(cfg)
			if err != nil {
				return err
			}

			format, err := output.ParseFormat(app.Settings.Output)
			if err != nil {
				return err
			}
			return output.New(cmd.OutOrStdout(), format).Estimate(cfg, report)
		},
	}

	addGenerationFlags(estimateCmd.Flags())
	return estimateCmd
}
