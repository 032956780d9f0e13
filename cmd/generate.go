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
	"go.uber.org/zap"

	"secretgen/internal/output"
	"secretgen/internal/platform"
	"secretgen/pkg/entropy"
	"secretgen/pkg/generator"
	"secretgen/pkg/random"
)

func newGenerateCmd() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate one or more secrets.",
		Long: `Generate random secrets from the enabled character classes.

Every enabled class appears at least once and the result is shuffled uniformly.
Secrets are printed one per line so they can be piped into other tools.`,
		Example: `  secretgen generate
  secretgen gen -l 48 --classes upper,lower,digits
  secretgen generate -n 3 --show-entropy
  secretgen generate -c -s          # copy to clipboard without printing`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}

	addGenerationFlags(generateCmd.Flags())
	addDeliveryFlags(generateCmd.Flags())
	return generateCmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	app, err := platform.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	cfg, err := app.GenerationConfig()
	if err != nil {
		return err
	}

	secrets, err := app.Generator.GenerateBatch(cmd.Context(), cfg, app.Settings.Count)
	if err != nil {
		return err
	}
	if verify, _ := cmd.Flags().GetBool("verify"); verify {
		for i, s := range secrets {
			if err := generator.Audit(s.Value, cfg.Classes); err != nil {
				return fmt.Errorf("secret %d failed verification: %w", i+1, err)
			}
		}
		app.Logger.Debug("verified secrets", zap.Int("count", len(secrets)))
	}

	app.Logger.Info("generated secrets",
		zap.Int("count", len(secrets)),
		zap.Int("length", cfg.Length),
		zap.Stringer("classes", cfg.Classes),
		zap.String("source", random.Describe(app.Source)),
	)

	var report *entropy.Report
	if show, _ := cmd.Flags().GetBool("show-entropy"); show {
		r, err := entropy.Estimate(cfg)
		if err != nil {
			return err
		}
		report = &r
	}

	if clip, _ := cmd.Flags().GetBool("clipboard"); clip {
		if err := copyToClipboard(secrets[len(secrets)-1].Value); err != nil {
			PrintClipboardWarning(cmd.ErrOrStderr(), err)
		}
	}

	if silent, _ := cmd.Flags().GetBool("silent"); silent {
		return nil
	}

	format, err := output.ParseFormat(app.Settings.Output)
	if err != nil {
		return err
	}
	return output.New(cmd.OutOrStdout(), format).Secrets(secrets, app.Secure, report)
}
