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
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"secretgen/internal/logging"
	"secretgen/internal/platform"
	"secretgen/pkg/config"
	"secretgen/pkg/generator"
	"secretgen/pkg/version"
)

// skipPlatform marks commands that run without loading settings
const skipPlatform = "skip-platform"

// NewRootCmd builds a fresh command tree. Running without a subcommand
// generates secrets.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "secretgen",
		Short: "Generate strong random secrets for signing keys and API tokens.",
		Long: `secretgen generates random secrets such as JWT signing keys and API tokens.

Features:
	• Cryptographically secure randomness (crypto/rand) by default
	• Every enabled character class is guaranteed to appear
	• Uniform, unbiased shuffle of the final secret
	• Entropy estimate with Weak / Moderate / Strong rating
	• Sample HS256/HS384/HS512 token signed with the generated key
	• Settings from ~/.secretgen/config.yaml, .env, SECRETGEN_* variables or flags

Running secretgen without a subcommand is the same as 'secretgen generate'.`,
		Example: `  secretgen                         # 32 characters, all classes
  secretgen -l 64 --special=false   # 64 characters without symbols
  secretgen --classes upper,digits  # only uppercase letters and digits
  secretgen -n 5 -o json            # five secrets as JSON`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initializePlatform,
		PersistentPostRun: closePlatform,
		RunE:              handleRootCommand,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default ~/.secretgen/config.yaml)")
	flags.StringP("output", "o", "text", "output format: text, json or yaml")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.String("log-format", "console", "log format: console or json")

	rootCmd.Flags().BoolP("version", "v", false, "show version information")
	addGenerationFlags(rootCmd.Flags())
	addDeliveryFlags(rootCmd.Flags())

	rootCmd.AddCommand(
		newGenerateCmd(),
		newEstimateCmd(),
		newClassesCmd(),
		newSampleTokenCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the command tree and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		PrintError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

// addGenerationFlags registers the flags that describe a generation config
func addGenerationFlags(fs *pflag.FlagSet) {
	d := config.Defaults()
	fs.IntP("length", "l", d.Length, fmt.Sprintf("secret length (%s)", generator.DefaultBounds))
	fs.Bool("uppercase", d.Uppercase, "include uppercase letters A-Z")
	fs.Bool("lowercase", d.Lowercase, "include lowercase letters a-z")
	fs.Bool("digits", d.Digits, "include digits 0-9")
	fs.Bool("special", d.Special, "include special characters")
	fs.StringSlice("classes", nil, "enable exactly these classes (upper,lower,digits,special)")
}

// addDeliveryFlags registers the flags that control how generated secrets are delivered
func addDeliveryFlags(fs *pflag.FlagSet) {
	fs.IntP("count", "n", 1, "number of secrets to generate")
	fs.Uint64("seed", 0, "deterministic seed (INSECURE, for tests and demos only)")
	fs.BoolP("clipboard", "c", false, "copy the secret to the clipboard")
	fs.BoolP("silent", "s", false, "do not print secrets to stdout")
	fs.Bool("show-entropy", false, "print the entropy estimate after the secrets")
	fs.Bool("verify", false, "check every secret covers the enabled classes before printing")
}

// initializePlatform sets up platform context for all CLI commands.
// This runs before every command to ensure the generator is available.
func initializePlatform(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[skipPlatform] == "true" {
		return nil
	}
	if versionFlag, _ := cmd.Flags().GetBool("version"); versionFlag {
		return nil
	}

	configFile, _ := cmd.Flags().GetString("config")
	loader := config.NewLoader(configFile)
	if err := loader.BindFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	settings, err := loader.Load()
	if err != nil {
		return err
	}

	logger, err := logging.NewWithWriter(cmd.ErrOrStderr(), settings.LogLevel, settings.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	if used := loader.UsedConfigFile(); used != "" {
		logger.Debug("loaded config file", zap.String("path", used))
	}

	cfg := platform.Config{Settings: settings, Logger: logger}
	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		seed, err := cmd.Flags().GetUint64("seed")
		if err != nil {
			return err
		}
		cfg.Seed = &seed
	}

	app, err := platform.New(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create platform: %w", err)
	}

	cmd.SetContext(platform.WithPlatform(cmd.Context(), app))
	return nil
}

func closePlatform(cmd *cobra.Command, args []string) {
	if app, err := platform.FromContext(cmd.Context()); err == nil {
		_ = app.Close()
	}
}

// handleRootCommand is called when secretgen is run without any subcommands
func handleRootCommand(cmd *cobra.Command, args []string) error {
	if versionFlag, _ := cmd.Flags().GetBool("version"); versionFlag {
		fmt.Fprintln(cmd.OutOrStdout(), version.BuildInfo())
		return nil
	}
	return runGenerate(cmd, args)
}
