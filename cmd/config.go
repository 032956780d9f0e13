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

	"secretgen/internal/output"
	"secretgen/internal/platform"
	"secretgen/pkg/config"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Display configuration file documentation and the resolved settings",
		Long: `Display documentation for the config.yaml file and available configuration options.

Settings are resolved from, in increasing priority: built-in defaults, the
config file, a .env file in the working directory, SECRETGEN_* environment
variables and command line flags.`,
		Annotations: map[string]string{skipPlatform: "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, _ := cmd.Flags().GetString("config")
			configPath, err := config.ResolveConfigFile(configFile)
			if err != nil {
				return fmt.Errorf("get config path: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), `Configuration File Documentation
================================

Location: %s

The config file is optional. Every key can also be set with a SECRETGEN_*
environment variable (for example SECRETGEN_LENGTH=48) or a .env file.

Available Configuration Options:
---------------------------------

  length      (integer, default 32)   secret length, within [min_length, max_length]
  uppercase   (bool, default true)    include A-Z
  lowercase   (bool, default true)    include a-z
  digits      (bool, default true)    include 0-9
  special     (bool, default true)    include punctuation symbols
  classes     (list)                  enable exactly these classes, overrides the toggles
  count       (integer, default 1)    secrets per invocation, 1-1000
  output      (string, default text)  text, json or yaml
  min_length  (integer, default 16)   lower length bound
  max_length  (integer, default 128)  upper length bound, at most 4096
  log_level   (string, default warn)  debug, info, warn or error
  log_format  (string, default console) console or json

Example config.yaml:
-------------------
length: 48
special: false
output: json

See 'secretgen config show' for the settings currently in effect and
'secretgen config init' to write a starting config file.
`, configPath)
			return nil
		},
	}

	configCmd.AddCommand(newConfigShowCmd(), newConfigPathCmd(), newConfigInitCmd())
	return configCmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := platform.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			format, err := output.ParseFormat(app.Settings.Output)
			if err != nil {
				return err
			}
			return output.New(cmd.OutOrStdout(), format).Value(app.Settings)
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "path",
		Short:       "Print the config file location",
		Annotations: map[string]string{skipPlatform: "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, _ := cmd.Flags().GetString("config")
			configPath, err := config.ResolveConfigFile(configFile)
			if err != nil {
				return err
			}

			status := "not found"
			if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
				status = "exists"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", configPath, status)
			return nil
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a config file with the default settings",
		Example:     "  secretgen config init\n  secretgen config init --force",
		Annotations: map[string]string{skipPlatform: "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, _ := cmd.Flags().GetString("config")
			configPath, err := config.ResolveConfigFile(configFile)
			if err != nil {
				return err
			}

			force, _ := cmd.Flags().GetBool("force")
			if err := config.WriteConfigFileSecurely(configPath, config.Defaults(), force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
			return nil
		},
	}

	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
	return initCmd
}
