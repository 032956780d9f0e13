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

// Package config provides configuration management for secretgen
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigDirEnv overrides the configuration directory (used by tests)
	ConfigDirEnv = "SECRETGEN_CONFIG_DIR"

	// ConfigFileName is the settings file looked up in the config directory
	ConfigFileName = "config.yaml"

	// DotEnvFile is loaded from the working directory when present
	DotEnvFile = ".env"
)

// GetSecretgenPath returns the path to the .secretgen directory
func GetSecretgenPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".secretgen"), nil
}

// DefaultConfigPath returns the default path for a config file
func DefaultConfigPath(filename string) (string, error) {
	// Check for test override first
	if testDir := os.Getenv(ConfigDirEnv); testDir != "" {
		return filepath.Join(testDir, filename), nil
	}

	configDir, err := GetSecretgenPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, filename), nil
}

// ResolveConfigFile returns the settings file to read. An explicit path wins
// over the default location.
func ResolveConfigFile(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	return DefaultConfigPath(ConfigFileName)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
