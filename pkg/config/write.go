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


package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigExists is returned by WriteConfigFileSecurely when the file exists
// and overwrite was not requested
var ErrConfigExists = errors.New("config file already exists")

// EnsureConfigDirectory creates the parent directory of configPath with owner-only permissions
func EnsureConfigDirectory(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0700)
}

// AtomicWriteFile writes data to a file atomically using a temporary file and rename.
// Either the entire write succeeds or the previous file is left untouched.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmpPath := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())

	if err := os.WriteFile(tmpPath, data, perm); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to atomically update file: %w", err)
	}

	return nil
}

// MarshalSettings converts settings to the YAML config file format
func MarshalSettings(s Settings) ([]byte, error) {
	encoded, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal settings: %w", err)
	}
	return encoded, nil
}

// WriteConfigFileSecurely writes settings as YAML with 0600 permissions
func WriteConfigFileSecurely(path string, s Settings, overwrite bool) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if !overwrite && fileExists(path) {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	encoded, err := MarshalSettings(s)
	if err != nil {
		return err
	}
	if err := EnsureConfigDirectory(path); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return AtomicWriteFile(path, encoded, 0600)
}
