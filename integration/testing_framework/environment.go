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


// Package testing_framework runs the secretgen command tree in-process
// against an isolated home, config directory and working directory.
package testing_framework

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"secretgen/cmd"
	"secretgen/pkg/config"
)

// TestEnvironment manages isolated test environments. Each environment gets
// its own temp directory used as HOME, config directory and working
// directory, so settings never leak between tests.
type TestEnvironment struct {
	t          *testing.T
	tempDir    string
	cli        *CLIRunner
	lastStderr string
}

// NewEnvironment creates a new isolated test environment.
// Tests using it must not call t.Parallel because it changes the environment.
func NewEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	tempDir := t.TempDir()

	env := &TestEnvironment{
		t:       t,
		tempDir: tempDir,
	}

	t.Setenv("HOME", tempDir)
	t.Setenv(config.ConfigDirEnv, env.ConfigDir())
	t.Chdir(tempDir)

	// Drop any SECRETGEN_* settings inherited from the developer's shell
	for _, key := range []string{"LENGTH", "UPPERCASE", "LOWERCASE", "DIGITS", "SPECIAL", "CLASSES",
		"COUNT", "OUTPUT", "MIN_LENGTH", "MAX_LENGTH", "LOG_LEVEL", "LOG_FORMAT"} {
		name := config.EnvPrefix + "_" + key
		if _, ok := os.LookupEnv(name); ok {
			t.Setenv(name, "")
			os.Unsetenv(name)
		}
	}

	if err := os.MkdirAll(env.ConfigDir(), 0700); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	env.cli = &CLIRunner{env: env}
	return env
}

// CLI returns a type-safe command runner for this environment
func (e *TestEnvironment) CLI() *CLIRunner {
	return e.cli
}

// TempDir returns the isolated temporary directory path
func (e *TestEnvironment) TempDir() string {
	return e.tempDir
}

// ConfigDir returns the configuration directory path for this environment
func (e *TestEnvironment) ConfigDir() string {
	return filepath.Join(e.tempDir, ".secretgen")
}

// ConfigFile returns the default config file path for this environment
func (e *TestEnvironment) ConfigFile() string {
	return filepath.Join(e.ConfigDir(), config.ConfigFileName)
}

// WriteConfig writes the default config file
func (e *TestEnvironment) WriteConfig(content string) {
	e.t.Helper()
	if err := os.WriteFile(e.ConfigFile(), []byte(content), 0600); err != nil {
		e.t.Fatalf("failed to write config file: %v", err)
	}
}

// WriteDotEnv writes a .env file into the working directory. Variables it
// sets are removed again when the test ends.
func (e *TestEnvironment) WriteDotEnv(content string, keys ...string) {
	e.t.Helper()
	if err := os.WriteFile(filepath.Join(e.tempDir, config.DotEnvFile), []byte(content), 0600); err != nil {
		e.t.Fatalf("failed to write .env: %v", err)
	}
	e.t.Cleanup(func() {
		for _, key := range keys {
			os.Unsetenv(key)
		}
	})
}

// SetEnv sets an environment variable for the rest of the test
func (e *TestEnvironment) SetEnv(key, value string) {
	e.t.Setenv(key, value)
}

// Stderr returns what the last command wrote to stderr
func (e *TestEnvironment) Stderr() string {
	return e.lastStderr
}

// Cleanup performs any necessary cleanup (called via defer)
func (e *TestEnvironment) Cleanup() {
	// Temp directories, environment and working directory are restored by the testing package
}

// RunRawCommand executes a fresh command tree with the given arguments and
// returns stdout. Errors are reported on stderr the same way the binary does.
func (e *TestEnvironment) RunRawCommand(args []string) ([]byte, error) {
	e.t.Helper()

	if args == nil {
		args = []string{}
	}

	root := cmd.NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	if err != nil {
		cmd.PrintError(&stderr, err)
	}

	e.lastStderr = stderr.String()
	return stdout.Bytes(), err
}
