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


package testing_framework

// CLIRunner provides a fluent interface for running secretgen commands
// in the test environment.
type CLIRunner struct {
	env *TestEnvironment
}

// ConfigCommands provides the config subcommands
type ConfigCommands struct {
	cli *CLIRunner
}

func (c *CLIRunner) run(args []string) ([]byte, error) {
	return c.env.RunRawCommand(args)
}

// Generate runs the generate command with extra flags
func (c *CLIRunner) Generate(flags ...string) ([]byte, error) {
	return c.run(append([]string{"generate"}, flags...))
}

// GenerateWithClipboard generates a secret and copies it to the clipboard
func (c *CLIRunner) GenerateWithClipboard(flags ...string) ([]byte, error) {
	return c.Generate(append(flags, "--clipboard")...)
}

// GenerateSilent generates a secret without printing to stdout
func (c *CLIRunner) GenerateSilent(flags ...string) ([]byte, error) {
	return c.Generate(append(flags, "--silent")...)
}

// GenerateWithClipboardSilent copies a generated secret to the clipboard and suppresses stdout
func (c *CLIRunner) GenerateWithClipboardSilent(flags ...string) ([]byte, error) {
	return c.Generate(append(flags, "--clipboard", "--silent")...)
}

// Estimate runs the estimate command
func (c *CLIRunner) Estimate(flags ...string) ([]byte, error) {
	return c.run(append([]string{"estimate"}, flags...))
}

// Classes lists the character classes
func (c *CLIRunner) Classes(flags ...string) ([]byte, error) {
	return c.run(append([]string{"classes"}, flags...))
}

// SampleToken signs a demonstration token
func (c *CLIRunner) SampleToken(flags ...string) ([]byte, error) {
	return c.run(append([]string{"sample-token"}, flags...))
}

// Version shows version information
func (c *CLIRunner) Version(flags ...string) ([]byte, error) {
	return c.run(append([]string{"version"}, flags...))
}

// Config returns the config subcommands
func (c *CLIRunner) Config() *ConfigCommands {
	return &ConfigCommands{cli: c}
}

// Raw executes a raw command with the given arguments
func (c *CLIRunner) Raw(args ...string) ([]byte, error) {
	return c.run(args)
}

// Show prints the resolved settings
func (cc *ConfigCommands) Show(flags ...string) ([]byte, error) {
	return cc.cli.run(append([]string{"config", "show"}, flags...))
}

// Path prints the config file location
func (cc *ConfigCommands) Path() ([]byte, error) {
	return cc.cli.run([]string{"config", "path"})
}

// Init writes a default config file
func (cc *ConfigCommands) Init(flags ...string) ([]byte, error) {
	return cc.cli.run(append([]string{"config", "init"}, flags...))
}
