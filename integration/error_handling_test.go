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

package main

import (
	"strings"
	"testing"

	"secretgen/integration/testing_framework"
)

func TestErrorHandling(t *testing.T) {
	env := testing_framework.NewEnvironment(t)
	cli := env.CLI()

	tests := []struct {
		name         string
		args         []string
		errorMessage string
		hint         string
	}{
		{
			name:         "no classes enabled",
			args:         []string{"generate", "--uppercase=false", "--lowercase=false", "--digits=false", "--special=false"},
			errorMessage: "at least one character class must be enabled",
			hint:         "enable at least one character class",
		},
		{
			name:         "length too short for classes",
			args:         []string{"generate", "-l", "3"},
			errorMessage: "length 3 cannot cover 4 enabled classes",
			hint:         "increase the length or disable some character classes",
		},
		{
			name:         "length below range",
			args:         []string{"generate", "-l", "8"},
			errorMessage: "length 8 is outside the allowed range [16, 128]",
			hint:         "choose a length within the configured bounds",
		},
		{
			name:         "length above range",
			args:         []string{"generate", "-l", "129"},
			errorMessage: "length 129 is outside the allowed range [16, 128]",
		},
		{
			name:         "unknown class",
			args:         []string{"generate", "--classes", "emoji"},
			errorMessage: "unknown character class",
		},
		{
			name:         "invalid output format",
			args:         []string{"generate", "-o", "xml"},
			errorMessage: "validation error on output",
			hint:         "check the config file",
		},
		{
			name:         "count out of range",
			args:         []string{"generate", "-n", "0"},
			errorMessage: "validation error on count",
		},
		{
			name:         "unknown subcommand",
			args:         []string{"rotate"},
			errorMessage: "unknown command",
		},
		{
			name:         "unknown flag",
			args:         []string{"generate", "--token", "abc"},
			errorMessage: "unknown flag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := cli.Raw(tt.args...)
			testing_framework.Assert(t, output, err).Failure().Empty()

			stderr := env.Stderr()
			if !strings.Contains(stderr, tt.errorMessage) {
				t.Errorf("expected error containing %q, got: %s", tt.errorMessage, stderr)
			}
			if tt.hint != "" && !strings.Contains(stderr, "Hint: "+tt.hint) {
				t.Errorf("expected hint %q, got: %s", tt.hint, stderr)
			}
		})
	}
}

func TestBoundsFromConfig(t *testing.T) {
	env := testing_framework.NewEnvironment(t)
	cli := env.CLI()

	env.WriteConfig("min_length: 8\nmax_length: 12\nlength: 10\n")

	output, err := cli.Generate()
	testing_framework.Assert(t, output, err).Success().Lines(1)
	if got := len(testing_framework.CleanOutput(string(output))); got != 10 {
		t.Errorf("secret length = %d, want 10", got)
	}

	output, err = cli.Generate("-l", "13")
	testing_framework.Assert(t, output, err).Failure()
	if !strings.Contains(env.Stderr(), "[8, 12]") {
		t.Errorf("expected configured bounds in error, got: %s", env.Stderr())
	}
}
