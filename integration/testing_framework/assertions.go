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

import (
	"strings"
	"testing"

	"secretgen/pkg/charset"
	"secretgen/pkg/generator"
)

// TestAssertions provides fluent test assertions for CLI output
type TestAssertions struct {
	t      *testing.T
	output []byte
	err    error
}

// Assert creates a new assertion helper for CLI command results
func Assert(t *testing.T, output []byte, err error) *TestAssertions {
	return &TestAssertions{
		t:      t,
		output: output,
		err:    err,
	}
}

// Success asserts that the command succeeded (no error)
func (a *TestAssertions) Success() *TestAssertions {
	a.t.Helper()
	if a.err != nil {
		a.t.Errorf("command should have succeeded but failed: %v\n%s", a.err, a.output)
	}
	return a
}

// Failure asserts that the command failed (has error)
func (a *TestAssertions) Failure() *TestAssertions {
	a.t.Helper()
	if a.err == nil {
		a.t.Errorf("command should have failed but succeeded: %s", a.output)
	}
	return a
}

// Contains asserts that output contains the expected text
func (a *TestAssertions) Contains(expected string) *TestAssertions {
	a.t.Helper()
	if !strings.Contains(string(a.output), expected) {
		a.t.Errorf("output should contain %q but got: %s", expected, a.output)
	}
	return a
}

// NotContains asserts that output does not contain the forbidden text
func (a *TestAssertions) NotContains(forbidden string) *TestAssertions {
	a.t.Helper()
	if strings.Contains(string(a.output), forbidden) {
		a.t.Errorf("output should not contain %q but got: %s", forbidden, a.output)
	}
	return a
}

// Equals asserts that output exactly equals the expected value
func (a *TestAssertions) Equals(expected string) *TestAssertions {
	a.t.Helper()
	actual := CleanOutput(string(a.output))
	if actual != expected {
		a.t.Errorf("output should equal %q but got %q", expected, actual)
	}
	return a
}

// Empty asserts that output is empty (after trimming whitespace)
func (a *TestAssertions) Empty() *TestAssertions {
	a.t.Helper()
	if CleanOutput(string(a.output)) != "" {
		a.t.Errorf("output should be empty but got: %s", a.output)
	}
	return a
}

// Lines asserts the number of non-empty output lines
func (a *TestAssertions) Lines(n int) *TestAssertions {
	a.t.Helper()
	if got := len(SplitLines(string(a.output))); got != n {
		a.t.Errorf("output should have %d lines but has %d: %s", n, got, a.output)
	}
	return a
}

// ValidSecrets asserts that every output line is a secret of the given
// length covering exactly the given classes
func (a *TestAssertions) ValidSecrets(length int, classes charset.Classes) *TestAssertions {
	a.t.Helper()
	for _, line := range SplitLines(string(a.output)) {
		if !AssertSecretFormat(line, length) {
			a.t.Errorf("secret %q should be %d printable characters", line, length)
			continue
		}
		if err := generator.Audit(line, classes); err != nil {
			a.t.Errorf("secret %q failed audit: %v", line, err)
		}
	}
	return a
}

// ExtractSecret returns the first output line
func (a *TestAssertions) ExtractSecret() string {
	a.t.Helper()
	lines := SplitLines(string(a.output))
	if len(lines) == 0 {
		a.t.Fatalf("could not extract secret from output: %s", a.output)
	}
	return lines[0]
}

// Output returns the raw output for custom assertions
func (a *TestAssertions) Output() string {
	return string(a.output)
}

// Error returns the error for custom assertions
func (a *TestAssertions) Error() error {
	return a.err
}
