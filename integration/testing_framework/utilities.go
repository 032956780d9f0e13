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
)

// AssertContains checks if output contains expected text
func AssertContains(output, expected string) bool {
	return strings.Contains(output, expected)
}

// AssertSecretFormat checks that a secret has the expected length and only
// printable ASCII without spaces
func AssertSecretFormat(secret string, length int) bool {
	if len(secret) != length {
		return false
	}
	for _, r := range secret {
		if r <= ' ' || r > '~' {
			return false
		}
	}
	return true
}

// CleanOutput removes common formatting and whitespace for easier testing
func CleanOutput(output string) string {
	return strings.TrimSpace(output)
}

// SplitLines splits output into clean lines, removing empty lines
func SplitLines(output string) []string {
	lines := strings.Split(output, "\n")
	var cleanLines []string

	for _, line := range lines {
		if cleaned := strings.TrimSpace(line); cleaned != "" {
			cleanLines = append(cleanLines, cleaned)
		}
	}

	return cleanLines
}

// FindLineContaining finds the first line that contains the given text
func FindLineContaining(output, text string) string {
	lines := SplitLines(output)

	for _, line := range lines {
		if strings.Contains(line, text) {
			return line
		}
	}

	return ""
}

// ExtractValue extracts a value after a label (e.g., "token:   abc" -> "abc")
func ExtractValue(line, label string) string {
	if !strings.Contains(line, label) {
		return ""
	}

	parts := strings.SplitN(line, label, 2)
	if len(parts) != 2 {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
