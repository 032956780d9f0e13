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
	"strings"
	"unicode/utf8"
)

// ValidationConfig controls what validation rules are applied to an input string
type ValidationConfig struct {
	EntityType          string // "signing secret", "subject", etc. for error messages
	AllowEmpty          bool   // Whether empty strings are allowed
	AllowControlChars   bool   // Whether control characters are allowed
	AllowedControlChars []rune // Specific control chars that are allowed (e.g., tab)
	MaxLength           int    // Maximum length in characters, 0 for no limit
}

// ValidateSecureInput performs validation on user supplied strings before
// they are used as key material or token claims
func ValidateSecureInput(input string, config ValidationConfig) error {
	if err := validateEmpty(input, config); err != nil {
		return err
	}

	if !config.AllowControlChars {
		if err := validateControlCharacters(input, config); err != nil {
			return err
		}
	}

	if config.MaxLength > 0 && utf8.RuneCountInString(input) > config.MaxLength {
		return fmt.Errorf("%s cannot be longer than %d characters", config.EntityType, config.MaxLength)
	}

	return nil
}

func validateEmpty(input string, config ValidationConfig) error {
	if !config.AllowEmpty && strings.TrimSpace(input) == "" {
		return fmt.Errorf("%s cannot be empty", config.EntityType)
	}
	return nil
}

func validateControlCharacters(input string, config ValidationConfig) error {
	allowedMap := make(map[rune]bool)
	for _, r := range config.AllowedControlChars {
		allowedMap[r] = true
	}

	for _, r := range input {
		isControlChar := r < 32 || r == 127
		if isControlChar && !allowedMap[r] {
			return fmt.Errorf("%s cannot contain control characters", config.EntityType)
		}
	}
	return nil
}

// SigningSecretValidationConfig applies to --secret. Secrets are expected to
// contain punctuation, so only control characters are rejected.
var SigningSecretValidationConfig = ValidationConfig{
	EntityType:        "signing secret",
	AllowEmpty:        false,
	AllowControlChars: false,
	MaxLength:         4096,
}

// ClaimValidationConfig applies to --subject and --issuer
var ClaimValidationConfig = ValidationConfig{
	EntityType:        "claim",
	AllowEmpty:        true,
	AllowControlChars: false,
	MaxLength:         256,
}
