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
	"strings"
	"testing"
)

func TestValidateSecureInput(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		config      ValidationConfig
		wantErr     bool
		errContains string
	}{
		// Signing secret validation tests
		{
			name:   "valid_generated_secret",
			input:  `aB3$%^&*()_+{}|:"<>?~` + "`",
			config: SigningSecretValidationConfig,
		},
		{
			name:        "empty_secret",
			input:       "   ",
			config:      SigningSecretValidationConfig,
			wantErr:     true,
			errContains: "signing secret cannot be empty",
		},
		{
			name:        "secret_control_chars",
			input:       "key\x01material",
			config:      SigningSecretValidationConfig,
			wantErr:     true,
			errContains: "signing secret cannot contain control characters",
		},
		{
			name:        "secret_newline",
			input:       "key\nmaterial",
			config:      SigningSecretValidationConfig,
			wantErr:     true,
			errContains: "signing secret cannot contain control characters",
		},
		{
			name:        "secret_too_long",
			input:       strings.Repeat("x", 4097),
			config:      SigningSecretValidationConfig,
			wantErr:     true,
			errContains: "cannot be longer than 4096 characters",
		},

		// Claim validation tests
		{
			name:   "empty_claim_allowed",
			input:  "",
			config: ClaimValidationConfig,
		},
		{
			name:   "valid_claim",
			input:  "service-account@example.com",
			config: ClaimValidationConfig,
		},
		{
			name:        "claim_delete_char",
			input:       "svc\x7f",
			config:      ClaimValidationConfig,
			wantErr:     true,
			errContains: "claim cannot contain control characters",
		},

		// Custom config
		{
			name:  "allowed_control_chars",
			input: "a\tb",
			config: ValidationConfig{
				EntityType:          "value",
				AllowedControlChars: []rune{0x09},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSecureInput(tt.input, tt.config)

			if tt.wantErr {
				if err == nil {
					t.Errorf("ValidateSecureInput() expected error but got none")
					return
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("ValidateSecureInput() error = %v, want error containing %v", err, tt.errContains)
				}
			} else if err != nil {
				t.Errorf("ValidateSecureInput() unexpected error = %v", err)
			}
		})
	}
}
