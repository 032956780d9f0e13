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

package errors

import (
	stderrors "errors"

	cerr "github.com/cockroachdb/errors"
)

// WithHint attaches a stack and a user-facing hint to config and validation
// errors. Other errors are returned unchanged.
func WithHint(err error) error {
	if err == nil {
		return nil
	}

	var cfgErr *ConfigError
	if stderrors.As(err, &cfgErr) {
		return cerr.WithHint(cerr.WithStack(err), hintFor(cfgErr.Code))
	}

	var valErr *ValidationError
	if stderrors.As(err, &valErr) {
		return cerr.WithHint(cerr.WithStack(err), "check the config file, SECRETGEN_* environment variables and flags")
	}

	return err
}

// Hints returns the user-facing hints attached anywhere in the error chain
func Hints(err error) []string {
	return cerr.GetAllHints(err)
}

func hintFor(code ErrorCode) string {
	switch code {
	case CodeNoClassesEnabled:
		return "enable at least one character class (uppercase, lowercase, digits, special)"
	case CodeLengthOutOfRange:
		return "choose a length within the configured bounds"
	case CodeLengthTooShortForClasses:
		return "increase the length or disable some character classes"
	default:
		return "fix the generation configuration and try again"
	}
}
