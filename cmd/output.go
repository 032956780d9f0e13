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
	"errors"
	"fmt"
	"io"

	"secretgen/internal/output"
	secreterrors "secretgen/pkg/errors"
)

// copyToClipboard is replaced in tests
var copyToClipboard output.Clipboard = output.SystemClipboard

// PrintError writes err and any hints for fixing it
func PrintError(w io.Writer, err error) {
	err = secreterrors.WithHint(err)
	fmt.Fprintf(w, "Error: %v\n", err)
	for _, hint := range secreterrors.Hints(err) {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}

// PrintClipboardWarning reports a failed copy. Clipboard problems never fail the command.
func PrintClipboardWarning(w io.Writer, err error) {
	if errors.Is(err, output.ErrClipboardUnavailable) {
		fmt.Fprintf(w, "Warning: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Warning: failed to copy to clipboard: %v\n", err)
}
