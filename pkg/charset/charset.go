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

// Package charset defines the character classes a secret can draw from and
// builds the sampling pool for an enabled set of classes.
package charset

import (
	"fmt"
	"strings"

	secreterrors "secretgen/pkg/errors"
)

// Class is one of the four recognised character classes
type Class int

const (
	Uppercase Class = iota
	Lowercase
	Digit
	Special
)

// Alphabets are process-wide constants. Special holds the 32 printable ASCII
// punctuation symbols, so all four together cover printable non-space ASCII.
const (
	UppercaseAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseAlphabet = "abcdefghijklmnopqrstuvwxyz"
	DigitAlphabet     = "0123456789"
	SpecialAlphabet   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// canonicalOrder is the order alphabets are concatenated and drawn in
var canonicalOrder = [...]Class{Uppercase, Lowercase, Digit, Special}

// All returns every class in canonical order
func All() []Class {
	out := make([]Class, len(canonicalOrder))
	copy(out, canonicalOrder[:])
	return out
}

// Alphabet returns the fixed alphabet of the class
func (c Class) Alphabet() string {
	switch c {
	case Uppercase:
		return UppercaseAlphabet
	case Lowercase:
		return LowercaseAlphabet
	case Digit:
		return DigitAlphabet
	case Special:
		return SpecialAlphabet
	default:
		return ""
	}
}

// Size returns the number of characters in the class alphabet
func (c Class) Size() int {
	return len(c.Alphabet())
}

// Contains reports whether r belongs to the class alphabet
func (c Class) Contains(r rune) bool {
	return r < 128 && strings.ContainsRune(c.Alphabet(), r)
}

func (c Class) String() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Digit:
		return "digits"
	case Special:
		return "special"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// ClassOf returns the class a character belongs to. ok is false for
// characters outside every alphabet.
func ClassOf(r rune) (Class, bool) {
	for _, c := range canonicalOrder {
		if c.Contains(r) {
			return c, true
		}
	}
	return 0, false
}

// Charset is the output of Build: the concatenated sampling pool plus the
// per-class alphabets used for the coverage guarantee.
type Charset struct {
	Pool     string
	PerClass map[Class]string
	// Order lists the enabled classes in canonical order
	Order []Class
}

// Build concatenates the alphabets of the enabled classes in canonical order
func Build(classes Classes) (Charset, error) {
	enabled := classes.Enabled()
	if len(enabled) == 0 {
		return Charset{}, secreterrors.NewNoClassesEnabledError()
	}

	var pool strings.Builder
	pool.Grow(classes.PoolSize())
	perClass := make(map[Class]string, len(enabled))

	for _, c := range enabled {
		alphabet := c.Alphabet()
		pool.WriteString(alphabet)
		perClass[c] = alphabet
	}

	return Charset{
		Pool:     pool.String(),
		PerClass: perClass,
		Order:    enabled,
	}, nil
}
