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

// Package generator synthesizes secrets that cover every enabled character class.
package generator

import (
	"fmt"

	"secretgen/pkg/charset"
	secreterrors "secretgen/pkg/errors"
	"secretgen/pkg/random"
)

// Config describes one secret to generate
type Config struct {
	Length  int             `json:"length" yaml:"length"`
	Classes charset.Classes `json:"classes" yaml:"classes"`
}

// Bounds is the inclusive length range a secret must fall within
type Bounds struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// DefaultBounds is the inclusive length range used when none is configured
var DefaultBounds = Bounds{Min: 16, Max: 128}

// DefaultLength is used when no length is configured
const DefaultLength = 32

// Contains reports whether length lies within the bounds
func (b Bounds) Contains(length int) bool {
	return length >= b.Min && length <= b.Max
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%d, %d]", b.Min, b.Max)
}

// Validate checks cfg without consuming randomness. The coverage check runs
// before the range check so an unsatisfiable class set is always reported as such.
func Validate(cfg Config, bounds Bounds) error {
	enabled := cfg.Classes.Count()
	if enabled == 0 {
		return secreterrors.NewNoClassesEnabledError()
	}
	if enabled > cfg.Length {
		return secreterrors.NewLengthTooShortError(cfg.Length, enabled)
	}
	if !bounds.Contains(cfg.Length) {
		return secreterrors.NewLengthOutOfRangeError(cfg.Length, bounds.Min, bounds.Max)
	}
	return nil
}

// Synthesize produces a secret of exactly cfg.Length characters holding at
// least one character of every enabled class and none of any other class.
func Synthesize(cfg Config, bounds Bounds, src random.Source) (string, error) {
	if err := Validate(cfg, bounds); err != nil {
		return "", err
	}

	cs, err := charset.Build(cfg.Classes)
	if err != nil {
		return "", err
	}

	buf := make([]byte, 0, cfg.Length)

	// Guarantee 1 character from each enabled class
	for _, c := range cs.Order {
		buf = append(buf, randomChar(cs.PerClass[c], src))
	}

	// Fill the rest
	for len(buf) < cfg.Length {
		buf = append(buf, randomChar(cs.Pool, src))
	}

	shuffle(buf, src)

	return string(buf), nil
}

func randomChar(alphabet string, src random.Source) byte {
	return alphabet[src.IntN(len(alphabet))]
}

// shuffle is an in-place Fisher-Yates permutation
func shuffle(b []byte, src random.Source) {
	for i := len(b) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		b[i], b[j] = b[j], b[i]
	}
}

// Audit verifies the coverage and exclusion invariants for a secret produced
// from classes. It does not check length.
func Audit(secret string, classes charset.Classes) error {
	seen := make(map[charset.Class]bool)
	for i, r := range secret {
		c, ok := charset.ClassOf(r)
		if !ok {
			return fmt.Errorf("character at offset %d is outside every class", i)
		}
		if !classes.Has(c) {
			return fmt.Errorf("character at offset %d belongs to disabled class %s", i, c)
		}
		seen[c] = true
	}

	for _, c := range classes.Enabled() {
		if !seen[c] {
			return fmt.Errorf("secret has no %s character", c)
		}
	}
	return nil
}
