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

// Package entropy estimates the brute-force strength of a generation config.
// The estimate depends only on pool size and length, never on a sample.
package entropy

import (
	"fmt"
	"math"
	"strings"

	secreterrors "secretgen/pkg/errors"
	"secretgen/pkg/generator"
)

// Tier is a qualitative strength label
type Tier int

const (
	Weak Tier = iota
	Moderate
	Strong
)

// Tier thresholds in bits
const (
	WeakBelow  = 64.0
	StrongFrom = 128.0
)

func (t Tier) String() string {
	switch t {
	case Weak:
		return "Weak"
	case Moderate:
		return "Moderate"
	case Strong:
		return "Strong"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

func (t Tier) MarshalText() ([]byte, error) {
	switch t {
	case Weak, Moderate, Strong:
		return []byte(t.String()), nil
	default:
		return nil, fmt.Errorf("unknown tier %d", int(t))
	}
}

func (t *Tier) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "weak":
		*t = Weak
	case "moderate":
		*t = Moderate
	case "strong":
		*t = Strong
	default:
		return fmt.Errorf("unknown tier %q", string(text))
	}
	return nil
}

// Report is the entropy estimate for one configuration
type Report struct {
	Bits     float64 `json:"bits" yaml:"bits"`
	Tier     Tier    `json:"tier" yaml:"tier"`
	PoolSize int     `json:"pool_size" yaml:"pool_size"`
	Length   int     `json:"length" yaml:"length"`
}

// Bits returns length * log2(poolSize). The product form keeps large lengths
// finite where poolSize^length would overflow.
func Bits(poolSize, length int) float64 {
	if poolSize <= 0 || length <= 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(poolSize))
}

// Classify maps bits to a tier: below 64 is Weak, below 128 is Moderate,
// anything else Strong.
func Classify(bits float64) Tier {
	switch {
	case bits < WeakBelow:
		return Weak
	case bits < StrongFrom:
		return Moderate
	default:
		return Strong
	}
}

// Estimate computes the report for cfg. Length bounds are not enforced here.
func Estimate(cfg generator.Config) (Report, error) {
	if cfg.Classes.Empty() {
		return Report{}, secreterrors.NewNoClassesEnabledError()
	}

	pool := cfg.Classes.PoolSize()
	bits := Bits(pool, cfg.Length)

	return Report{
		Bits:     bits,
		Tier:     Classify(bits),
		PoolSize: pool,
		Length:   cfg.Length,
	}, nil
}
