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

package generator

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"secretgen/pkg/charset"
	secreterrors "secretgen/pkg/errors"
	"secretgen/pkg/random"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) IntN(n int) int {
	args := m.Called(n)
	return args.Int(0)
}

// allClassSubsets returns every non-empty combination of classes
func allClassSubsets() []charset.Classes {
	var out []charset.Classes
	for mask := 1; mask < 16; mask++ {
		out = append(out, charset.Classes{
			Uppercase: mask&1 != 0,
			Lowercase: mask&2 != 0,
			Digits:    mask&4 != 0,
			Special:   mask&8 != 0,
		})
	}
	return out
}

func TestSynthesizeLengthAndCoverage(t *testing.T) {
	sources := map[string]random.Source{
		"crypto": random.NewCrypto(),
		"seeded": random.NewSeeded(2025),
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			for _, classes := range allClassSubsets() {
				for _, length := range []int{16, 17, 31, 64, 128} {
					cfg := Config{Length: length, Classes: classes}
					for i := 0; i < 20; i++ {
						secret, err := Synthesize(cfg, DefaultBounds, src)
						require.NoError(t, err, "config %+v", cfg)
						require.Len(t, secret, length)
						require.NoError(t, Audit(secret, classes), "secret %q for %s", secret, classes)
					}
				}
			}
		})
	}
}

func TestSynthesizeDrawSequence(t *testing.T) {
	src := &mockSource{}
	src.On("IntN", mock.Anything).Return(0)

	secret, err := Synthesize(Config{Length: 16, Classes: charset.AllClasses()}, DefaultBounds, src)
	require.NoError(t, err)

	var got []int
	for _, call := range src.Calls {
		got = append(got, call.Arguments.Int(0))
	}

	// One draw per class, fill from the 94 character pool, then Fisher-Yates
	want := []int{26, 26, 10, 32}
	for i := 0; i < 12; i++ {
		want = append(want, 94)
	}
	for i := 15; i > 0; i-- {
		want = append(want, i+1)
	}
	assert.Equal(t, want, got)

	// With every draw at 0 the shuffle rotates the guaranteed characters forward
	assert.Equal(t, "a0!A"+strings.Repeat("A", 12), secret)
}

func TestSynthesizeIdentityShuffle(t *testing.T) {
	// n-1 picks the last character of each alphabet and leaves the buffer in place
	src := random.Func(func(n int) int { return n - 1 })

	secret, err := Synthesize(Config{Length: 16, Classes: charset.AllClasses()}, DefaultBounds, src)
	require.NoError(t, err)
	assert.Equal(t, "Zz9~"+strings.Repeat("~", 12), secret)
}

func TestSynthesizeErrors(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		bounds Bounds
		want   error
	}{
		{
			name:   "no_classes",
			cfg:    Config{Length: 32},
			bounds: DefaultBounds,
			want:   secreterrors.ErrNoClassesEnabled,
		},
		{
			name:   "too_short_for_four_classes",
			cfg:    Config{Length: 3, Classes: charset.AllClasses()},
			bounds: DefaultBounds,
			want:   secreterrors.ErrLengthTooShortForClasses,
		},
		{
			name:   "too_short_for_three_classes",
			cfg:    Config{Length: 2, Classes: charset.Classes{Uppercase: true, Lowercase: true, Digits: true}},
			bounds: DefaultBounds,
			want:   secreterrors.ErrLengthTooShortForClasses,
		},
		{
			name:   "zero_length",
			cfg:    Config{Length: 0, Classes: charset.Classes{Digits: true}},
			bounds: DefaultBounds,
			want:   secreterrors.ErrLengthTooShortForClasses,
		},
		{
			name:   "below_minimum",
			cfg:    Config{Length: 15, Classes: charset.AllClasses()},
			bounds: DefaultBounds,
			want:   secreterrors.ErrLengthOutOfRange,
		},
		{
			name:   "above_maximum",
			cfg:    Config{Length: 129, Classes: charset.AllClasses()},
			bounds: DefaultBounds,
			want:   secreterrors.ErrLengthOutOfRange,
		},
		{
			name:   "coverable_but_below_minimum",
			cfg:    Config{Length: 4, Classes: charset.AllClasses()},
			bounds: DefaultBounds,
			want:   secreterrors.ErrLengthOutOfRange,
		},
		{
			name:   "custom_bounds",
			cfg:    Config{Length: 20, Classes: charset.AllClasses()},
			bounds: Bounds{Min: 8, Max: 12},
			want:   secreterrors.ErrLengthOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Any draw would panic: the mock has no expectations
			src := &mockSource{}

			secret, err := Synthesize(tt.cfg, tt.bounds, src)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
			assert.Empty(t, secret)
			src.AssertNotCalled(t, "IntN", mock.Anything)
		})
	}
}

func TestSynthesizeBoundaryLengths(t *testing.T) {
	src := random.NewCrypto()
	for _, length := range []int{DefaultBounds.Min, DefaultBounds.Max} {
		secret, err := Synthesize(Config{Length: length, Classes: charset.AllClasses()}, DefaultBounds, src)
		require.NoError(t, err)
		assert.Len(t, secret, length)
	}
}

func TestSynthesizeExactCoverage(t *testing.T) {
	// Length equal to the class count: every class appears exactly once
	bounds := Bounds{Min: 1, Max: 128}
	src := random.NewCrypto()

	for i := 0; i < 100; i++ {
		secret, err := Synthesize(Config{Length: 4, Classes: charset.AllClasses()}, bounds, src)
		require.NoError(t, err)
		require.NoError(t, Audit(secret, charset.AllClasses()))
	}
}

func TestSynthesizeSeededReproducible(t *testing.T) {
	cfg := Config{Length: 48, Classes: charset.AllClasses()}

	first, err := Synthesize(cfg, DefaultBounds, random.NewSeeded(12345))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Synthesize(cfg, DefaultBounds, random.NewSeeded(12345))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	other, err := Synthesize(cfg, DefaultBounds, random.NewSeeded(54321))
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestAudit(t *testing.T) {
	all := charset.AllClasses()
	tests := []struct {
		name    string
		secret  string
		classes charset.Classes
		wantErr string
	}{
		{"valid", "Aa0!", all, ""},
		{"missing_digit", "Aa!!", all, "no digits character"},
		{"disabled_class", "abc1", charset.Classes{Lowercase: true}, "disabled class digits"},
		{"outside_every_class", "ab c", charset.Classes{Lowercase: true}, "outside every class"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Audit(tt.secret, tt.classes)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSynthesizeUniformity(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test skipped in short mode")
	}

	const (
		samples = 20000
		length  = 16
	)
	classes := charset.AllClasses()
	cfg := Config{Length: length, Classes: classes}
	src := random.NewCrypto()

	counts := make(map[byte]int)
	upperAt := make([]int, length)

	for i := 0; i < samples; i++ {
		secret, err := Synthesize(cfg, DefaultBounds, src)
		require.NoError(t, err)
		for p := 0; p < length; p++ {
			counts[secret[p]]++
			if charset.Uppercase.Contains(rune(secret[p])) {
				upperAt[p]++
			}
		}
	}

	// Each secret holds one guaranteed character per class plus
	// length-4 uniform pool draws, so a character of a class of size s
	// is expected samples*(1/s + fill/pool) times.
	pool := float64(classes.PoolSize())
	fill := float64(length - classes.Count())
	for _, c := range charset.All() {
		expected := samples * (1/float64(c.Size()) + fill/pool)
		for _, r := range c.Alphabet() {
			got := float64(counts[byte(r)])
			assert.InDeltaf(t, expected, got, expected*0.10,
				"frequency of %q: got %.0f, expected %.0f", r, got, expected)
		}
	}

	// The shuffle spreads the guaranteed uppercase character over every
	// position, so each position sees uppercase at the same rate.
	wantUpper := (1 + fill*26/pool) / length
	for p, n := range upperAt {
		rate := float64(n) / samples
		assert.Falsef(t, math.Abs(rate-wantUpper) > 0.03,
			"position %d uppercase rate %.4f, want %.4f", p, rate, wantUpper)
	}
}
