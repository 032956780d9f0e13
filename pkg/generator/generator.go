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
	"context"
	"fmt"

	"go.uber.org/zap"

	"secretgen/pkg/random"
)

// Secret is a generated value together with the configuration that produced it
type Secret struct {
	Value  string `json:"value" yaml:"value"`
	Config Config `json:"config" yaml:"config"`
}

// Generator binds a randomness source and length bounds. It keeps no state
// between calls, so it is safe for concurrent use whenever its source is.
type Generator struct {
	src    random.Source
	bounds Bounds
	logger *zap.Logger
}

// Option customises a Generator
type Option func(*Generator)

// WithBounds overrides DefaultBounds
func WithBounds(b Bounds) Option {
	return func(g *Generator) {
		g.bounds = b
	}
}

// WithLogger sets the logger used for generation events
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New creates a Generator. A nil source falls back to random.NewCrypto.
func New(src random.Source, opts ...Option) *Generator {
	if src == nil {
		src = random.NewCrypto()
	}
	g := &Generator{
		src:    src,
		bounds: DefaultBounds,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Bounds returns the length bounds enforced by the generator
func (g *Generator) Bounds() Bounds {
	return g.bounds
}

// Source returns the randomness source the generator draws from
func (g *Generator) Source() random.Source {
	return g.src
}

// Generate synthesizes one secret
func (g *Generator) Generate(cfg Config) (Secret, error) {
	value, err := Synthesize(cfg, g.bounds, g.src)
	if err != nil {
		g.logger.Debug("rejected generation config",
			zap.Int("length", cfg.Length),
			zap.Stringer("classes", cfg.Classes),
			zap.Error(err))
		return Secret{}, err
	}

	g.logger.Debug("generated secret",
		zap.Int("length", cfg.Length),
		zap.Stringer("classes", cfg.Classes),
		zap.String("source", random.Describe(g.src)))

	return Secret{Value: value, Config: cfg}, nil
}

// GenerateBatch synthesizes n secrets in order. Items are produced
// sequentially so a seeded source yields the same batch every time.
func (g *Generator) GenerateBatch(ctx context.Context, cfg Config, n int) ([]Secret, error) {
	if n < 1 {
		return nil, fmt.Errorf("count must be at least 1, got %d", n)
	}
	// Validate once up front so a bad config fails before any draw
	if err := Validate(cfg, g.bounds); err != nil {
		return nil, err
	}

	secrets := make([]Secret, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s, err := g.Generate(cfg)
		if err != nil {
			return nil, err
		}
		secrets = append(secrets, s)
	}
	return secrets, nil
}
