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

// Package platform provides service composition for the CLI application.
// It wires the randomness source, logger and settings into a generator
// that CLI commands can use.
package platform

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"secretgen/pkg/config"
	"secretgen/pkg/generator"
	"secretgen/pkg/random"
)

// Platform represents the complete service composition for one invocation.
type Platform struct {
	// Generator produces secrets within the configured bounds
	Generator *generator.Generator

	// Settings are the resolved settings the platform was built from
	Settings config.Settings

	// Logger writes diagnostics to stderr
	Logger *zap.Logger

	// Source is the randomness source behind Generator
	Source random.Source

	// Secure reports whether Source is suitable for real secrets
	Secure bool
}

// Config holds configuration needed to create a Platform instance
type Config struct {
	// Settings are validated before use
	Settings config.Settings

	// Logger is optional; a no-op logger is used when nil
	Logger *zap.Logger

	// Seed selects a deterministic, insecure source when non-nil
	Seed *uint64

	// Source overrides the randomness source entirely (tests)
	Source random.Source
}

// New creates a new Platform instance with all services properly wired together.
func New(ctx context.Context, cfg Config) (*Platform, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := cfg.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var src random.Source
	switch {
	case cfg.Source != nil:
		src = cfg.Source
	case cfg.Seed != nil:
		src = random.NewSeeded(*cfg.Seed)
	default:
		src = random.NewCrypto()
	}

	secure := random.IsSecure(src)
	if !secure {
		logger.Warn("using a non-cryptographic randomness source; output is not suitable for real secrets",
			zap.String("source", random.Describe(src)),
		)
	}

	gen := generator.New(src,
		generator.WithBounds(cfg.Settings.Bounds()),
		generator.WithLogger(logger),
	)

	return &Platform{
		Generator: gen,
		Settings:  cfg.Settings,
		Logger:    logger,
		Source:    src,
		Secure:    secure,
	}, nil
}

// GenerationConfig returns the generation config from the platform settings
func (p *Platform) GenerationConfig() (generator.Config, error) {
	return p.Settings.GenerationConfig()
}

// Close flushes the logger. Sync errors on terminals are expected and ignored.
func (p *Platform) Close() error {
	_ = p.Logger.Sync()
	return nil
}
