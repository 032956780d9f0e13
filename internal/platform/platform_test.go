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

package platform

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"secretgen/pkg/config"
	"secretgen/pkg/generator"
	"secretgen/pkg/random"
)

func TestNewPlatform(t *testing.T) {
	platform, err := New(context.Background(), Config{Settings: config.Defaults()})
	if err != nil {
		t.Fatalf("Failed to create platform: %v", err)
	}
	defer platform.Close()

	if platform.Generator == nil {
		t.Fatal("Generator is nil")
	}
	if platform.Logger == nil {
		t.Error("Logger is nil")
	}
	if !platform.Secure {
		t.Error("default platform should use a secure source")
	}
	if platform.Generator.Bounds() != generator.DefaultBounds {
		t.Errorf("Bounds() = %v, want %v", platform.Generator.Bounds(), generator.DefaultBounds)
	}

	cfg, err := platform.GenerationConfig()
	if err != nil {
		t.Fatalf("GenerationConfig() error: %v", err)
	}
	secret, err := platform.Generator.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(secret.Value) != generator.DefaultLength {
		t.Errorf("len(secret) = %d, want %d", len(secret.Value), generator.DefaultLength)
	}
}

func TestNewPlatformWithValidation(t *testing.T) {
	tests := []struct {
		name        string
		setupConfig func() Config
		errContains string
	}{
		{
			name: "bad_output",
			setupConfig: func() Config {
				s := config.Defaults()
				s.Output = "xml"
				return Config{Settings: s}
			},
			errContains: "output",
		},
		{
			name: "inverted_bounds",
			setupConfig: func() Config {
				s := config.Defaults()
				s.MinLength, s.MaxLength = 64, 16
				return Config{Settings: s}
			},
			errContains: "max_length",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			platform, err := New(context.Background(), tt.setupConfig())
			if err == nil {
				t.Fatal("New() expected error but got none")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("New() error = %v, want error containing %v", err, tt.errContains)
			}
			if platform != nil {
				t.Errorf("New() should return nil platform on error")
			}
		})
	}
}

func TestNewPlatformCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New(ctx, Config{Settings: config.Defaults()}); err == nil {
		t.Error("New() should fail on a canceled context")
	}
}

func TestNewPlatformSeededWarns(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	seed := uint64(42)

	platform, err := New(context.Background(), Config{
		Settings: config.Defaults(),
		Logger:   zap.New(core),
		Seed:     &seed,
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if platform.Secure {
		t.Error("seeded platform must not be reported as secure")
	}
	if _, ok := platform.Source.(*random.Seeded); !ok {
		t.Errorf("Source = %T, want *random.Seeded", platform.Source)
	}
	if logs.FilterMessageSnippet("non-cryptographic").Len() != 1 {
		t.Errorf("expected one insecure source warning, got %d entries", logs.Len())
	}
}

func TestNewPlatformSeededIsReproducible(t *testing.T) {
	seed := uint64(7)
	gen := func() string {
		p, err := New(context.Background(), Config{Settings: config.Defaults(), Seed: &seed})
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}
		cfg, _ := p.GenerationConfig()
		s, err := p.Generator.Generate(cfg)
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
		return s.Value
	}

	if a, b := gen(), gen(); a != b {
		t.Errorf("seeded platforms diverged: %q vs %q", a, b)
	}
}

func TestContextRoundTrip(t *testing.T) {
	if _, err := FromContext(context.Background()); err == nil {
		t.Error("FromContext() on empty context should fail")
	}

	p := &Platform{}
	ctx := WithPlatform(context.Background(), p)

	got, err := FromContext(ctx)
	if err != nil {
		t.Fatalf("FromContext() error: %v", err)
	}
	if got != p {
		t.Error("FromContext() returned a different platform")
	}
	if MustFromContext(ctx) != p {
		t.Error("MustFromContext() returned a different platform")
	}
}

func TestMustFromContextPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustFromContext() should panic without a platform")
		}
	}()
	MustFromContext(context.Background())
}
