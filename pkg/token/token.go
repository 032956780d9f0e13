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

// Package token signs demonstration JWTs with a generated secret so users can
// see the key in use. It only signs; verification belongs to the consuming service.
package token

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTTL mirrors the one hour expiry used in common HS256 examples
const DefaultTTL = time.Hour

// Options controls the sample token
type Options struct {
	Method  string        // HS256 (default), HS384 or HS512
	Subject string        // sub claim; defaults to "sample-user"
	Issuer  string        // iss claim; omitted when empty
	TTL     time.Duration // defaults to DefaultTTL
	Now     func() time.Time
}

// Sample is a signed token plus the claims that went into it
type Sample struct {
	Token     string    `json:"token" yaml:"token"`
	Method    string    `json:"method" yaml:"method"`
	ID        string    `json:"jti" yaml:"jti"`
	Subject   string    `json:"sub" yaml:"sub"`
	IssuedAt  time.Time `json:"iat" yaml:"iat"`
	ExpiresAt time.Time `json:"exp" yaml:"exp"`
}

// SigningMethod resolves an HMAC method name
func SigningMethod(name string) (jwt.SigningMethod, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "HS256":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("unsupported signing method %q (want HS256, HS384 or HS512)", name)
	}
}

// Sign issues a sample JWT signed with secret
func Sign(secret string, opts Options) (Sample, error) {
	if secret == "" {
		return Sample{}, fmt.Errorf("secret must not be empty")
	}

	method, err := SigningMethod(opts.Method)
	if err != nil {
		return Sample{}, err
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	subject := opts.Subject
	if subject == "" {
		subject = "sample-user"
	}

	issued := now().UTC().Truncate(time.Second)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		Issuer:    opts.Issuer,
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(issued.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		return Sample{}, fmt.Errorf("failed to sign sample token: %w", err)
	}

	return Sample{
		Token:     signed,
		Method:    method.Alg(),
		ID:        claims.ID,
		Subject:   subject,
		IssuedAt:  issued,
		ExpiresAt: issued.Add(ttl),
	}, nil
}
