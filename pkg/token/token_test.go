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

package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

func parse(t *testing.T, tok, secret, method string) *jwt.RegisteredClaims {
	t.Helper()
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tok, claims,
		func(*jwt.Token) (any, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{method}),
		jwt.WithTimeFunc(func() time.Time { return fixedNow.Add(time.Minute) }),
	)
	require.NoError(t, err)
	return claims
}

func TestSignDefaults(t *testing.T) {
	secret := "k3y-material-for-hmac-signing-tests!"
	s, err := Sign(secret, Options{Now: func() time.Time { return fixedNow }})
	require.NoError(t, err)

	assert.Equal(t, "HS256", s.Method)
	assert.Equal(t, "sample-user", s.Subject)
	assert.Equal(t, fixedNow, s.IssuedAt)
	assert.Equal(t, fixedNow.Add(DefaultTTL), s.ExpiresAt)
	_, err = uuid.Parse(s.ID)
	assert.NoError(t, err)

	claims := parse(t, s.Token, secret, "HS256")
	assert.Equal(t, s.ID, claims.ID)
	assert.Equal(t, "sample-user", claims.Subject)
	assert.Equal(t, fixedNow.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestSignMethods(t *testing.T) {
	secret := "another-secret-value-with-enough-bytes-0123456789"
	for _, m := range []string{"HS256", "hs384", " HS512 "} {
		s, err := Sign(secret, Options{Method: m, Subject: "svc", Issuer: "secretgen", TTL: 5 * time.Minute, Now: func() time.Time { return fixedNow }})
		require.NoError(t, err, m)

		claims := parse(t, s.Token, secret, s.Method)
		assert.Equal(t, "svc", claims.Subject)
		assert.Equal(t, "secretgen", claims.Issuer)
	}
}

func TestSignWrongSecretFailsVerification(t *testing.T) {
	s, err := Sign("right-secret", Options{Now: func() time.Time { return fixedNow }})
	require.NoError(t, err)

	_, err = jwt.Parse(s.Token, func(*jwt.Token) (any, error) { return []byte("wrong-secret"), nil },
		jwt.WithTimeFunc(func() time.Time { return fixedNow }))
	assert.Error(t, err)
}

func TestSignErrors(t *testing.T) {
	_, err := Sign("", Options{})
	assert.Error(t, err)

	_, err = Sign("secret", Options{Method: "RS256"})
	assert.Error(t, err)
}

func TestSignUniqueIDs(t *testing.T) {
	a, err := Sign("secret", Options{})
	require.NoError(t, err)
	b, err := Sign("secret", Options{})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}
