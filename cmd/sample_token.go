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
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"secretgen/internal/logging"
	"secretgen/internal/output"
	"secretgen/internal/platform"
	"secretgen/pkg/token"
)

func newSampleTokenCmd() *cobra.Command {
	sampleTokenCmd := &cobra.Command{
		Use:   "sample-token",
		Short: "Sign a demonstration JWT with a generated or supplied secret.",
		Long: `Sign a sample JWT to show a secret in use as an HMAC signing key.

Without --secret a new secret is generated from the current settings and
printed alongside the token. The token is only signed, never verified.`,
		Example: `  secretgen sample-token
  secretgen sample-token --method HS512 --subject api-client --ttl 15m
  secretgen sample-token --secret "$JWT_SECRET" -o json`,
		Args: cobra.NoArgs,
		RunE: runSampleToken,
	}

	addGenerationFlags(sampleTokenCmd.Flags())
	sampleTokenCmd.Flags().String("secret", "", "sign with this secret instead of generating one")
	sampleTokenCmd.Flags().String("method", "HS256", "signing method: HS256, HS384 or HS512")
	sampleTokenCmd.Flags().String("subject", "", "sub claim (default \"sample-user\")")
	sampleTokenCmd.Flags().String("issuer", "", "iss claim")
	sampleTokenCmd.Flags().Duration("ttl", token.DefaultTTL, "token lifetime")
	return sampleTokenCmd
}

func runSampleToken(cmd *cobra.Command, args []string) error {
	app, err := platform.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	secret, _ := cmd.Flags().GetString("secret")
	method, _ := cmd.Flags().GetString("method")
	subject, _ := cmd.Flags().GetString("subject")
	issuer, _ := cmd.Flags().GetString("issuer")
	ttl, _ := cmd.Flags().GetDuration("ttl")

	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive, got %s", ttl)
	}
	for _, claim := range []string{subject, issuer} {
		if err := ValidateSecureInput(claim, ClaimValidationConfig); err != nil {
			return err
		}
	}

	var generated string
	if cmd.Flags().Changed("secret") {
		if err := ValidateSecureInput(secret, SigningSecretValidationConfig); err != nil {
			return err
		}
	} else {
		cfg, err := app.GenerationConfig()
		if err != nil {
			return err
		}
		s, err := app.Generator.Generate(cfg)
		if err != nil {
			return err
		}
		secret, generated = s.Value, s.Value
	}

	sample, err := token.Sign(secret, token.Options{
		Method:  method,
		Subject: subject,
		Issuer:  issuer,
		TTL:     ttl,
	})
	if err != nil {
		return err
	}
	app.Logger.Debug("signed sample token",
		zap.String("method", sample.Method),
		zap.String("jti", sample.ID),
		logging.Secret("secret", secret),
	)

	format, err := output.ParseFormat(app.Settings.Output)
	if err != nil {
		return err
	}
	return output.New(cmd.OutOrStdout(), format).Token(sample, generated)
}
