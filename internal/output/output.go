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

// Package output renders command results as text, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"secretgen/pkg/charset"
	"secretgen/pkg/entropy"
	"secretgen/pkg/generator"
	"secretgen/pkg/token"
)

// Format selects how results are written
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "", Text:
		return Text, nil
	case JSON, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", name)
	}
}

// Weak red, Moderate amber, Strong green
var tierColors = map[entropy.Tier]lipgloss.Color{
	entropy.Weak:     lipgloss.Color("#ff0000"),
	entropy.Moderate: lipgloss.Color("#ffaa00"),
	entropy.Strong:   lipgloss.Color("#00ff00"),
}

// IsTerminal reports whether w is a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var titler = cases.Title(language.English)

// DisplayName returns the human-readable class name, e.g. "Uppercase"
func DisplayName(c charset.Class) string {
	return titler.String(c.String())
}

// Renderer writes results to one writer in one format
type Renderer struct {
	w      io.Writer
	format Format
	color  bool
	styles *lipgloss.Renderer
}

// New creates a Renderer. Colour is only applied when w is a terminal.
func New(w io.Writer, format Format) *Renderer {
	return &Renderer{
		w:      w,
		format: format,
		color:  IsTerminal(w),
		styles: lipgloss.NewRenderer(w),
	}
}

// Format returns the renderer's format
func (r *Renderer) Format() Format {
	return r.format
}

// Tier renders a tier label, coloured on terminals
func (r *Renderer) Tier(t entropy.Tier) string {
	if !r.color {
		return t.String()
	}
	return r.styles.NewStyle().Bold(true).Foreground(tierColors[t]).Render(t.String())
}

func (r *Renderer) structured(v any) error {
	switch r.format {
	case JSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q is not structured", r.format)
	}
}

type secretsDoc struct {
	Secrets []string        `json:"secrets" yaml:"secrets"`
	Length  int             `json:"length" yaml:"length"`
	Classes []string        `json:"classes" yaml:"classes"`
	Secure  bool            `json:"secure" yaml:"secure"`
	Entropy *entropy.Report `json:"entropy,omitempty" yaml:"entropy,omitempty"`
}

func classNames(cs charset.Classes) []string {
	enabled := cs.Enabled()
	names := make([]string, len(enabled))
	for i, c := range enabled {
		names[i] = c.String()
	}
	return names
}

// Secrets writes generated secrets. Text output is one secret per line,
// followed by an entropy line when report is non-nil.
func (r *Renderer) Secrets(secrets []generator.Secret, secure bool, report *entropy.Report) error {
	if r.format != Text {
		doc := secretsDoc{Secrets: make([]string, len(secrets)), Secure: secure, Entropy: report}
		for i, s := range secrets {
			doc.Secrets[i] = s.Value
		}
		if len(secrets) > 0 {
			doc.Length = secrets[0].Config.Length
			doc.Classes = classNames(secrets[0].Config.Classes)
		}
		return r.structured(doc)
	}

	for _, s := range secrets {
		if _, err := fmt.Fprintln(r.w, s.Value); err != nil {
			return err
		}
	}
	if report != nil {
		_, err := fmt.Fprintf(r.w, "entropy: %.1f bits (%s)\n", report.Bits, r.Tier(report.Tier))
		return err
	}
	return nil
}

type estimateDoc struct {
	entropy.Report `yaml:",inline"`
	Classes        []string `json:"classes" yaml:"classes"`
}

// Estimate writes an entropy report for cfg
func (r *Renderer) Estimate(cfg generator.Config, report entropy.Report) error {
	if r.format != Text {
		return r.structured(estimateDoc{Report: report, Classes: classNames(cfg.Classes)})
	}

	_, err := fmt.Fprintf(r.w,
		"classes:   %s\npool size: %d\nlength:    %d\nentropy:   %.1f bits\nstrength:  %s\n",
		cfg.Classes, report.PoolSize, report.Length, report.Bits, r.Tier(report.Tier))
	return err
}

type classDoc struct {
	Name     string `json:"name" yaml:"name"`
	Size     int    `json:"size" yaml:"size"`
	Alphabet string `json:"alphabet" yaml:"alphabet"`
}

// Classes lists every character class with its alphabet
func (r *Renderer) Classes() error {
	all := charset.All()
	if r.format != Text {
		docs := make([]classDoc, len(all))
		for i, c := range all {
			docs[i] = classDoc{Name: c.String(), Size: c.Size(), Alphabet: c.Alphabet()}
		}
		return r.structured(docs)
	}

	for _, c := range all {
		if _, err := fmt.Fprintf(r.w, "%-10s %3d  %s\n", DisplayName(c), c.Size(), c.Alphabet()); err != nil {
			return err
		}
	}
	return nil
}

type tokenDoc struct {
	Secret    string    `json:"secret,omitempty" yaml:"secret,omitempty"`
	Token     string    `json:"token" yaml:"token"`
	Method    string    `json:"method" yaml:"method"`
	ID        string    `json:"jti" yaml:"jti"`
	Subject   string    `json:"sub" yaml:"sub"`
	IssuedAt  time.Time `json:"iat" yaml:"iat"`
	ExpiresAt time.Time `json:"exp" yaml:"exp"`
}

// Token writes a sample signed token. generatedSecret is shown when non-empty
// so the user can reproduce the signature.
func (r *Renderer) Token(sample token.Sample, generatedSecret string) error {
	if r.format != Text {
		return r.structured(tokenDoc{
			Secret:    generatedSecret,
			Token:     sample.Token,
			Method:    sample.Method,
			ID:        sample.ID,
			Subject:   sample.Subject,
			IssuedAt:  sample.IssuedAt,
			ExpiresAt: sample.ExpiresAt,
		})
	}

	var b strings.Builder
	if generatedSecret != "" {
		fmt.Fprintf(&b, "secret:  %s\n", generatedSecret)
	}
	fmt.Fprintf(&b, "token:   %s\n", sample.Token)
	fmt.Fprintf(&b, "alg:     %s\n", sample.Method)
	fmt.Fprintf(&b, "jti:     %s\n", sample.ID)
	fmt.Fprintf(&b, "sub:     %s\n", sample.Subject)
	fmt.Fprintf(&b, "expires: %s\n", sample.ExpiresAt.Format(time.RFC3339))
	_, err := io.WriteString(r.w, b.String())
	return err
}

// Value writes an arbitrary value. Text falls back to YAML.
func (r *Renderer) Value(v any) error {
	if r.format == Text {
		return (&Renderer{w: r.w, format: YAML}).structured(v)
	}
	return r.structured(v)
}
