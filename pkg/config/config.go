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

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"secretgen/pkg/charset"
	secreterrors "secretgen/pkg/errors"
	"secretgen/pkg/generator"
)

// EnvPrefix namespaces environment overrides, e.g. SECRETGEN_LENGTH
const EnvPrefix = "SECRETGEN"

// Settings is the resolved configuration of one invocation
type Settings struct {
	Length    int      `mapstructure:"length" json:"length" yaml:"length"`
	Uppercase bool     `mapstructure:"uppercase" json:"uppercase" yaml:"uppercase"`
	Lowercase bool     `mapstructure:"lowercase" json:"lowercase" yaml:"lowercase"`
	Digits    bool     `mapstructure:"digits" json:"digits" yaml:"digits"`
	Special   bool     `mapstructure:"special" json:"special" yaml:"special"`
	Classes   []string `mapstructure:"classes" json:"classes,omitempty" yaml:"classes,omitempty"`
	Count     int      `mapstructure:"count" json:"count" yaml:"count" validate:"min=1,max=1000"`
	Output    string   `mapstructure:"output" json:"output" yaml:"output" validate:"oneof=text json yaml"`
	MinLength int      `mapstructure:"min_length" json:"min_length" yaml:"min_length" validate:"min=1"`
	MaxLength int      `mapstructure:"max_length" json:"max_length" yaml:"max_length" validate:"max=4096,gtefield=MinLength"`
	LogLevel  string   `mapstructure:"log_level" json:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string   `mapstructure:"log_format" json:"log_format" yaml:"log_format" validate:"oneof=console json"`
}

// Defaults are 32 characters with every class enabled
func Defaults() Settings {
	return Settings{
		Length:    generator.DefaultLength,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Special:   true,
		Count:     1,
		Output:    "text",
		MinLength: generator.DefaultBounds.Min,
		MaxLength: generator.DefaultBounds.Max,
		LogLevel:  "warn",
		LogFormat: "console",
	}
}

// settingKeys lists every key Settings understands, in flag form
var settingKeys = map[string]bool{
	"length": true, "uppercase": true, "lowercase": true, "digits": true, "special": true,
	"classes": true, "count": true, "output": true, "min_length": true, "max_length": true,
	"log_level": true, "log_format": true,
}

// ClassSet returns the enabled classes. A non-empty Classes list replaces the toggles.
func (s Settings) ClassSet() (charset.Classes, error) {
	if len(s.Classes) > 0 {
		return charset.ParseClasses(s.Classes)
	}
	return charset.Classes{
		Uppercase: s.Uppercase,
		Lowercase: s.Lowercase,
		Digits:    s.Digits,
		Special:   s.Special,
	}, nil
}

// GenerationConfig converts settings to a generator config
func (s Settings) GenerationConfig() (generator.Config, error) {
	classes, err := s.ClassSet()
	if err != nil {
		return generator.Config{}, secreterrors.NewValidationError("classes", err.Error())
	}
	return generator.Config{Length: s.Length, Classes: classes}, nil
}

// Bounds returns the configured length bounds
func (s Settings) Bounds() generator.Bounds {
	return generator.Bounds{Min: s.MinLength, Max: s.MaxLength}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks settings that are not generation parameters. Length and
// class coverage are checked by the generator so they keep their own errors.
func (s Settings) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var result *multierror.Error
	for _, fe := range fieldErrs {
		result = multierror.Append(result, secreterrors.NewValidationError(
			toKey(fe.Field()),
			describeRule(fe),
		))
	}
	return result.ErrorOrNil()
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("must be one of %s, got %v", fe.Param(), fe.Value())
	case "min":
		return fmt.Sprintf("must be at least %s, got %v", fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("must be at most %s, got %v", fe.Param(), fe.Value())
	case "gtefield":
		return fmt.Sprintf("must not be less than %s", toKey(fe.Param()))
	default:
		return fmt.Sprintf("failed %q rule", fe.Tag())
	}
}

// toKey converts a Go field name to its settings key (MinLength -> min_length)
func toKey(field string) string {
	var b strings.Builder
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Loader resolves Settings from defaults, a config file, .env, the
// environment and command line flags, in increasing priority.
type Loader struct {
	v          *viper.Viper
	configFile string
	dotEnv     string
}

// NewLoader creates a Loader. configFile may be empty to use the default location.
func NewLoader(configFile string) *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("length", d.Length)
	v.SetDefault("uppercase", d.Uppercase)
	v.SetDefault("lowercase", d.Lowercase)
	v.SetDefault("digits", d.Digits)
	v.SetDefault("special", d.Special)
	v.SetDefault("classes", []string{})
	v.SetDefault("count", d.Count)
	v.SetDefault("output", d.Output)
	v.SetDefault("min_length", d.MinLength)
	v.SetDefault("max_length", d.MaxLength)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)

	return &Loader{v: v, configFile: configFile, dotEnv: DotEnvFile}
}

// WithDotEnv changes the .env file consulted by Load
func (l *Loader) WithDotEnv(path string) *Loader {
	l.dotEnv = path
	return l
}

// BindFlags binds every flag that names a setting. Flags only override
// settings when the user set them explicitly.
func (l *Loader) BindFlags(fs *pflag.FlagSet) error {
	var result error
	fs.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if !settingKeys[key] {
			return
		}
		if err := l.v.BindPFlag(key, f); err != nil {
			result = multierror.Append(result, err)
		}
	})
	return result
}

// ConfigFile returns the settings file path that Load reads, if any
func (l *Loader) ConfigFile() (string, error) {
	return ResolveConfigFile(l.configFile)
}

// Load resolves and validates the settings
func (l *Loader) Load() (Settings, error) {
	if l.dotEnv != "" && fileExists(l.dotEnv) {
		// godotenv never overrides variables already set in the environment
		if err := godotenv.Load(l.dotEnv); err != nil {
			return Settings{}, fmt.Errorf("failed to load %s: %w", l.dotEnv, err)
		}
	}

	path, err := l.ConfigFile()
	if err != nil {
		return Settings{}, err
	}
	if fileExists(path) {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else if l.configFile != "" {
		return Settings{}, fmt.Errorf("config file not found: %s", path)
	}

	var s Settings
	if err := l.v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	s.Classes = splitClasses(s.Classes)

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// UsedConfigFile returns the config file Load actually read, or ""
func (l *Loader) UsedConfigFile() string {
	return l.v.ConfigFileUsed()
}

// splitClasses accepts both list values and a single comma separated string,
// which is how environment variables arrive.
func splitClasses(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
