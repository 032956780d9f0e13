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

package charset

import (
	"fmt"
	"strings"
)

// Classes toggles each recognised character class on or off
type Classes struct {
	Uppercase bool `json:"uppercase" yaml:"uppercase"`
	Lowercase bool `json:"lowercase" yaml:"lowercase"`
	Digits    bool `json:"digits" yaml:"digits"`
	Special   bool `json:"special" yaml:"special"`
}

// AllClasses enables every class
func AllClasses() Classes {
	return Classes{Uppercase: true, Lowercase: true, Digits: true, Special: true}
}

// Has reports whether the class is enabled
func (cs Classes) Has(c Class) bool {
	switch c {
	case Uppercase:
		return cs.Uppercase
	case Lowercase:
		return cs.Lowercase
	case Digit:
		return cs.Digits
	case Special:
		return cs.Special
	default:
		return false
	}
}

// With returns a copy with the class switched on or off
func (cs Classes) With(c Class, on bool) Classes {
	switch c {
	case Uppercase:
		cs.Uppercase = on
	case Lowercase:
		cs.Lowercase = on
	case Digit:
		cs.Digits = on
	case Special:
		cs.Special = on
	}
	return cs
}

// Enabled returns the enabled classes in canonical order
func (cs Classes) Enabled() []Class {
	var out []Class
	for _, c := range canonicalOrder {
		if cs.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Count returns the number of enabled classes
func (cs Classes) Count() int {
	return len(cs.Enabled())
}

// Empty reports whether no class is enabled
func (cs Classes) Empty() bool {
	return cs.Count() == 0
}

// PoolSize is the sum of the enabled alphabet sizes
func (cs Classes) PoolSize() int {
	size := 0
	for _, c := range cs.Enabled() {
		size += c.Size()
	}
	return size
}

func (cs Classes) String() string {
	enabled := cs.Enabled()
	if len(enabled) == 0 {
		return "none"
	}
	names := make([]string, len(enabled))
	for i, c := range enabled {
		names[i] = c.String()
	}
	return strings.Join(names, ",")
}

// ParseClass resolves a class name. Several spellings are accepted for each class.
func ParseClass(name string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "upper", "uppercase":
		return Uppercase, nil
	case "lower", "lowercase":
		return Lowercase, nil
	case "digit", "digits", "number", "numbers":
		return Digit, nil
	case "special", "symbol", "symbols":
		return Special, nil
	default:
		return 0, fmt.Errorf("unknown character class %q (want upper, lower, digits or special)", name)
	}
}

// ParseClasses builds a Classes value with exactly the named classes enabled
func ParseClasses(names []string) (Classes, error) {
	var cs Classes
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		c, err := ParseClass(name)
		if err != nil {
			return Classes{}, err
		}
		cs = cs.With(c, true)
	}
	return cs, nil
}
