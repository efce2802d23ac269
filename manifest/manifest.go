package manifest

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/funcy"
	"github.com/randalmurphal/funcy/funcs"
)

// Sentinel errors for manifest validation.
var (
	// ErrInvalidName indicates a placeholder name that the scanner
	// grammar can never produce (empty, whitespace, or '>').
	ErrInvalidName = errors.New("invalid placeholder name")

	// ErrDuplicateName indicates two placeholder entries sharing a name.
	ErrDuplicateName = errors.New("duplicate placeholder name")

	// ErrNoSource indicates a placeholder entry with zero or more than
	// one of value, map, and builtin.
	ErrNoSource = errors.New("placeholder needs exactly one of value, map, or builtin")

	// ErrUnknownBuiltin indicates a builtin reference that names no
	// stock handler.
	ErrUnknownBuiltin = errors.New("unknown builtin handler")
)

// Manifest is a declarative placeholder set. Parsed from YAML or TOML
// bytes, it compiles into a handler map registerable on a Renderer,
// which lets the placeholder vocabulary of a template live next to the
// template instead of in code.
type Manifest struct {
	// Name labels the manifest. Optional, not used for resolution.
	Name string `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`

	// Placeholders are the handler definitions.
	Placeholders []Placeholder `yaml:"placeholders" toml:"placeholders" json:"placeholders"`
}

// Placeholder defines one handler. Exactly one of Value, Map, and
// Builtin must be set.
type Placeholder struct {
	// Name is the placeholder name markers refer to. It must satisfy
	// the scanner's name grammar.
	Name string `yaml:"name" toml:"name" json:"name"`

	// Value is a static replacement string.
	Value *string `yaml:"value,omitempty" toml:"value,omitempty" json:"value,omitempty"`

	// Map is an argument-keyed replacement table.
	Map map[string]string `yaml:"map,omitempty" toml:"map,omitempty" json:"map,omitempty"`

	// Builtin names a stock handler from the funcs package
	// (echo, env, now, upper, lower, trim, counter).
	Builtin string `yaml:"builtin,omitempty" toml:"builtin,omitempty" json:"builtin,omitempty"`
}

// Parse decodes a YAML manifest document and validates it.
//
// Example document:
//
//	name: release-notes
//	placeholders:
//	  - name: version
//	    value: "2.1.0"
//	  - name: channel
//	    map:
//	      stable: Stable Channel
//	      beta: Beta Channel
//	  - name: date
//	    builtin: now
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// ParseTOML decodes a TOML manifest document and validates it.
//
// Example document:
//
//	name = "release-notes"
//
//	[[placeholders]]
//	name = "version"
//	value = "2.1.0"
func ParseTOML(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that every placeholder has a grammar-valid, unique
// name and exactly one replacement source.
func (m *Manifest) Validate() error {
	seen := make(map[string]bool, len(m.Placeholders))
	for _, p := range m.Placeholders {
		if !funcy.ValidName(p.Name) {
			return fmt.Errorf("%w: %q", ErrInvalidName, p.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateName, p.Name)
		}
		seen[p.Name] = true

		sources := 0
		if p.Value != nil {
			sources++
		}
		if len(p.Map) > 0 {
			sources++
		}
		if p.Builtin != "" {
			sources++
		}
		if sources != 1 {
			return fmt.Errorf("%w: %q", ErrNoSource, p.Name)
		}
	}
	return nil
}

// Handlers compiles the manifest into a handler map for
// Renderer.AppendHandlers or Renderer.SetHandlers. Stateful builtins
// (counter) are built fresh per call, so compiling one manifest twice
// never shares state between the two handler sets.
func (m *Manifest) Handlers() (map[string]funcy.Handler, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	builtins := funcs.Defaults()
	handlers := make(map[string]funcy.Handler, len(m.Placeholders))
	for _, p := range m.Placeholders {
		switch {
		case p.Value != nil:
			handlers[p.Name] = funcs.Static(*p.Value)
		case len(p.Map) > 0:
			handlers[p.Name] = funcs.Map(p.Map)
		default:
			h, ok := builtins[p.Builtin]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownBuiltin, p.Builtin)
			}
			handlers[p.Name] = h
		}
	}
	return handlers, nil
}
