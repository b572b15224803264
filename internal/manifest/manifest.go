// Package manifest applies batches of system changes described in YAML.
//
// A manifest lists full system records to upsert and names to remove:
//
//	systems:
//	  - fullname: Super Nintendo
//	    name: snes
//	    path: /roms/snes
//	    extension: .sfc .smc
//	    command: retroarch %ROM%
//	    platform: snes
//	    theme: snes
//	remove:
//	  - gamegear
//
// Fields left out of a system entry are written as empty text; an entry
// always replaces the whole record.
package manifest

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/roach88/esconfig/internal/store"
)

// Manifest is a batch of changes to one system list.
type Manifest struct {
	// Systems are upserted in order.
	Systems []store.Record `yaml:"systems,omitempty"`

	// Remove names systems to delete after all upserts.
	Remove []string `yaml:"remove,omitempty"`
}

// Summary reports what Apply changed, by system name.
type Summary struct {
	Added    []string `json:"added,omitempty" yaml:"added,omitempty"`
	Replaced []string `json:"replaced,omitempty" yaml:"replaced,omitempty"`
	Removed  []string `json:"removed,omitempty" yaml:"removed,omitempty"`
}

// Load reads and parses a manifest file from fs.
func Load(fs afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes manifest YAML. Unknown fields are rejected so typos such as
// "sytems:" fail loudly.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validate(&m); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	return &m, nil
}

func validate(m *Manifest) error {
	if len(m.Systems) == 0 && len(m.Remove) == 0 {
		return errors.New("manifest has no systems and no removals")
	}

	seen := make(map[string]int, len(m.Systems))
	for i, r := range m.Systems {
		if r.Name == "" {
			return fmt.Errorf("systems[%d]: name is required", i)
		}
		if j, dup := seen[r.Name]; dup {
			return fmt.Errorf("systems[%d]: name %q already used by systems[%d]", i, r.Name, j)
		}
		seen[r.Name] = i
	}

	for i, name := range m.Remove {
		if name == "" {
			return fmt.Errorf("remove[%d]: name is required", i)
		}
	}
	return nil
}

// Apply upserts every system and then removes every listed name.
// Removing a name that is not present is not an error and is left out of
// the summary.
func (m *Manifest) Apply(s *store.Store) Summary {
	var sum Summary
	for _, r := range m.Systems {
		if s.Upsert(r) {
			sum.Replaced = append(sum.Replaced, r.Name)
		} else {
			sum.Added = append(sum.Added, r.Name)
		}
	}
	for _, name := range m.Remove {
		if s.Remove(name) {
			sum.Removed = append(sum.Removed, name)
		}
	}
	return sum
}
