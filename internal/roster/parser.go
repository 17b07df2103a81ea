// Package roster reads creature lists for bulk sprite rendering.
package roster

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"sprite-renderer/internal/species"
	"sprite-renderer/internal/sprite"
)

var validName = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Load reads a roster YAML file.
func Load(path string) (*Roster, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("roster: read %s: %w", path, err)
	}
	r, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("roster: %s: %w", path, err)
	}
	return r, nil
}

// Parse decodes and validates roster YAML. Unnamed entries are named
// after their position, e.g. "003".
func Parse(raw []byte) (*Roster, error) {
	var r Roster
	if err := yaml.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	seen := make(map[string]int, len(r.Entries))
	for i := range r.Entries {
		e := &r.Entries[i]
		if e.Name == "" {
			e.Name = fmt.Sprintf("%03d", i)
		}
		if !validName.MatchString(e.Name) || e.Name == "." || e.Name == ".." {
			return nil, fmt.Errorf("entry %d: invalid name %q", i, e.Name)
		}
		if j, dup := seen[e.Name]; dup {
			return nil, fmt.Errorf("entry %d: name %q already used by entry %d", i, e.Name, j)
		}
		seen[e.Name] = i

		if e.Species < 0 {
			return nil, fmt.Errorf("entry %d (%s): negative species %d", i, e.Name, e.Species)
		}
		if _, err := species.ParseGender(e.Gender); err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, e.Name, err)
		}
	}
	return &r, nil
}

// ContextOr returns the roster's context, or def when the file sets none.
func (r *Roster) ContextOr(def species.Context) species.Context {
	if r.Context == nil {
		return def
	}
	return *r.Context
}

// Creature converts e for the renderer. Parse has already validated it.
func (e Entry) Creature() sprite.Snapshot {
	g, _ := species.ParseGender(e.Gender)
	return sprite.Snapshot{
		SpeciesID: e.Species,
		FormID:    e.Form,
		Sex:       g,
		FormArg:   e.FormArgument,
		Item:      e.HeldItem,
		Egg:       e.Egg,
		Shiny:     e.Shiny,
		Type:      species.ParseType(e.Type),
	}
}
