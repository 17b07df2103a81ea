package sprite

import "sprite-renderer/internal/species"

// Creature is the read-only view of an entity the renderer draws.
type Creature interface {
	Species() int
	Form() uint8
	Gender() species.Gender
	FormArgument() uint32
	HeldItem() int
	IsEgg() bool
	IsShiny() bool
	PrimaryType() species.Type
}

// Snapshot is a plain-value Creature.
type Snapshot struct {
	SpeciesID int
	FormID    uint8
	Sex       species.Gender
	FormArg   uint32
	Item      int
	Egg       bool
	Shiny     bool
	Type      species.Type
}

func (s Snapshot) Species() int              { return s.SpeciesID }
func (s Snapshot) Form() uint8               { return s.FormID }
func (s Snapshot) Gender() species.Gender    { return s.Sex }
func (s Snapshot) FormArgument() uint32      { return s.FormArg }
func (s Snapshot) HeldItem() int             { return s.Item }
func (s Snapshot) IsEgg() bool               { return s.Egg }
func (s Snapshot) IsShiny() bool             { return s.Shiny }
func (s Snapshot) PrimaryType() species.Type { return s.Type }
