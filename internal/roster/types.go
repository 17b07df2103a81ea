package roster

import "sprite-renderer/internal/species"

// Entry is one creature listed in a roster file.
type Entry struct {
	Name         string `yaml:"name"` // output file stem; defaults to the position
	Species      int    `yaml:"species"`
	Form         uint8  `yaml:"form"`
	Gender       string `yaml:"gender"` // "male", "female", "genderless" or 0/1/2
	FormArgument uint32 `yaml:"form_argument"`
	Shiny        bool   `yaml:"shiny"`
	Egg          bool   `yaml:"egg"`
	HeldItem     int    `yaml:"held_item"`
	Type         string `yaml:"type"` // primary type, used by the placeholder
}

// Roster is a parsed roster file.
type Roster struct {
	// Context overrides the configured generation context when set.
	Context *species.Context `yaml:"context"`
	Entries []Entry          `yaml:"entries"`
}
