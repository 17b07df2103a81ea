package species

import (
	"image/color"
	"strconv"
	"strings"
)

// Type is a creature's elemental type, in personal-table order.
type Type int

const (
	Normal Type = iota
	Fighting
	Flying
	Poison
	Ground
	Rock
	Bug
	Ghost
	Steel
	Fire
	Water
	Grass
	Electric
	Psychic
	Ice
	Dragon
	Dark
	Fairy
)

// Unknown is used when the snapshot cannot provide a type.
const Unknown Type = -1

var typeNames = [...]string{
	"normal", "fighting", "flying", "poison", "ground", "rock", "bug", "ghost", "steel",
	"fire", "water", "grass", "electric", "psychic", "ice", "dragon", "dark", "fairy",
}

var typeColors = [...]color.NRGBA{
	{168, 168, 120, 255}, // Normal
	{192, 48, 40, 255},   // Fighting
	{168, 144, 240, 255}, // Flying
	{160, 64, 160, 255},  // Poison
	{224, 192, 104, 255}, // Ground
	{184, 160, 56, 255},  // Rock
	{168, 184, 32, 255},  // Bug
	{112, 88, 152, 255},  // Ghost
	{184, 184, 208, 255}, // Steel
	{240, 128, 48, 255},  // Fire
	{104, 144, 240, 255}, // Water
	{120, 200, 80, 255},  // Grass
	{248, 208, 48, 255},  // Electric
	{248, 88, 136, 255},  // Psychic
	{152, 216, 216, 255}, // Ice
	{112, 56, 248, 255},  // Dragon
	{112, 88, 72, 255},   // Dark
	{238, 153, 172, 255}, // Fairy
}

var unknownColor = color.NRGBA{104, 160, 144, 255}

// Color returns the placeholder background color for t.
func (t Type) Color() color.NRGBA {
	if t >= 0 && int(t) < len(typeColors) {
		return typeColors[t]
	}
	return unknownColor
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// ParseType accepts a type name or its numeric index. Anything else is Unknown.
func ParseType(s string) Type {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range typeNames {
		if name == s {
			return Type(i)
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < len(typeNames) {
		return Type(n)
	}
	return Unknown
}
