package naming

import (
	"strconv"
	"strings"

	"sprite-renderer/internal/species"
)

// Atlas folders. Shiny art lives in a parallel folder with identical names.
const (
	NormalFolder  = "big_pokemon_sprites"
	ShinyFolder   = "big_shiny_sprites"
	ItemFolder    = "big_items"
	OverlayFolder = "pokemon_sprite_overlays"
)

// Fixed overlay entries.
const (
	EggPath        = NormalFolder + "/b_egg.png"
	ManaphyEggPath = NormalFolder + "/b_490_e.png"
	ShinyStarPath  = OverlayFolder + "/rare_icon_alt.png"
)

// Identity is everything that selects a creature's sprite art.
type Identity struct {
	Species      uint16
	Form         uint8
	Gender       species.Gender
	FormArgument uint32
	Shiny        bool
	Context      species.Context
}

// Key returns the canonical base name of id; the shiny flag does not
// take part, it only picks the folder.
func (id Identity) Key() string {
	return Name(id.Species, id.Form, id.Gender, id.FormArgument, id.Context)
}

// Folder returns the atlas folder selected by the shiny flag.
func (id Identity) Folder() string {
	return FolderFor(id.Shiny)
}

// FolderFor maps the shiny flag to its atlas folder.
func FolderFor(shiny bool) string {
	if shiny {
		return ShinyFolder
	}
	return NormalFolder
}

// Name builds the base sprite name, e.g. "_25-8p" or "_869-0-3".
// It is total and pure; callers add the folder and extension with Path.
func Name(s uint16, form uint8, gender species.Gender, formArg uint32, ctx species.Context) string {
	r := RuleFor(s)
	if r.ForcesDefaultForm {
		form = 0
	}

	var sb strings.Builder
	sb.Grow(16)
	sb.WriteByte('_')
	sb.WriteString(strconv.Itoa(int(s)))

	if form != 0 {
		sb.WriteByte('-')
		sb.WriteString(strconv.Itoa(int(form)))

		switch {
		case r.CosplayContext != species.ContextNone && ctx == r.CosplayContext:
			sb.WriteByte('c')
		case r.StarterForm != 0 && form == r.StarterForm:
			sb.WriteByte('p')
		}
	}

	if gender == species.Female && r.GenderedSprite {
		sb.WriteByte('f')
	}

	if r.FormArgumentSuffix {
		// the atlas spells out form 0 for these
		if form == 0 {
			sb.WriteString("-0")
		}
		sb.WriteByte('-')
		sb.WriteString(strconv.FormatUint(uint64(formArg), 10))
	}

	return sb.String()
}

// Path joins a folder and a base name into an atlas entry name.
func Path(folder, name string) string {
	return folder + "/b" + name + ".png"
}

// SpeciesOnlyPath is the last-resort entry for a species: no suffixes at all.
func SpeciesOnlyPath(s uint16) string {
	return Path(NormalFolder, "_"+strconv.Itoa(int(s)))
}

// ItemPath returns the atlas entry for a held item, or "" for id <= 0.
func ItemPath(item int) string {
	if item <= 0 {
		return ""
	}
	return ItemFolder + "/bitem_" + strconv.Itoa(item) + ".png"
}

// EggPathFor returns the egg overlay entry for a species.
func EggPathFor(s uint16) string {
	if s == species.Manaphy {
		return ManaphyEggPath
	}
	return EggPath
}
