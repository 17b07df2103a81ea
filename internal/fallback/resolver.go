package fallback

import (
	"image"

	"go.uber.org/zap"

	"sprite-renderer/internal/atlas"
	"sprite-renderer/internal/naming"
)

// Resolver finds the best available base sprite for an identity.
type Resolver struct {
	images atlas.Resolver
	log    *zap.Logger
}

// New creates a Resolver that decodes through images (normally an *atlas.Cache).
func New(images atlas.Resolver, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{images: images, log: log}
}

// Candidates returns the atlas entries tried for id, in order, without
// repeats:
//  1. exact name in the folder picked by the shiny flag
//  2. exact name in the normal folder (shiny only)
//  3. base form (form and form argument zeroed) in the picked folder
//  4. base form in the normal folder (shiny only)
//  5. species only, normal folder
func Candidates(id naming.Identity) []string {
	folder := id.Folder()
	exact := id.Key()

	out := make([]string, 0, 5)
	add := func(p string) {
		for _, seen := range out {
			if seen == p {
				return
			}
		}
		out = append(out, p)
	}

	add(naming.Path(folder, exact))
	if id.Shiny {
		add(naming.Path(naming.NormalFolder, exact))
	}
	if id.Form != 0 {
		base := naming.Name(id.Species, 0, id.Gender, 0, id.Context)
		add(naming.Path(folder, base))
		if id.Shiny {
			add(naming.Path(naming.NormalFolder, base))
		}
	}
	add(naming.SpeciesOnlyPath(id.Species))
	return out
}

// Resolve returns the first candidate that exists and decodes, with its
// entry name. It returns (nil, "") when nothing resolves; it never fails.
func (r *Resolver) Resolve(id naming.Identity) (*image.NRGBA, string) {
	for _, name := range Candidates(id) {
		if img := r.images.Resolve(name); img != nil {
			return img, name
		}
	}
	r.log.Debug("no sprite for identity",
		zap.Uint16("species", id.Species),
		zap.Uint8("form", id.Form),
		zap.Bool("shiny", id.Shiny),
		zap.String("context", id.Context.String()))
	return nil, ""
}
