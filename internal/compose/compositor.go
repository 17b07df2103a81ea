package compose

import (
	"image"
	"image/color"
	"math"

	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"sprite-renderer/internal/atlas"
	"sprite-renderer/internal/naming"
	"sprite-renderer/internal/species"
)

// Canvas size of every sprite.
const (
	Width  = 68
	Height = 56
)

// Layer opacities.
const (
	eggBaseAlpha      = 85  // base art under an egg, ~33%
	shinyOverlayAlpha = 178 // shiny star overlay, ~70%
	itemInset         = 2
)

// BaseResolver finds the base art for an identity.
type BaseResolver interface {
	Resolve(id naming.Identity) (*image.NRGBA, string)
}

// Request selects the layers of one sprite.
type Request struct {
	Identity naming.Identity
	// Number is the species number shown on the placeholder. Zero means
	// Identity.Species; a value that does not fit in Identity.Species has
	// no art and always renders the placeholder.
	Number   int
	IsEgg    bool
	HeldItem int
	IsShiny  bool
	Type     species.Type
}

func (r Request) number() int {
	if r.Number != 0 {
		return r.Number
	}
	return int(r.Identity.Species)
}

// Compositor layers atlas art onto a fixed-size canvas.
type Compositor struct {
	base    BaseResolver
	images  atlas.Resolver
	encoder Encoder
	log     *zap.Logger
}

// New creates a compositor. A nil encoder means PNG.
func New(base BaseResolver, images atlas.Resolver, enc Encoder, log *zap.Logger) *Compositor {
	if enc == nil {
		enc = PNG{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Compositor{base: base, images: images, encoder: enc, log: log}
}

// Format returns the compositor's output encoding.
func (c *Compositor) Format() string {
	return c.encoder.Format()
}

// Compose renders and encodes one sprite. It always returns an image.
func (c *Compositor) Compose(req Request) *Encoded {
	return c.finish(c.render(req))
}

// Empty returns a fully transparent canvas.
func (c *Compositor) Empty() *Encoded {
	return c.finish(image.NewNRGBA(image.Rect(0, 0, Width, Height)))
}

func (c *Compositor) render(req Request) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, Width, Height))

	var base *image.NRGBA
	if n := req.number(); n > 0 && n <= math.MaxUint16 {
		base, _ = c.base.Resolve(req.Identity)
	}
	if base == nil {
		DrawShapes(canvas, PlaceholderShapes(req.number(), req.Type, req.IsShiny))
		return canvas
	}

	if req.IsEgg {
		drawLayer(canvas, base, image.Point{}, eggBaseAlpha)
		if egg := c.images.Resolve(naming.EggPathFor(req.Identity.Species)); egg != nil {
			drawLayer(canvas, egg, image.Point{}, 255)
		}
	} else {
		drawLayer(canvas, base, image.Point{}, 255)
	}

	if path := naming.ItemPath(req.HeldItem); path != "" {
		if item := c.images.Resolve(path); item != nil {
			item = fit(item, Width-2*itemInset, Height-2*itemInset)
			b := item.Bounds()
			at := image.Pt(Width-itemInset-b.Dx(), Height-itemInset-b.Dy())
			drawLayer(canvas, item, at, 255)
		}
	}

	if req.IsShiny {
		if star := c.images.Resolve(naming.ShinyStarPath); star != nil {
			drawLayer(canvas, star, image.Point{}, shinyOverlayAlpha)
		} else {
			StarShape().Draw(canvas)
		}
	}

	return canvas
}

func (c *Compositor) finish(canvas *image.NRGBA) *Encoded {
	out, err := encode(c.encoder, canvas)
	if err == nil {
		return out
	}
	c.log.Warn("sprite encode failed, falling back to png", zap.Error(err))
	// png into memory does not fail for a canvas of fixed, valid size
	out, _ = encode(PNG{}, canvas)
	return out
}

// drawLayer draws src over dst at the given offset with uniform opacity.
// Layers larger than the canvas are shrunk to fit first.
func drawLayer(dst, src *image.NRGBA, at image.Point, alpha uint8) {
	src = fit(src, dst.Bounds().Dx(), dst.Bounds().Dy())
	sb := src.Bounds()
	r := image.Rectangle{Min: at, Max: at.Add(sb.Size())}
	if alpha == 255 {
		draw.Draw(dst, r, src, sb.Min, draw.Over)
		return
	}
	draw.DrawMask(dst, r, src, sb.Min, image.NewUniform(color.Alpha{A: alpha}), image.Point{}, draw.Over)
}
