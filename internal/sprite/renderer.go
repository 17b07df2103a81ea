package sprite

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"sprite-renderer/internal/atlas"
	"sprite-renderer/internal/compose"
	"sprite-renderer/internal/fallback"
	"sprite-renderer/internal/naming"
	"sprite-renderer/internal/species"
)

// Renderer is the entry point for drawing creature sprites. It is safe
// for concurrent use; prefer SpriteFor, which takes the generation context
// per call, when callers render for different contexts at once.
type Renderer struct {
	index      *atlas.Index
	cache      *atlas.Cache
	resolver   *fallback.Resolver
	compositor *compose.Compositor
	log        *zap.Logger

	context atomic.Uint32 // species.Context used by Sprite
	empty   func() *compose.Encoded
}

type options struct {
	encoder compose.Encoder
	log     *zap.Logger
	context species.Context
}

// Option configures a Renderer.
type Option func(*options)

// WithEncoder sets the output encoding (PNG by default).
func WithEncoder(enc compose.Encoder) Option {
	return func(o *options) { o.encoder = enc }
}

// WithLogger sets the logger used for decode and resolution diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithContext sets the initial default generation context.
func WithContext(ctx species.Context) Option {
	return func(o *options) { o.context = ctx }
}

// New indexes src once and wires the cache, resolver and compositor.
func New(src atlas.Source, opts ...Option) (*Renderer, error) {
	o := options{encoder: compose.PNG{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}

	idx, err := atlas.BuildIndex(src)
	if err != nil {
		return nil, fmt.Errorf("sprite: %w", err)
	}
	cache := atlas.NewCache(idx, src, o.log)
	resolver := fallback.New(cache, o.log)

	r := &Renderer{
		index:      idx,
		cache:      cache,
		resolver:   resolver,
		compositor: compose.New(resolver, cache, o.encoder, o.log),
		log:        o.log,
	}
	r.context.Store(uint32(o.context))
	r.empty = sync.OnceValue(r.compositor.Empty)

	o.log.Debug("sprite renderer ready",
		zap.Int("entries", idx.Len()),
		zap.String("format", r.compositor.Format()),
		zap.String("context", o.context.String()))
	return r, nil
}

// Initialize sets the default context used by Sprite.
func (r *Renderer) Initialize(ctx species.Context) {
	r.context.Store(uint32(ctx))
}

// Context returns the default context set by Initialize.
func (r *Renderer) Context() species.Context {
	return species.Context(r.context.Load())
}

// Sprite renders c with the default context.
func (r *Renderer) Sprite(c Creature) *compose.Encoded {
	return r.SpriteFor(r.Context(), c)
}

// SpriteFor renders c using ctx for the naming rules. It never returns nil:
// a missing creature or species 0 yields the empty slot, and art that
// cannot be found yields a placeholder.
func (r *Renderer) SpriteFor(ctx species.Context, c Creature) *compose.Encoded {
	if c == nil || c.Species() <= 0 {
		return r.EmptySlot()
	}
	return r.compositor.Compose(r.request(ctx, c))
}

// BaseEntry returns the atlas entry the base layer of c resolves to,
// or "" when the placeholder would be drawn.
func (r *Renderer) BaseEntry(ctx species.Context, c Creature) string {
	if c == nil || c.Species() <= 0 || c.Species() > math.MaxUint16 {
		return ""
	}
	_, name := r.resolver.Resolve(r.request(ctx, c).Identity)
	return name
}

func (r *Renderer) request(ctx species.Context, c Creature) compose.Request {
	n := c.Species()
	id := naming.Identity{
		Form:         c.Form(),
		Gender:       c.Gender(),
		FormArgument: c.FormArgument(),
		Shiny:        c.IsShiny(),
		Context:      ctx,
	}
	if n <= math.MaxUint16 {
		id.Species = uint16(n)
	}
	return compose.Request{
		Identity: id,
		Number:   n,
		IsEgg:    c.IsEgg(),
		HeldItem: c.HeldItem(),
		IsShiny:  c.IsShiny(),
		Type:     c.PrimaryType(),
	}
}

// EmptySlot returns the shared fully transparent sprite.
func (r *Renderer) EmptySlot() *compose.Encoded {
	return r.empty()
}

// ClearCache releases every decoded image and returns how many were held.
func (r *Renderer) ClearCache() int {
	return r.cache.Clear()
}

// Index returns the atlas index.
func (r *Renderer) Index() *atlas.Index {
	return r.index
}

// Format returns the output encoding, e.g. "png".
func (r *Renderer) Format() string {
	return r.compositor.Format()
}
