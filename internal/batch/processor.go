package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"sprite-renderer/internal/compose"
	"sprite-renderer/internal/roster"
	"sprite-renderer/internal/species"
	"sprite-renderer/internal/sprite"
)

// Result kinds.
const (
	KindSprite      = "sprite"
	KindPlaceholder = "placeholder"
	KindEmpty       = "empty"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Renderer  *sprite.Renderer
	Context   species.Context
	OutputDir string
	Workers   int
	Scale     int // integer upscale of written files; <= 1 writes 68x56
	Log       *zap.Logger
}

// Result holds the outcome of rendering one roster entry.
type Result struct {
	Entry   roster.Entry
	Kind    string
	Base    string // atlas entry of the base layer, "" unless Kind is sprite
	Image   string // file name relative to OutputDir
	Success bool
	Error   string
}

// Run renders all entries using a worker pool.
func Run(cfg Config, entries []roster.Entry) []Result {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}

	total := len(entries)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f sprites/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	work := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				results[idx] = processEntry(cfg, entries[idx])
				if !results[idx].Success {
					cfg.Log.Warn("sprite not written",
						zap.String("name", entries[idx].Name),
						zap.String("error", results[idx].Error))
				}
				processed.Add(1)
			}
		}()
	}

	for i := range entries {
		work <- i
	}
	close(work)

	wg.Wait()
	close(done)

	return results
}

func processEntry(cfg Config, e roster.Entry) Result {
	r := cfg.Renderer
	c := e.Creature()

	res := Result{
		Entry: e,
		Kind:  KindSprite,
		Image: e.Name + "." + r.Format(),
	}
	if c.Species() <= 0 {
		res.Kind = KindEmpty
	} else if res.Base = r.BaseEntry(cfg.Context, c); res.Base == "" {
		res.Kind = KindPlaceholder
	}

	out := r.SpriteFor(cfg.Context, c)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		res.Error = err.Error()
		return res
	}
	if err := write(filepath.Join(cfg.OutputDir, res.Image), out, cfg.Scale); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}

func write(path string, out *compose.Encoded, scale int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if scale <= 1 {
		_, err = out.WriteTo(f)
		return err
	}

	enc, err := compose.EncoderFor(out.Format())
	if err != nil {
		return err
	}
	img, err := out.Decode()
	if err != nil {
		return err
	}
	if err := enc.Encode(f, upscale(img, scale)); err != nil {
		return fmt.Errorf("%s encode: %w", enc.Format(), err)
	}
	return nil
}

// upscale enlarges img by an integer factor keeping hard pixel edges.
func upscale(img image.Image, factor int) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
