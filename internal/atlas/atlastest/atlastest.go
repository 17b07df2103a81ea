// Package atlastest builds small in-memory atlases for tests.
package atlastest

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"sync/atomic"

	"sprite-renderer/internal/atlas"
)

// Solid returns PNG bytes of a w×h image filled with c.
func Solid(w, h int, c color.NRGBA) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// SolidTGA returns an uncompressed 32-bit TGA of a w×h image filled with c.
func SolidTGA(w, h int, c color.NRGBA) []byte {
	hdr := make([]byte, 18)
	hdr[2] = 2 // uncompressed true-color
	binary.LittleEndian.PutUint16(hdr[12:], uint16(w))
	binary.LittleEndian.PutUint16(hdr[14:], uint16(h))
	hdr[16] = 32
	hdr[17] = 0x28 // top-left origin, 8 alpha bits

	data := append(hdr, make([]byte, w*h*4)...)
	px := data[18:]
	for i := 0; i < len(px); i += 4 {
		px[i] = c.B
		px[i+1] = c.G
		px[i+2] = c.R
		px[i+3] = c.A
	}
	return data
}

// Counting wraps a Source and counts ReadEntry calls.
type Counting struct {
	atlas.Source
	reads  atomic.Int64
	Before func(name string) // optional hook run before each read
}

// NewCounting wraps src.
func NewCounting(src atlas.Source) *Counting {
	return &Counting{Source: src}
}

func (c *Counting) ReadEntry(name string) ([]byte, error) {
	c.reads.Add(1)
	if c.Before != nil {
		c.Before(name)
	}
	return c.Source.ReadEntry(name)
}

// Reads returns the number of ReadEntry calls so far.
func (c *Counting) Reads() int64 {
	return c.reads.Load()
}
