package compose

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/webp"
)

// Encoder turns a finished canvas into portable bytes.
type Encoder interface {
	Format() string // file extension without the dot
	Encode(w io.Writer, img image.Image) error
}

// PNG encodes lossless PNG. It is the default.
type PNG struct{}

func (PNG) Format() string { return "png" }

func (PNG) Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// WebP encodes lossless WebP.
type WebP struct{}

func (WebP) Format() string { return "webp" }

func (WebP) Encode(w io.Writer, img image.Image) error {
	return nativewebp.Encode(w, img, nil)
}

// EncoderFor maps "png" or "webp" to an Encoder.
func EncoderFor(format string) (Encoder, error) {
	switch strings.ToLower(format) {
	case "", "png":
		return PNG{}, nil
	case "webp":
		return WebP{}, nil
	}
	return nil, fmt.Errorf("compose: unknown format %q", format)
}

// Encoded is an immutable encoded sprite.
type Encoded struct {
	format string
	width  int
	height int
	data   []byte
}

func encode(enc Encoder, img *image.NRGBA) (*Encoded, error) {
	var buf bytes.Buffer
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("compose: encode %s: %w", enc.Format(), err)
	}
	b := img.Bounds()
	return &Encoded{
		format: enc.Format(),
		width:  b.Dx(),
		height: b.Dy(),
		data:   buf.Bytes(),
	}, nil
}

// Format returns the encoding, e.g. "png".
func (e *Encoded) Format() string { return e.format }

// Size returns the pixel dimensions.
func (e *Encoded) Size() (width, height int) { return e.width, e.height }

// Len returns the encoded length in bytes.
func (e *Encoded) Len() int { return len(e.data) }

// Bytes returns a copy of the encoded data.
func (e *Encoded) Bytes() []byte {
	return bytes.Clone(e.data)
}

// WriteTo writes the encoded data to w.
func (e *Encoded) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(e.data)
	return int64(n), err
}

// Decode decodes a fresh copy of the image with the decoder matching
// its format.
func (e *Encoded) Decode() (image.Image, error) {
	var (
		img image.Image
		err error
	)
	switch e.format {
	case "png":
		img, err = png.Decode(bytes.NewReader(e.data))
	case "webp":
		img, err = webp.Decode(bytes.NewReader(e.data))
	default:
		return nil, fmt.Errorf("compose: decode %s: unsupported format", e.format)
	}
	if err != nil {
		return nil, fmt.Errorf("compose: decode %s: %w", e.format, err)
	}
	return img, nil
}
