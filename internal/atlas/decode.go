package atlas

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"path"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
)

// Decode turns the raw bytes of an atlas entry into an NRGBA image anchored
// at (0,0). The decoder is picked by the entry's extension: the tga package
// registers itself with an empty magic string, so image.Decode would hand
// every entry to it.
func Decode(name string, data []byte) (*image.NRGBA, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("atlas: decode %s: empty data", name)
	}

	var (
		img image.Image
		err error
	)
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".png":
		img, err = png.Decode(bytes.NewReader(data))
	case ".tga":
		img, err = tga.Decode(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("atlas: decode %s: unsupported extension %q", name, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("atlas: decode %s: %w", name, err)
	}
	return ToNRGBA(img), nil
}

// ToNRGBA converts any image to NRGBA with bounds starting at the origin.
func ToNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
