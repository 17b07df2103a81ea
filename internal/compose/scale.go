package compose

import (
	"image"

	"golang.org/x/image/draw"
)

// fit shrinks img to fit within w×h, keeping its aspect ratio.
// Images that already fit are returned unchanged. The scaler works in
// premultiplied alpha, so transparent edges do not darken.
func fit(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= w && b.Dy() <= h {
		return img
	}

	sc := min(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	dw := max(1, int(float64(b.Dx())*sc))
	dh := max(1, int(float64(b.Dy())*sc))

	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
