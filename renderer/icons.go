package renderer

import (
	"image"
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/dogfight/components"
	"github.com/pthm-cable/dogfight/geom"
)

// Icon colors. Their luma values are well separated so the grayscale
// observation still tells the kinds apart.
var (
	playerColor  = color.RGBA{R: 30, G: 60, B: 160, A: 255}  // luma ~62
	enemyColor   = color.RGBA{R: 230, G: 110, B: 60, A: 255} // luma ~140
	missileColor = color.RGBA{A: 255}                        // black
)

type iconKey struct {
	kind components.Kind
	w, h int
}

// buildIcon draws the icon for a kind facing right (+x) in a w×h image with
// a transparent background. Painted pixels stay within the band the hitbox
// covers.
func buildIcon(kind components.Kind, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fw, fh := float64(w), float64(h)

	switch kind {
	case components.KindMissile:
		// Narrow bar matching the missile hitbox.
		x0, x1 := w/4, w-w/4
		y0, y1 := h/2-h/8, h/2+h/8
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				img.SetRGBA(x, y, missileColor)
			}
		}
	default:
		c := playerColor
		if kind == components.KindEnemy {
			c = enemyColor
		}
		// Arrowhead pointing along +x within the middle half of the icon.
		// The last vertex is repeated so the triangle fits a Quad.
		tri := geom.Quad{
			{X: 0, Y: fh / 4},
			{X: 0, Y: fh * 3 / 4},
			{X: fw, Y: fh / 2},
			{X: fw, Y: fh / 2},
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if tri.ContainsPoint(r2.Vec{X: float64(x) + 0.5, Y: float64(y) + 0.5}) {
					img.SetRGBA(x, y, c)
				}
			}
		}
	}
	return img
}
