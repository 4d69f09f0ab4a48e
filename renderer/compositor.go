// Package renderer turns arena state into pixels: the RGB canvas used for
// display and the downsampled grayscale observation handed to agents.
package renderer

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/pthm-cable/dogfight/components"
	"github.com/pthm-cable/dogfight/config"
	"github.com/pthm-cable/dogfight/geom"
)

// Compositor draws entities onto a fixed-size canvas and produces observations.
// Canvas rows run top to bottom while arena y runs bottom to top.
type Compositor struct {
	width, height int
	bounds        geom.Quad

	canvas *image.RGBA
	scaled *image.RGBA // observation-sized intermediate
	icons  map[iconKey]*image.RGBA
}

// NewCompositor creates a compositor sized for the configured arena and observation.
func NewCompositor(cfg *config.Config) *Compositor {
	c := &Compositor{
		width:  cfg.Arena.Width,
		height: cfg.Arena.Height,
		bounds: geom.Bounds(cfg.Derived.WidthF, cfg.Derived.HeightF),
		canvas: image.NewRGBA(image.Rect(0, 0, cfg.Arena.Width, cfg.Arena.Height)),
		scaled: image.NewRGBA(image.Rect(0, 0, cfg.Observation.Width, cfg.Observation.Height)),
		icons:  make(map[iconKey]*image.RGBA),
	}
	c.Clear()
	return c
}

// Clear resets the canvas to white.
func (c *Compositor) Clear() {
	for i := range c.canvas.Pix {
		c.canvas.Pix[i] = 0xff
	}
}

// Draw clears the canvas and composites every body whose hitbox lies fully
// inside the arena. Bodies are drawn in order, later ones on top.
func (c *Compositor) Draw(bodies []components.Body) {
	c.Clear()
	for i := range bodies {
		c.drawBody(&bodies[i])
	}
}

func (c *Compositor) drawBody(b *components.Body) {
	if !c.bounds.Covers(b.Hitbox) {
		return
	}
	if b.IconWidth <= 0 || b.IconHeight <= 0 {
		return
	}

	// Clip to the hitbox's bounding box in canvas space.
	box := b.Hitbox.Box()
	clip := image.Rect(
		int(math.Floor(box.Min.X)), c.height-int(math.Ceil(box.Max.Y)),
		int(math.Ceil(box.Max.X)), c.height-int(math.Floor(box.Min.Y)),
	).Intersect(c.canvas.Bounds())
	if clip.Empty() {
		return
	}
	dst := c.canvas.SubImage(clip).(*image.RGBA)

	icon := c.icon(b.Kind, b.IconWidth, b.IconHeight)
	draw.BiLinear.Transform(dst, c.iconTransform(b), icon, icon.Bounds(), draw.Over, nil)
}

// iconTransform maps icon pixels to canvas pixels: the icon center lands on
// the body position, icon +x follows the heading, and icon rows point down.
func (c *Compositor) iconTransform(b *components.Body) f64.Aff3 {
	rad := geom.Radians(b.Angle)
	cos, sin := math.Cos(rad), math.Sin(rad)
	hw, hh := float64(b.IconWidth)/2, float64(b.IconHeight)/2
	return f64.Aff3{
		cos, sin, b.Pos.X - cos*hw - sin*hh,
		-sin, cos, float64(c.height) - b.Pos.Y + sin*hw - cos*hh,
	}
}

func (c *Compositor) icon(kind components.Kind, w, h int) *image.RGBA {
	key := iconKey{kind: kind, w: w, h: h}
	img, ok := c.icons[key]
	if !ok {
		img = buildIcon(kind, w, h)
		c.icons[key] = img
	}
	return img
}

// Canvas returns the live canvas. It is overwritten by the next Draw.
func (c *Compositor) Canvas() *image.RGBA {
	return c.canvas
}

// Snapshot returns a copy of the canvas.
func (c *Compositor) Snapshot() *image.RGBA {
	out := image.NewRGBA(c.canvas.Rect)
	copy(out.Pix, c.canvas.Pix)
	return out
}

// Observe downsamples the canvas bilinearly to the observation resolution and
// converts it to single-channel intensity. Each call returns a new image.
func (c *Compositor) Observe() *image.Gray {
	draw.BiLinear.Scale(c.scaled, c.scaled.Bounds(), c.canvas, c.canvas.Bounds(), draw.Src, nil)
	obs := image.NewGray(c.scaled.Bounds())
	draw.Draw(obs, obs.Bounds(), c.scaled, image.Point{}, draw.Src)
	return obs
}
