package renderer

import (
	"image/color"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/dogfight/components"
	"github.com/pthm-cable/dogfight/config"
)

func newShip(kind components.Kind, x, y, angle float64) components.Body {
	cfg := config.Default()
	sc := cfg.Player
	if kind == components.KindEnemy {
		sc = cfg.Enemy
	}
	return components.NewShip(kind, r2.Vec{X: x, Y: y}, angle, 0, sc).Body
}

func isWhite(c color.RGBA) bool {
	return c.R == 0xff && c.G == 0xff && c.B == 0xff
}

func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d <= tol && d >= -tol
}

func TestBlankFrame(t *testing.T) {
	c := NewCompositor(config.Default())
	c.Draw(nil)

	for i, v := range c.Canvas().Pix {
		if v != 0xff {
			t.Fatalf("canvas byte %d = %d, want 255", i, v)
		}
	}

	obs := c.Observe()
	if obs.Bounds().Dx() != 80 || obs.Bounds().Dy() != 80 {
		t.Fatalf("observation size = %v, want 80x80", obs.Bounds())
	}
	for i, v := range obs.Pix {
		if v < 250 {
			t.Fatalf("observation pixel %d = %d, want white", i, v)
		}
	}
}

func TestDrawPlayerAtCenter(t *testing.T) {
	c := NewCompositor(config.Default())
	c.Draw([]components.Body{newShip(components.KindPlayer, 250, 250, 90)})

	got := c.Canvas().RGBAAt(250, 250)
	if !near(got.R, playerColor.R, 3) || !near(got.G, playerColor.G, 3) || !near(got.B, playerColor.B, 3) {
		t.Errorf("center pixel = %v, want %v", got, playerColor)
	}

	obs := c.Observe()
	darkest := uint8(255)
	for y := 37; y <= 43; y++ {
		for x := 37; x <= 43; x++ {
			if v := obs.GrayAt(x, y).Y; v < darkest {
				darkest = v
			}
		}
	}
	if darkest > 230 {
		t.Errorf("darkest observation pixel near center = %d, want the player visible", darkest)
	}
}

func TestDrawFlipsY(t *testing.T) {
	c := NewCompositor(config.Default())
	c.Draw([]components.Body{newShip(components.KindEnemy, 100, 400, 0)})

	if got := c.Canvas().RGBAAt(100, 100); isWhite(got) {
		t.Errorf("pixel at canvas row 100 is white, want the enemy drawn there")
	}
	if got := c.Canvas().RGBAAt(100, 400); !isWhite(got) {
		t.Errorf("pixel at canvas row 400 = %v, want white", got)
	}
	if got := c.Canvas().RGBAAt(100, 100); !near(got.R, enemyColor.R, 3) {
		t.Errorf("enemy pixel = %v, want %v", got, enemyColor)
	}
}

func TestDrawClipsToHitbox(t *testing.T) {
	c := NewCompositor(config.Default())
	b := newShip(components.KindPlayer, 250, 250, 0)
	c.Draw([]components.Body{b})

	// The hitbox spans y in [242, 258]; nothing is painted outside it.
	for x := 0; x < 500; x++ {
		for _, row := range []int{240, 260} {
			if got := c.Canvas().RGBAAt(x, row); !isWhite(got) {
				t.Fatalf("pixel (%d, %d) = %v outside hitbox box", x, row, got)
			}
		}
	}
}

func TestSkipPartiallyOutside(t *testing.T) {
	c := NewCompositor(config.Default())
	c.Draw([]components.Body{
		newShip(components.KindEnemy, 5, 250, 0),
		newShip(components.KindEnemy, 250, 497, 0),
	})
	for i, v := range c.Canvas().Pix {
		if v != 0xff {
			t.Fatalf("canvas byte %d = %d, want nothing drawn", i, v)
		}
	}
}

func TestMissileIcon(t *testing.T) {
	cfg := config.Default()
	c := NewCompositor(cfg)
	m := components.NewMissile(r2.Vec{X: 300, Y: 200}, 0, cfg.Missile)
	c.Draw([]components.Body{m})

	got := c.Canvas().RGBAAt(300, 300)
	if got.R > 10 || got.G > 10 || got.B > 10 {
		t.Errorf("missile center pixel = %v, want black", got)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	c := NewCompositor(config.Default())
	c.Draw([]components.Body{newShip(components.KindPlayer, 250, 250, 90)})
	snap := c.Snapshot()
	c.Draw(nil)

	if isWhite(snap.RGBAAt(250, 250)) {
		t.Error("snapshot changed after redraw")
	}
	if !isWhite(c.Canvas().RGBAAt(250, 250)) {
		t.Error("canvas not cleared by redraw")
	}
}
