package display

import (
	"image"
	"image/color"
	"testing"

	"github.com/pthm-cable/dogfight/input"
)

func TestCopyPixels(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 3, 2))
	frame.SetRGBA(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	frame.SetRGBA(2, 1, color.RGBA{R: 9, G: 8, B: 7, A: 255})

	dst := make([]color.RGBA, 6)
	if err := copyPixels(dst, frame, 3, 2); err != nil {
		t.Fatal(err)
	}
	if dst[0] != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("top-left = %v", dst[0])
	}
	if dst[5] != (color.RGBA{R: 9, G: 8, B: 7, A: 255}) {
		t.Errorf("bottom-right = %v", dst[5])
	}
}

func TestCopyPixelsSizeMismatch(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := copyPixels(make([]color.RGBA, 6), frame, 3, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestEveryKeyHasKeyCode(t *testing.T) {
	for _, k := range input.Keys() {
		if _, ok := keyCodes[k]; !ok {
			t.Errorf("key %q has no raylib key code", k)
		}
	}
}
