// Package display shows arena frames in a raylib window and turns the
// keyboard into actions for manual play.
package display

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/dogfight/input"
)

// ErrClosed is returned by Show after Close.
var ErrClosed = errors.New("display closed")

const (
	hudHeight   = 28
	buttonWidth = 80
)

// keyCodes maps the manual-play key table onto raylib key codes.
var keyCodes = map[rune]int32{
	'w': rl.KeyW,
	's': rl.KeyS,
	'a': rl.KeyA,
	'd': rl.KeyD,
	'm': rl.KeyM,
}

// Window is a raylib window sized to the arena with a one-line HUD below it.
// All methods must be called from the goroutine that opened it.
type Window struct {
	width, height int

	texture rl.Texture2D
	pixels  []color.RGBA

	status         string
	resetRequested bool
	closed         bool
}

// Open creates the window and its frame texture.
func Open(width, height int, title string, fps int32) *Window {
	rl.InitWindow(int32(width), int32(height+hudHeight), title)
	rl.SetTargetFPS(fps)

	img := rl.GenImageColor(width, height, rl.White)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	return &Window{
		width:   width,
		height:  height,
		texture: texture,
		pixels:  make([]color.RGBA, width*height),
	}
}

// Show uploads frame and draws it with the HUD.
func (w *Window) Show(frame *image.RGBA) error {
	if w.closed {
		return ErrClosed
	}
	if err := copyPixels(w.pixels, frame, w.width, w.height); err != nil {
		return err
	}
	rl.UpdateTexture(w.texture, w.pixels)

	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)
	rl.DrawTexture(w.texture, 0, 0, rl.White)

	y := float32(w.height)
	gui.StatusBar(rl.Rectangle{X: 0, Y: y, Width: float32(w.width - buttonWidth), Height: hudHeight}, w.status)
	if gui.Button(rl.Rectangle{X: float32(w.width - buttonWidth), Y: y, Width: buttonWidth, Height: hudHeight}, "Reset") {
		w.resetRequested = true
	}
	rl.EndDrawing()
	return nil
}

// SetStatus sets the HUD text shown on the next frame.
func (w *Window) SetStatus(s string) {
	w.status = s
}

// ResetRequested reports whether the reset button was pressed since the last
// call.
func (w *Window) ResetRequested() bool {
	r := w.resetRequested
	w.resetRequested = false
	return r
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.closed || rl.WindowShouldClose()
}

// PollKeys publishes the action of every held key. When several keys are held
// the last one in the key table wins.
func (w *Window) PollKeys(m *input.Mailbox) {
	for _, k := range input.Keys() {
		if !rl.IsKeyDown(keyCodes[k]) {
			continue
		}
		if a, ok := input.ActionForKey(k); ok {
			m.Publish(a)
		}
	}
}

// Close releases the texture and the window. Calling it again is a no-op.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	rl.UnloadTexture(w.texture)
	rl.CloseWindow()
	return nil
}

// copyPixels converts frame into raylib's pixel layout.
func copyPixels(dst []color.RGBA, frame *image.RGBA, width, height int) error {
	b := frame.Bounds()
	if b.Dx() != width || b.Dy() != height {
		return fmt.Errorf("frame is %dx%d, window is %dx%d", b.Dx(), b.Dy(), width, height)
	}
	for y := 0; y < height; y++ {
		row := frame.Pix[y*frame.Stride:]
		for x := 0; x < width; x++ {
			o := x * 4
			dst[y*width+x] = color.RGBA{R: row[o], G: row[o+1], B: row[o+2], A: row[o+3]}
		}
	}
	return nil
}
