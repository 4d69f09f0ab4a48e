package game

import (
	"errors"
	"image"
	"testing"

	"github.com/pthm-cable/dogfight/config"
)

type fakeDisplay struct {
	shown  int
	closed int
	last   *image.RGBA
}

func (d *fakeDisplay) Show(frame *image.RGBA) error {
	d.shown++
	d.last = frame
	return nil
}

func (d *fakeDisplay) Close() error {
	d.closed++
	return nil
}

func TestEnvRender(t *testing.T) {
	display := &fakeDisplay{}
	env := NewEnv(config.Default(), WithDisplay(display))

	tests := []struct {
		name    string
		mode    string
		wantErr error
		wantImg bool
	}{
		{"human", RenderHuman, nil, false},
		{"rgb array", RenderRGBArray, nil, true},
		{"unknown", "ansi", ErrInvalidRenderMode, false},
		{"empty", "", ErrInvalidRenderMode, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := env.Render(tt.mode)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if (img != nil) != tt.wantImg {
				t.Fatalf("image returned = %v, want %v", img != nil, tt.wantImg)
			}
			if img != nil && img.Bounds() != image.Rect(0, 0, 500, 500) {
				t.Fatalf("frame bounds = %v", img.Bounds())
			}
		})
	}
	if display.shown != 1 {
		t.Errorf("display shown %d times, want 1", display.shown)
	}
}

func TestEnvRenderArrayIsCopy(t *testing.T) {
	env := NewEnv(config.Default())
	frame, err := env.Render(RenderRGBArray)
	if err != nil {
		t.Fatal(err)
	}
	for i := range frame.Pix {
		frame.Pix[i] = 0
	}
	again, _ := env.Render(RenderRGBArray)
	if again.Pix[0] != 0xff {
		t.Errorf("mutating a rendered frame changed the canvas")
	}
}

func TestEnvRenderHumanWithoutDisplay(t *testing.T) {
	env := NewEnv(config.Default())
	if _, err := env.Render(RenderHuman); !errors.Is(err, ErrNoDisplay) {
		t.Fatalf("error = %v, want ErrNoDisplay", err)
	}
}

func TestEnvCloseIdempotent(t *testing.T) {
	display := &fakeDisplay{}
	env := NewEnv(config.Default(), WithDisplay(display))
	for range 3 {
		if err := env.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}
	if display.closed != 1 {
		t.Errorf("display closed %d times, want 1", display.closed)
	}
	if _, err := env.Render(RenderHuman); !errors.Is(err, ErrNoDisplay) {
		t.Errorf("render after close: %v, want ErrNoDisplay", err)
	}
}

func TestEnvStepAndReset(t *testing.T) {
	env := NewEnv(config.Default())
	res, err := env.Step(ActionTurnLeft)
	if err != nil {
		t.Fatal(err)
	}
	if res.Done || res.Reward != 1 || res.Info != (Info{}) {
		t.Fatalf("unexpected step result %+v", res)
	}
	if res.Observation.Bounds() != image.Rect(0, 0, 80, 80) {
		t.Fatalf("observation bounds = %v", res.Observation.Bounds())
	}
	if got := env.Arena().Player().Angle; got != 96 {
		t.Errorf("angle after TURN_LEFT = %v, want 96", got)
	}
	env.Reset()
	if env.Arena().Tick() != 0 {
		t.Errorf("tick after reset = %d", env.Arena().Tick())
	}
	if _, err := env.Step(Action(6)); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("Step(6) error = %v", err)
	}
}
