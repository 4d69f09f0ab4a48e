package game

import (
	"fmt"
	"image"

	"github.com/pthm-cable/dogfight/config"
)

// Render modes accepted by Env.Render.
const (
	RenderHuman    = "human"
	RenderRGBArray = "rgb_array"
)

// Info carries auxiliary step data. It is currently always empty.
type Info struct{}

// StepResult is the outcome of one tick.
type StepResult struct {
	Observation *image.Gray
	Reward      float64
	Done        bool
	Info        Info
}

// Display presents frames to a human.
type Display interface {
	Show(frame *image.RGBA) error
	Close() error
}

// EnvOption configures an Env.
type EnvOption func(*Env)

// WithDisplay attaches a display used by Render(RenderHuman).
func WithDisplay(d Display) EnvOption {
	return func(e *Env) {
		e.display = d
	}
}

// Env exposes the arena through the reset/step/render/close contract used by
// agents. It is not safe for concurrent use.
type Env struct {
	arena   *Arena
	display Display
	closed  bool
}

// NewEnv creates an environment. The arena starts reset.
func NewEnv(cfg *config.Config, opts ...EnvOption) *Env {
	e := &Env{arena: NewArena(cfg)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Arena returns the underlying arena.
func (e *Env) Arena() *Arena {
	return e.arena
}

// Reset starts a new episode and returns its first observation.
func (e *Env) Reset() *image.Gray {
	return e.arena.Reset()
}

// Step advances one tick with the given action.
func (e *Env) Step(action Action) (StepResult, error) {
	return e.arena.Step(action)
}

// Render presents the current frame. In RenderHuman mode the frame goes to the
// attached display and nil is returned; in RenderRGBArray mode a copy of the
// canvas is returned.
func (e *Env) Render(mode string) (*image.RGBA, error) {
	switch mode {
	case RenderHuman:
		if e.display == nil || e.closed {
			return nil, fmt.Errorf("render: %w", ErrNoDisplay)
		}
		if err := e.display.Show(e.arena.Canvas()); err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		return nil, nil
	case RenderRGBArray:
		return e.arena.Snapshot(), nil
	}
	return nil, fmt.Errorf("render: %w: %q", ErrInvalidRenderMode, mode)
}

// Close releases the display. Calling it more than once is a no-op.
func (e *Env) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	if e.display == nil {
		return nil
	}
	if err := e.display.Close(); err != nil {
		return fmt.Errorf("closing display: %w", err)
	}
	return nil
}
