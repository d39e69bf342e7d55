package bounce

import (
	"context"
	"time"
)

// System owns the screen and the demo state and runs the frame loop.
type System struct {
	screen *Screen
	box    Rect
	vel    Velocity
	bounds Bounds
	policy FillPolicy

	// Interval paces Run. Zero runs frames back to back.
	Interval time.Duration
}

// NewSystem creates a system over its own screen with the demo bounds.
func NewSystem() *System {
	return NewSystemWithBounds(DefaultBounds)
}

func NewSystemWithBounds(b Bounds) *System {
	return &System{
		screen: NewScreen(b),
		bounds: b,
	}
}

// Initialize resets the screen and reloads the start geometry and velocity.
// Calling it again re-runs the demo from scratch, like an external reset.
func (sys *System) Initialize() {
	sys.screen.Reset()
	sys.box = Rect{X: StartX, Y: StartY, W: BoxW, H: BoxH}
	sys.vel = Velocity{DX: StartDX, DY: StartDY}
	sys.policy = FillInequality
}

// Screen exposes the display device, e.g. for attaching an output or for a
// frontend that polls pixels.
func (sys *System) Screen() *Screen {
	return sys.screen
}

// Box returns the current rectangle.
func (sys *System) Box() Rect {
	return sys.box
}

// Vel returns the current velocity.
func (sys *System) Vel() Velocity {
	return sys.vel
}

// Frame runs one iteration: CLEAR, draw the box, FLUSH, then integrate
// motion. The order is load-bearing: the presented frame always shows the
// position from before the motion update.
func (sys *System) Frame() {
	sys.screen.WriteRegister(RegCommand, CmdClear)
	FillRect(sys.screen, sys.box, BoxColor, sys.policy)
	sys.screen.WriteRegister(RegCommand, CmdFlush)
	Step(&sys.box, &sys.vel, sys.bounds)
}

// Run repeats Frame until ctx is done. The per-frame ctx check stands in for
// the external reset line; the loop itself has no terminal state.
func (sys *System) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		start := time.Now()
		sys.Frame()
		if sys.Interval > 0 {
			if elapsed := time.Since(start); elapsed < sys.Interval {
				time.Sleep(sys.Interval - elapsed)
			}
		}
	}
}

// RunFrames runs exactly n frames, honoring ctx between frames.
func (sys *System) RunFrames(ctx context.Context, n uint64) {
	for i := uint64(0); i < n; i++ {
		select {
		case <-ctx.Done():
			return
		default:
		}
		sys.Frame()
	}
}
