package bounce

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

// capturingOutput snapshots the lit pixel count and one probe pixel of every
// presented frame.
type capturingOutput struct {
	probe  [2]uint8
	lit    []int
	probes []uint8
}

func (c *capturingOutput) Present(fb *Framebuffer) {
	n := 0
	for _, p := range fb.Pixels {
		if p != 0 {
			n++
		}
	}
	c.lit = append(c.lit, n)
	c.probes = append(c.probes, fb.At(c.probe[0], c.probe[1]))
}

func (c *capturingOutput) Close() error { return nil }

func TestFrameShowsPreUpdatePosition(t *testing.T) {
	sys := NewSystem()
	sys.Initialize()

	before := sys.Box()
	sys.Frame()
	after := sys.Box()

	assert.True(t, before != after, "motion must advance after the frame")
	assert.Equal(t, BoxColor, sys.Screen().GetPixel(before.X, before.Y),
		"presented frame must show the pre-update position")
}

func TestFramePixelCoverage(t *testing.T) {
	sys := NewSystem()
	sys.Initialize()

	box := sys.Box()
	sys.Frame()

	lit := 0
	screen := sys.Screen()
	b := screen.Bounds()
	for y := uint8(0); y < b.H; y++ {
		for x := uint8(0); x < b.W; x++ {
			if screen.GetPixel(x, y) != 0 {
				lit++
				assert.True(t, x >= box.X && x < box.Right(), fmt.Sprintf("lit pixel x=%d outside box", x))
				assert.True(t, y >= box.Y && y < box.Bottom(), fmt.Sprintf("lit pixel y=%d outside box", y))
			}
		}
	}
	assert.Equal(t, int(box.W)*int(box.H), lit)
}

func TestFrameClearsPreviousBox(t *testing.T) {
	sys := NewSystem()
	sys.Initialize()

	out := &capturingOutput{probe: [2]uint8{StartX, StartY}}
	sys.Screen().Attach(out)

	sys.Frame()
	sys.Frame()

	// Every frame holds exactly one box worth of pixels; the old position
	// is wiped by CLEAR, not accumulated.
	assert.Equal(t, []int{int(BoxW) * int(BoxH), int(BoxW) * int(BoxH)}, out.lit)
	assert.Equal(t, BoxColor, out.probes[0], "first frame draws the start position")
	assert.Equal(t, uint8(0), out.probes[1], "second frame must not redraw the start position")
}

func TestRunFrames(t *testing.T) {
	sys := NewSystem()
	sys.Initialize()

	sys.RunFrames(context.Background(), 5)
	assert.Equal(t, uint64(5), sys.Screen().Frames())
}

func TestRunStopsOnCancel(t *testing.T) {
	sys := NewSystem()
	sys.Initialize()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sys.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop on context cancellation")
	}
}

func TestInitializeResets(t *testing.T) {
	sys := NewSystem()
	sys.Initialize()
	sys.RunFrames(context.Background(), 10)

	sys.Initialize()
	assert.Equal(t, Rect{X: StartX, Y: StartY, W: BoxW, H: BoxH}, sys.Box())
	assert.Equal(t, Velocity{DX: StartDX, DY: StartDY}, sys.Vel())
	assert.Equal(t, uint64(0), sys.Screen().Frames())
}

func TestSystemBoundsInvariant(t *testing.T) {
	sys := NewSystem()
	sys.Initialize()

	for frame := 0; frame < 2000; frame++ {
		sys.Frame()
		box := sys.Box()
		assert.True(t, box.X <= ViewWidth-box.W, fmt.Sprintf("frame %d: x=%d out of range", frame, box.X))
		assert.True(t, box.Y <= ViewHeight-box.H, fmt.Sprintf("frame %d: y=%d out of range", frame, box.Y))
	}
}

func BenchmarkFrame(b *testing.B) {
	sys := NewSystem()
	sys.Initialize()
	sys.Screen().Attach(NewHeadlessOutput())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sys.Frame()
	}
}
