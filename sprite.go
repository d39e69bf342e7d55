package bounce

// Rect is the bounding box drawn each frame. All coordinates are uint8; the
// motion integrator keeps X+W <= bounds.W and Y+H <= bounds.H for velocities
// that fit the remaining margin.
type Rect struct {
	X, Y uint8
	W, H uint8
}

// Right returns the far X edge, wrapping in uint8 like the device arithmetic.
func (r Rect) Right() uint8 {
	return r.X + r.W
}

// Bottom returns the far Y edge, wrapping in uint8.
func (r Rect) Bottom() uint8 {
	return r.Y + r.H
}

// Velocity is per-frame displacement stored two's complement in uint8:
// Negate(3) is -3. Reflection negates a component without changing magnitude.
type Velocity struct {
	DX, DY uint8
}

// Negate returns the two's-complement negation of a uint8 displacement.
func Negate(v uint8) uint8 {
	return -v
}

// Bounds is the visible frame size. Both sides must stay strictly below 255
// so a wrapped-negative position is always distinguishable from an on-screen
// one by an unsigned comparison.
type Bounds struct {
	W, H uint8
}

// Demo viewport size.
const (
	ViewWidth  = 240
	ViewHeight = 192
)

// DefaultBounds is the demo viewport.
var DefaultBounds = Bounds{W: ViewWidth, H: ViewHeight}

// Start constants of the demo program.
const (
	StartX  uint8 = 1
	StartY  uint8 = 1
	BoxW    uint8 = 10
	BoxH    uint8 = 10
	StartDX uint8 = 3
	StartDY uint8 = 5

	BoxColor uint8 = 0xFF
)
