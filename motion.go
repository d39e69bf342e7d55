package bounce

// StepAxis advances one axis by one frame and returns the new position and
// velocity. All arithmetic wraps in uint8; that wraparound is the detection
// mechanism, not a hazard:
//
//	p' = p + v
//	p'+size >= limit  -> far edge reached, reflect and re-apply
//	limit < p'        -> p' wrapped below zero, reflect and re-apply
//
// A reflection negates v and applies the negated velocity in the same step,
// so the bounce lands in the frame the wall is hit. At most one reflection
// happens per axis per step: a velocity larger than the margin to both walls
// overshoots and gets corrected on a later frame.
func StepAxis(p, v, size, limit uint8) (uint8, uint8) {
	p += v
	if p+size >= limit || limit < p {
		v = Negate(v)
		p += v
	}
	return p, v
}

// Step advances both axes in place, X then Y.
func Step(r *Rect, vel *Velocity, b Bounds) {
	r.X, vel.DX = StepAxis(r.X, vel.DX, r.W, b.W)
	r.Y, vel.DY = StepAxis(r.Y, vel.DY, r.H, b.H)
}
