package bounce

// FillPolicy selects how the fill loops decide they are done.
type FillPolicy int

const (
	// FillInequality stops a sweep once the offset reaches or passes the
	// declared size. Correct for any size, including zero.
	FillInequality FillPolicy = iota

	// FillEquality stops only when the offset exactly equals the size. It
	// matches FillInequality for the step-by-one sweep below, but it is
	// fragile: any variant that moves the cursor past the exact bound never
	// terminates. Kept selectable for parity with the second observed
	// rendering routine.
	FillEquality
)

func (p FillPolicy) done(offset, size uint8) bool {
	if p == FillEquality {
		return offset == size
	}
	return offset >= size
}

// FillRect draws a filled rectangle by emitting one DRAW per covered pixel,
// sweeping columns left to right and each column top to bottom. Registers are
// latched in X, Y, COLOR order before each command write.
func FillRect(p Port, r Rect, color uint8, policy FillPolicy) {
	for ox := uint8(0); !policy.done(ox, r.W); ox++ {
		for oy := uint8(0); !policy.done(oy, r.H); oy++ {
			p.WriteRegister(RegX, r.X+ox)
			p.WriteRegister(RegY, r.Y+oy)
			p.WriteRegister(RegColor, color)
			p.WriteRegister(RegCommand, CmdDraw)
		}
	}
}
