package bounce

// Framebuffer is one byte per pixel, row major.
type Framebuffer struct {
	W, H   uint8
	Pixels []uint8
}

// NewFramebuffer allocates a zeroed buffer for the given bounds.
func NewFramebuffer(b Bounds) *Framebuffer {
	return &Framebuffer{
		W:      b.W,
		H:      b.H,
		Pixels: make([]uint8, int(b.W)*int(b.H)),
	}
}

// At returns the pixel at (x, y), or 0 when out of range.
func (fb *Framebuffer) At(x, y uint8) uint8 {
	if x >= fb.W || y >= fb.H {
		return 0
	}
	return fb.Pixels[int(y)*int(fb.W)+int(x)]
}

func (fb *Framebuffer) set(x, y, color uint8) {
	if x >= fb.W || y >= fb.H {
		return // overshoot draws land off-screen and are dropped
	}
	fb.Pixels[int(y)*int(fb.W)+int(x)] = color
}

func (fb *Framebuffer) clear() {
	for i := range fb.Pixels {
		fb.Pixels[i] = 0
	}
}

func (fb *Framebuffer) copyFrom(src *Framebuffer) {
	copy(fb.Pixels, src.Pixels)
}

// Screen is the display device: four byte registers in front of a pair of
// framebuffers. Register writes latch values; writing RegCommand dispatches
// the command against the latched registers. DRAW and CLEAR touch only the
// back buffer; FLUSH presents it, so readers always see the last completed
// frame.
type Screen struct {
	regs [NumRegisters]uint8

	back  *Framebuffer
	front *Framebuffer

	output Output
	frames uint64
	dirty  bool
}

// NewScreen creates a screen for the given bounds with no output attached.
func NewScreen(b Bounds) *Screen {
	return &Screen{
		back:  NewFramebuffer(b),
		front: NewFramebuffer(b),
	}
}

// Attach directs every presented frame to out. A nil out detaches.
func (s *Screen) Attach(out Output) {
	s.output = out
}

// WriteRegister implements Port.
func (s *Screen) WriteRegister(reg int, value uint8) {
	if reg < 0 || reg >= NumRegisters {
		return
	}
	s.regs[reg] = value
	if reg != RegCommand {
		return
	}

	switch value {
	case CmdClear:
		s.back.clear()
	case CmdDraw:
		s.back.set(s.regs[RegX], s.regs[RegY], s.regs[RegColor])
	case CmdFlush:
		s.front.copyFrom(s.back)
		s.frames++
		s.dirty = true
		if s.output != nil {
			s.output.Present(s.front)
		}
	default:
		// CmdNop and unknown codes
	}
}

// GetPixel reads the presented frame.
func (s *Screen) GetPixel(x, y uint8) uint8 {
	return s.front.At(x, y)
}

// Bounds returns the screen dimensions.
func (s *Screen) Bounds() Bounds {
	return Bounds{W: s.front.W, H: s.front.H}
}

// Frames returns how many frames have been presented.
func (s *Screen) Frames() uint64 {
	return s.frames
}

// Dirty reports whether a frame was presented since the last SetDirty(false).
func (s *Screen) Dirty() bool {
	return s.dirty
}

func (s *Screen) SetDirty(dirty bool) {
	s.dirty = dirty
}

// Reset clears registers, both buffers and the frame counter.
func (s *Screen) Reset() {
	for i := range s.regs {
		s.regs[i] = 0
	}
	s.back.clear()
	s.front.clear()
	s.frames = 0
	s.dirty = false
}
