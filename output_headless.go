package bounce

// HeadlessOutput discards pixels and counts frames. Useful for benchmarks and
// for driving the demo loop without a display.
type HeadlessOutput struct {
	frames uint64
}

func NewHeadlessOutput() *HeadlessOutput {
	return &HeadlessOutput{}
}

func (h *HeadlessOutput) Present(*Framebuffer) {
	h.frames++
}

func (h *HeadlessOutput) FrameCount() uint64 {
	return h.frames
}

func (h *HeadlessOutput) Close() error {
	return nil
}
