package bounce

// Output receives every presented frame. Present must not retain fb; the
// screen reuses the buffer for the next frame.
type Output interface {
	Present(fb *Framebuffer)
	Close() error
}
