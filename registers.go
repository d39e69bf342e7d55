package bounce

// Screen protocol register offsets. Writing RegCommand triggers the device
// side effect using the values latched in the other three registers.
const (
	RegX       = 0
	RegY       = 1
	RegColor   = 2
	RegCommand = 3

	NumRegisters = 4
)

// Command codes accepted by RegCommand.
const (
	CmdNop   uint8 = 0
	CmdDraw  uint8 = 1
	CmdClear uint8 = 2
	CmdFlush uint8 = 3
)

// Port is the write-only register interface a program drives the display
// through. Each write is processed synchronously; there is no acknowledgment
// and no backpressure.
type Port interface {
	WriteRegister(reg int, value uint8)
}
