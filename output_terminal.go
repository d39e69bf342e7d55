package bounce

import (
	"fmt"

	tm "github.com/buger/goterm"
)

// Character cell footprint in pixels. Terminal cells are roughly twice as
// tall as wide, so 2x4 keeps the picture aspect close to the framebuffer's.
const (
	cellW = 2
	cellH = 4
)

// TerminalOutput redraws the terminal on every presented frame, one character
// per cellW x cellH pixel block.
type TerminalOutput struct{}

func NewTerminalOutput() *TerminalOutput {
	return &TerminalOutput{}
}

func (t *TerminalOutput) Present(fb *Framebuffer) {
	tm.Clear()
	tm.MoveCursor(1, 1)

	for y := 0; y < int(fb.H); y += cellH {
		for x := 0; x < int(fb.W); x += cellW {
			if blockSet(fb, x, y) {
				fmt.Fprint(tm.Screen, "#")
			} else {
				fmt.Fprint(tm.Screen, " ")
			}
		}
		fmt.Fprintln(tm.Screen)
	}

	tm.Flush()
}

// blockSet reports whether any pixel in the cell block is lit.
func blockSet(fb *Framebuffer, x, y int) bool {
	for dy := 0; dy < cellH && y+dy < int(fb.H); dy++ {
		for dx := 0; dx < cellW && x+dx < int(fb.W); dx++ {
			if fb.At(uint8(x+dx), uint8(y+dy)) != 0 {
				return true
			}
		}
	}
	return false
}

func (t *TerminalOutput) Close() error {
	tm.Clear()
	tm.Flush()
	return nil
}
