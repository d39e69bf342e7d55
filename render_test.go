package bounce

import (
	"fmt"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

type registerWrite struct {
	reg   int
	value uint8
}

// recordingPort captures every register write in order.
type recordingPort struct {
	writes []registerWrite
}

func (p *recordingPort) WriteRegister(reg int, value uint8) {
	p.writes = append(p.writes, registerWrite{reg: reg, value: value})
}

func (p *recordingPort) draws() int {
	n := 0
	for _, w := range p.writes {
		if w.reg == RegCommand && w.value == CmdDraw {
			n++
		}
	}
	return n
}

func TestFillRectPixelCount(t *testing.T) {
	for _, tc := range []struct {
		name string
		w, h uint8
	}{
		{"10x10", 10, 10},
		{"1x1", 1, 1},
		{"5x3", 5, 3},
		{"zero width", 0, 7},
		{"zero height", 7, 0},
		{"zero both", 0, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			port := &recordingPort{}
			FillRect(port, Rect{X: 20, Y: 30, W: tc.w, H: tc.h}, BoxColor, FillInequality)
			assert.Equal(t, int(tc.w)*int(tc.h), port.draws())
		})
	}
}

func TestFillRectWriteOrder(t *testing.T) {
	port := &recordingPort{}
	FillRect(port, Rect{X: 3, Y: 4, W: 2, H: 1}, 0xFF, FillInequality)

	want := []registerWrite{
		{RegX, 3}, {RegY, 4}, {RegColor, 0xFF}, {RegCommand, CmdDraw},
		{RegX, 4}, {RegY, 4}, {RegColor, 0xFF}, {RegCommand, CmdDraw},
	}
	assert.Equal(t, len(want), len(port.writes))
	for i, w := range want {
		assert.Equal(t, w, port.writes[i], fmt.Sprintf("write %d", i))
	}
}

func TestFillRectColumnSweep(t *testing.T) {
	// Columns left to right, each column top to bottom.
	port := &recordingPort{}
	FillRect(port, Rect{X: 0, Y: 0, W: 2, H: 2}, 1, FillInequality)

	var coords [][2]uint8
	for i := 0; i+3 < len(port.writes); i += 4 {
		coords = append(coords, [2]uint8{port.writes[i].value, port.writes[i+1].value})
	}
	assert.Equal(t, [][2]uint8{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, coords)
}

func TestFillPolicies(t *testing.T) {
	t.Run("equality matches inequality on demo geometry", func(t *testing.T) {
		a := &recordingPort{}
		b := &recordingPort{}
		r := Rect{X: StartX, Y: StartY, W: BoxW, H: BoxH}
		FillRect(a, r, BoxColor, FillInequality)
		FillRect(b, r, BoxColor, FillEquality)
		assert.Equal(t, a.draws(), b.draws())
	})

	t.Run("inequality terminates on zero size", func(t *testing.T) {
		port := &recordingPort{}
		FillRect(port, Rect{}, BoxColor, FillInequality)
		assert.Equal(t, 0, port.draws())
	})
}
