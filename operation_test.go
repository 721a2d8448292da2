package hexsketch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeTable(t *testing.T) {
	c := DefaultConfig().Canvas

	tests := []struct {
		in   byte
		want Operation
	}{
		{'0', Home()},
		{'1', Forward(40)},
		{'5', Forward(200)},
		{'9', Forward(360)},
		{'a', TurnLeft()},
		{'b', TurnLeft()},
		{'c', TurnLeft()},
		{'d', TurnRight()},
		{'e', TurnRight()},
		{'f', TurnRight()},
		{'z', Noop('z')},
		{'A', Noop('A')},
		{'g', Noop('g')},
		{0x00, Noop(0x00)},
		{0xff, Noop(0xff)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Decode(tt.in), "byte %q", tt.in)
	}
}

func TestDecodeIsTotal(t *testing.T) {
	c := DefaultConfig().Canvas
	for v := 0; v <= 255; v++ {
		b := byte(v)
		op := c.Decode(b)
		switch {
		case b >= '1' && b <= '9':
			assert.Equal(t, OpForward, op.Kind)
			assert.Equal(t, int(b-'0')*c.Height/10, op.Distance)
			assert.Greater(t, op.Distance, 0)
		case op.Kind == OpNoop:
			assert.Equal(t, b, op.Byte)
		default:
			assert.Contains(t, []OpKind{OpHome, OpTurnLeft, OpTurnRight}, op.Kind, "byte %d", v)
		}
	}
}

func TestDecodeScalesWithCanvasHeight(t *testing.T) {
	c := Canvas{Width: 250, Height: 250}
	assert.Equal(t, Forward(25), c.Decode('1'))
	assert.Equal(t, Forward(225), c.Decode('9'))
}

func TestDecodeParallelPreservesOrder(t *testing.T) {
	c := DefaultConfig().Canvas
	input := append(RandomHex(4096, 7), []byte("xyz!\x00 0123456789abcdef")...)

	want := c.DecodeBytes(input)
	for _, workers := range []int{0, 1, 2, 3, 8, 64, 10000} {
		assert.Equal(t, want, c.DecodeParallel(input, workers), "workers=%d", workers)
	}
}

func TestDecodeParallelEmpty(t *testing.T) {
	c := DefaultConfig().Canvas
	assert.Empty(t, c.DecodeParallel(nil, 4))
	assert.Equal(t, []Operation{Forward(40)}, c.DecodeParallel([]byte("1"), 4))
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "Forward(40)", Forward(40).String())
	assert.Equal(t, "Noop(122)", Noop('z').String())
	assert.Equal(t, "TurnLeft", TurnLeft().String())
	assert.Equal(t, "Home", Home().String())
	assert.Equal(t, "OpKind(9)", OpKind(9).String())
}

func BenchmarkDecodeBytes(b *testing.B) {
	c := DefaultConfig().Canvas
	input := RandomHex(1<<16, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.DecodeBytes(input)
	}
}

func BenchmarkDecodeParallel(b *testing.B) {
	c := DefaultConfig().Canvas
	input := RandomHex(1<<16, 1)

	tests := []struct {
		name    string
		workers int
	}{
		{"2", 2},
		{"4", 4},
		{"8", 8},
	}

	b.ResetTimer()
	for _, tt := range tests {
		b.Run(tt.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				c.DecodeParallel(input, tt.workers)
			}
		})
	}
}
