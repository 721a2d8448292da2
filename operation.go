package hexsketch

import (
	"strconv"

	"golang.org/x/sync/errgroup"
)

type OpKind uint8

const (
	OpNoop OpKind = iota
	OpHome
	OpForward
	OpTurnLeft
	OpTurnRight
)

var opKindNames = [...]string{
	OpNoop:      "Noop",
	OpHome:      "Home",
	OpForward:   "Forward",
	OpTurnLeft:  "TurnLeft",
	OpTurnRight: "TurnRight",
}

func (k OpKind) String() string {
	if int(k) < len(opKindNames) {
		return opKindNames[k]
	}
	return "OpKind(" + strconv.Itoa(int(k)) + ")"
}

// Operation is one decoded input byte. Distance is only set for OpForward,
// Byte only for OpNoop.
type Operation struct {
	Kind     OpKind
	Distance int
	Byte     byte
}

func Home() Operation { return Operation{Kind: OpHome} }
func Forward(distance int) Operation { return Operation{Kind: OpForward, Distance: distance} }
func TurnLeft() Operation { return Operation{Kind: OpTurnLeft} }
func TurnRight() Operation { return Operation{Kind: OpTurnRight} }
func Noop(b byte) Operation { return Operation{Kind: OpNoop, Byte: b} }

func (o Operation) String() string {
	switch o.Kind {
	case OpForward:
		return "Forward(" + strconv.Itoa(o.Distance) + ")"
	case OpNoop:
		return "Noop(" + strconv.Itoa(int(o.Byte)) + ")"
	default:
		return o.Kind.String()
	}
}

// Decode maps a single byte to its operation. Every byte value decodes;
// anything outside the table becomes a Noop carrying the byte.
func (c Canvas) Decode(b byte) Operation {
	switch {
	case b == '0':
		return Home()
	case b >= '1' && b <= '9':
		return Forward(int(b-'0') * c.Stride())
	case b == 'a' || b == 'b' || b == 'c':
		return TurnLeft()
	case b == 'd' || b == 'e' || b == 'f':
		return TurnRight()
	default:
		return Noop(b)
	}
}

func (c Canvas) DecodeBytes(input []byte) []Operation {
	ops := make([]Operation, len(input))
	for i, b := range input {
		ops[i] = c.Decode(b)
	}
	return ops
}

// DecodeParallel splits input into one contiguous index range per worker.
// Each range writes only its own slots of the result, so the returned order
// never depends on which worker finished first.
func (c Canvas) DecodeParallel(input []byte, workers int) []Operation {
	if workers <= 1 || len(input) < 2 {
		return c.DecodeBytes(input)
	}
	if workers > len(input) {
		workers = len(input)
	}

	ops := make([]Operation, len(input))
	chunk := (len(input) + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < len(input); lo += chunk {
		lo, hi := lo, min(lo+chunk, len(input))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				ops[i] = c.Decode(input[i])
			}
			return nil
		})
	}
	// Decode cannot fail, so Wait only joins.
	_ = g.Wait()

	return ops
}
