package hexsketch

import (
	"log"
	"strconv"
	"strings"
)

// Path is the polyline produced by a run. Points[0] is the initial move to
// home; every later point is a line-to recorded after one operation.
type Path struct {
	Points []Point
	Wraps  int
}

// Interpret replays ops on a fresh turtle. One point is recorded per
// operation, before wraparound is applied, so the result always holds
// len(ops)+1 points. Noops are reported on diag, or on the standard logger
// when diag is nil.
func (c Canvas) Interpret(ops []Operation, diag *log.Logger) Path {
	if diag == nil {
		diag = log.Default()
	}

	turtle := NewTurtle(c)
	path := Path{
		Points: make([]Point, 0, len(ops)+1),
	}
	path.Points = append(path.Points, c.Home())

	for _, op := range ops {
		if op.Kind == OpNoop {
			diag.Printf("illegal byte encountered %d", op.Byte)
		}
		turtle.Apply(op)
		path.Points = append(path.Points, turtle.Position())

		if turtle.Wrap() {
			path.Wraps++
		}
	}

	return path
}

// Data formats the path as SVG path data: an absolute move followed by one
// absolute line per remaining point.
func (p Path) Data() string {
	if len(p.Points) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(p.Points) * 10)
	for i, pt := range p.Points {
		if i == 0 {
			sb.WriteString("M")
		} else {
			sb.WriteString(" L")
		}
		sb.WriteString(strconv.Itoa(pt.X))
		sb.WriteRune(',')
		sb.WriteString(strconv.Itoa(pt.Y))
	}
	return sb.String()
}

// Sketch decodes input with the given number of workers and interprets the
// result.
func (c Canvas) Sketch(input []byte, workers int, diag *log.Logger) ([]Operation, Path) {
	ops := c.DecodeParallel(input, workers)
	return ops, c.Interpret(ops, diag)
}
