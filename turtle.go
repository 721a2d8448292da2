package hexsketch

import "strconv"

type Heading uint8

const (
	North Heading = iota
	South
	East
	West
)

func (h Heading) String() string {
	switch h {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return "Heading(" + strconv.Itoa(int(h)) + ")"
}

// Left follows North→West→South→East→North.
func (h Heading) Left() Heading {
	switch h {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	default:
		return North
	}
}

func (h Heading) Right() Heading {
	switch h {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	default:
		return North
	}
}

type Point struct {
	X, Y int
}

// Turtle walks a canvas. Headings map onto axes as North=+y, South=-y,
// West=+x, East=-x; existing drawings depend on that mapping.
type Turtle struct {
	Heading Heading
	X, Y    int

	canvas Canvas
}

func NewTurtle(canvas Canvas) *Turtle {
	return &Turtle{
		Heading: North,
		X:       canvas.HomeX(),
		Y:       canvas.HomeY(),
		canvas:  canvas,
	}
}

func (t *Turtle) Position() Point {
	return Point{X: t.X, Y: t.Y}
}

func (t *Turtle) Forward(distance int) {
	switch t.Heading {
	case North:
		t.Y += distance
	case South:
		t.Y -= distance
	case West:
		t.X += distance
	case East:
		t.X -= distance
	}
}

func (t *Turtle) TurnLeft() {
	t.Heading = t.Heading.Left()
}

func (t *Turtle) TurnRight() {
	t.Heading = t.Heading.Right()
}

// Home moves back to the canvas center without touching the heading.
func (t *Turtle) Home() {
	t.X = t.canvas.HomeX()
	t.Y = t.canvas.HomeY()
}

// Apply performs the motion for op. Noop leaves the turtle as it is.
func (t *Turtle) Apply(op Operation) {
	switch op.Kind {
	case OpForward:
		t.Forward(op.Distance)
	case OpTurnLeft:
		t.TurnLeft()
	case OpTurnRight:
		t.TurnRight()
	case OpHome:
		t.Home()
	}
}

// Wrap snaps an axis that left the canvas back to its home coordinate and
// forces a heading pointing away from the edge it crossed. The axes are
// checked x first, then y, so when both overflow on the same step the y
// heading is the one that sticks. It reports whether anything was corrected.
func (t *Turtle) Wrap() bool {
	wrapped := false

	if t.X < 0 {
		t.X = t.canvas.HomeX()
		t.Heading = West
		wrapped = true
	} else if t.X > t.canvas.Width {
		t.X = t.canvas.HomeX()
		t.Heading = East
		wrapped = true
	}

	if t.Y < 0 {
		t.Y = t.canvas.HomeY()
		t.Heading = North
		wrapped = true
	} else if t.Y > t.canvas.Height {
		t.Y = t.canvas.HomeY()
		t.Heading = South
		wrapped = true
	}

	return wrapped
}
