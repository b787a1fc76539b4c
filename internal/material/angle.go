package material

// Angle identifies a candidate movement direction. Values are ordered from
// straight down to fully sideways; the numeric value doubles as the rank
// compared against a material's MaxAngle.
type Angle uint8

const (
	AngleNone Angle = iota
	AngleDown
	AngleDiagonal
	AngleHorizontal

	numAngles
)

type direction struct {
	dy, dx int
	name   string
}

var directions = [numAngles]direction{
	AngleNone:       {0, 0, "none"},
	AngleDown:       {1, 0, "down"},
	AngleDiagonal:   {1, 1, "diagonal"},
	AngleHorizontal: {0, 1, "horizontal"},
}

// Angles returns the movement directions in the order they are tried each
// tick. The AngleNone sentinel is not included.
func Angles() []Angle {
	out := make([]Angle, 0, numAngles-1)
	for a := AngleDown; a < numAngles; a++ {
		out = append(out, a)
	}
	return out
}

// Delta returns the row and column offsets for a. Rows grow downwards and
// the column offset is always non-negative; callers mirror it.
func (a Angle) Delta() (dy, dx int) {
	if a >= numAngles {
		return 0, 0
	}
	d := directions[a]
	return d.dy, d.dx
}

// Exceeds reports whether a is more lateral than limit.
func (a Angle) Exceeds(limit Angle) bool { return a > limit }

func (a Angle) String() string {
	if a >= numAngles {
		return "unknown"
	}
	return directions[a].name
}
