package material

// State enumerates the materials a grid cell can hold.
type State uint8

const (
	Empty State = iota
	Wall
	Dirt
	Water
	Steam

	numStates
)

// Props describes how a material moves and what it can push aside.
type Props struct {
	Name string
	// MaxAngle is the most lateral direction the material will try to move in.
	MaxAngle Angle
	// Rises flips the vertical component of every move.
	Rises bool
	// Density orders materials for CanDisplace. Wall is never displaced
	// regardless of its value.
	Density uint8
}

var props = [numStates]Props{
	Empty: {Name: "empty", MaxAngle: AngleNone},
	Wall:  {Name: "wall", MaxAngle: AngleNone, Density: 255},
	Dirt:  {Name: "dirt", MaxAngle: AngleDiagonal, Density: 3},
	Water: {Name: "water", MaxAngle: AngleHorizontal, Density: 2},
	Steam: {Name: "steam", MaxAngle: AngleHorizontal, Rises: true, Density: 1},
}

// States lists every material in declaration order.
func States() []State {
	out := make([]State, numStates)
	for i := range out {
		out[i] = State(i)
	}
	return out
}

// Valid reports whether s is a known material.
func (s State) Valid() bool { return s < numStates }

// Props returns the property row for s. Unknown values behave like Wall.
func (s State) Props() Props {
	if !s.Valid() {
		return props[Wall]
	}
	return props[s]
}

func (s State) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return props[s].Name
}

// Parse maps a material name back to its State.
func Parse(name string) (State, bool) {
	for i := range props {
		if props[i].Name == name {
			return State(i), true
		}
	}
	return Empty, false
}

// Moves reports whether the material is willing to move along a.
func (s State) Moves(a Angle) bool {
	if a == AngleNone {
		return false
	}
	return !a.Exceeds(s.Props().MaxAngle)
}

// CanDisplace reports whether source may move into a cell currently holding
// target. Empty yields to every non-wall material, Wall yields to nothing and
// otherwise the denser material wins.
func CanDisplace(source, target State) bool {
	if source == Wall || target == Wall || !source.Valid() || !target.Valid() {
		return false
	}
	if target == Empty {
		return true
	}
	if source == Empty {
		return false
	}
	return props[source].Density > props[target].Density
}
