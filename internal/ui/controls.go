package ui

import (
	"strconv"

	"terrarium/internal/core"
)

// controlState tracks one adjustable parameter and its last known value.
type controlState struct {
	control  core.ParameterControl
	value    int
	hasValue bool
}

func newControlStates(ca core.Automaton) []controlState {
	provider, ok := ca.(core.ParameterControlsProvider)
	if !ok {
		return nil
	}
	controls := provider.ParameterControls()
	out := make([]controlState, len(controls))
	for i, ctrl := range controls {
		out[i] = controlState{control: ctrl}
	}
	return out
}

// refresh reloads control values from the automaton's parameter snapshot.
func refresh(states []controlState, ca core.Automaton) {
	provider, ok := ca.(core.ParameterProvider)
	if !ok {
		for i := range states {
			states[i].hasValue = false
		}
		return
	}
	snap := provider.Parameters()
	for i := range states {
		st := &states[i]
		param, ok := snap.Lookup(st.control.Key)
		if !ok || param.Type != core.ParamTypeInt {
			st.hasValue = false
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			st.hasValue = false
			continue
		}
		st.value = parsed
		st.hasValue = true
	}
}

// target returns the value one step in direction from the current value and
// whether it differs from it once bounds are applied.
func (s *controlState) target(direction int) (int, bool) {
	if !s.hasValue || direction == 0 {
		return s.value, false
	}
	step := s.control.Step
	if step <= 0 {
		step = 1
	}
	next := s.control.Clamp(s.value + direction*step)
	return next, next != s.value
}

// adjust applies one step through setter and reports whether it took effect.
func (s *controlState) adjust(setter core.IntParameterSetter, direction int) bool {
	if setter == nil {
		return false
	}
	next, ok := s.target(direction)
	if !ok {
		return false
	}
	if !setter.SetIntParameter(s.control.Key, next) {
		return false
	}
	s.value = next
	return true
}

func (s *controlState) label() string {
	if !s.hasValue {
		return "--"
	}
	return strconv.Itoa(s.value)
}
