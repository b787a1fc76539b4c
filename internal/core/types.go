package core

import (
	"fmt"
	"sort"
	"strings"

	"terrarium/internal/material"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Automaton is the stepping contract shared by every material simulation.
// Implementations are not safe for concurrent use.
type Automaton interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Get(row, col int) material.State
	Set(row, col int, s material.State) error
	Tick()
	Cells() []material.State
}

// Factory constructs an Automaton using an optional configuration map.
type Factory func(cfg map[string]string) (Automaton, error)

var automata = map[string]Factory{}

// Register adds an automaton factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	automata[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := automata[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownAutomaton, name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// Names lists the registered automata in sorted order.
func Names() []string {
	names := make([]string, 0, len(automata))
	for name := range automata {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
