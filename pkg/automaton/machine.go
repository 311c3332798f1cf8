package automaton

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrEmptyStateID is returned by [Machine.Validate] when a state ID is
	// the empty string. All states must have non-empty identifiers.
	ErrEmptyStateID = errors.New("state ID must not be empty")

	// ErrDuplicateState is returned by [Machine.Validate] when the same ID
	// appears more than once in States.
	ErrDuplicateState = errors.New("duplicate state ID")

	// ErrUnknownStart is returned by [Machine.Validate] when Start is set
	// but not declared in States.
	ErrUnknownStart = errors.New("unknown start state")

	// ErrDanglingTransition is returned by [Machine.Validate] when a
	// transition references a state not declared in States. The layout
	// engine silently drops such edges; Validate surfaces them for callers
	// that want strict input.
	ErrDanglingTransition = errors.New("transition references unknown state")
)

// Machine describes a finite-state automaton diagram to be laid out.
// States is the authoritative set of node IDs; Transitions maps a source
// state through an input symbol to its target states. Start may be empty.
//
// The zero value is a valid empty machine.
type Machine struct {
	States      []string                       `json:"states" yaml:"states" bson:"states"`
	Transitions map[string]map[string][]string `json:"transitions,omitempty" yaml:"transitions,omitempty" bson:"transitions,omitempty"`
	Start       string                         `json:"start,omitempty" yaml:"start,omitempty" bson:"start,omitempty"`
}

// Edge is a directed connection between two states. Multiple symbols between
// the same pair collapse into a single Edge.
type Edge struct {
	From string `json:"from" bson:"from"`
	To   string `json:"to" bson:"to"`
}

// StateSet returns the declared states as a membership set.
func (m *Machine) StateSet() map[string]bool {
	set := make(map[string]bool, len(m.States))
	for _, s := range m.States {
		set[s] = true
	}
	return set
}

// HasState reports whether id is declared in States.
func (m *Machine) HasState(id string) bool {
	return slices.Contains(m.States, id)
}

// Edges flattens the transition table into deduplicated directed edges.
// Edges whose endpoints are not declared in States are dropped, so the
// result is always consistent with the state set. Self-loops are retained.
// The result is sorted by (From, To) for deterministic iteration.
func (m *Machine) Edges() []Edge {
	states := m.StateSet()
	seen := make(map[Edge]bool)
	var edges []Edge

	for src, bySymbol := range m.Transitions {
		if !states[src] {
			continue
		}
		for _, targets := range bySymbol {
			for _, dst := range targets {
				if !states[dst] {
					continue
				}
				e := Edge{From: src, To: dst}
				if !seen[e] {
					seen[e] = true
					edges = append(edges, e)
				}
			}
		}
	}

	slices.SortFunc(edges, func(a, b Edge) int {
		if a.From != b.From {
			return cmpString(a.From, b.From)
		}
		return cmpString(a.To, b.To)
	})
	return edges
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// EdgeCount returns the number of logical edges after flattening.
func (m *Machine) EdgeCount() int { return len(m.Edges()) }

// StateCount returns the number of declared states.
func (m *Machine) StateCount() int { return len(m.States) }

// HasSelfLoop reports whether id has a transition to itself.
func (m *Machine) HasSelfLoop(id string) bool {
	for _, targets := range m.Transitions[id] {
		if slices.Contains(targets, id) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the machine. Mutating the copy never affects
// the original.
func (m *Machine) Clone() *Machine {
	out := &Machine{
		States: slices.Clone(m.States),
		Start:  m.Start,
	}
	if m.Transitions != nil {
		out.Transitions = make(map[string]map[string][]string, len(m.Transitions))
		for src, bySymbol := range m.Transitions {
			cp := make(map[string][]string, len(bySymbol))
			for sym, targets := range bySymbol {
				cp[sym] = slices.Clone(targets)
			}
			out.Transitions[src] = cp
		}
	}
	return out
}

// Validate checks the machine for structural problems and returns the first
// one found: empty or duplicate state IDs, an unknown start state, or
// transitions referencing undeclared states.
//
// Validation is advisory. The layout engine accepts invalid machines and
// degrades to best-effort output (dangling transitions are dropped at the
// adjacency boundary).
func (m *Machine) Validate() error {
	seen := make(map[string]bool, len(m.States))
	for _, s := range m.States {
		if s == "" {
			return ErrEmptyStateID
		}
		if seen[s] {
			return fmt.Errorf("%w: %q", ErrDuplicateState, s)
		}
		seen[s] = true
	}

	if m.Start != "" && !seen[m.Start] {
		return fmt.Errorf("%w: %q", ErrUnknownStart, m.Start)
	}

	for _, src := range slices.Sorted(maps.Keys(m.Transitions)) {
		if !seen[src] {
			return fmt.Errorf("%w: source %q", ErrDanglingTransition, src)
		}
		bySymbol := m.Transitions[src]
		for _, sym := range slices.Sorted(maps.Keys(bySymbol)) {
			for _, dst := range bySymbol[sym] {
				if !seen[dst] {
					return fmt.Errorf("%w: %q -%s-> %q", ErrDanglingTransition, src, sym, dst)
				}
			}
		}
	}
	return nil
}
