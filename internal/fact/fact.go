// Package fact implements the typed fact algebra of the planner: a closed
// enumeration of predicate symbols (Functor), ground facts keyed by functor
// and argument tuple, and the Variable/Proposal query primitives used to
// search a knowledge base.
package fact

import "strings"

// Functor is a closed enumeration of predicate symbols. Facts are never
// keyed by string; extending the vocabulary means extending this
// enumeration.
type Functor int

const (
	PATH Functor = iota
	DROP
	TELEPORTABLE
	DOWNSTAIRS
	UPSTAIRS
	OPEN_GATE
	CLOSED_GATE
	AT
	TRIGGER
)

var functorNames = map[Functor]string{
	PATH:         "Path",
	DROP:         "Drop",
	TELEPORTABLE: "Teleportable",
	DOWNSTAIRS:   "Downstairs",
	UPSTAIRS:     "Upstairs",
	OPEN_GATE:    "OpenGate",
	CLOSED_GATE:  "ClosedGate",
	AT:           "At",
	TRIGGER:      "Trigger",
}

func (f Functor) String() string {
	if name, ok := functorNames[f]; ok {
		return name
	}
	return "Unknown"
}

// AllFunctors returns every predicate symbol in the closed enumeration, in
// declaration order.
func AllFunctors() []Functor {
	return []Functor{PATH, DROP, TELEPORTABLE, DOWNSTAIRS, UPSTAIRS, OPEN_GATE, CLOSED_GATE, AT, TRIGGER}
}

// ParseFunctor looks up a functor by its display name (case-sensitive,
// e.g. "At", "Path", "ClosedGate"). Used by callers parsing facts from
// text, such as the CLI.
func ParseFunctor(name string) (Functor, bool) {
	for f, n := range functorNames {
		if n == name {
			return f, true
		}
	}
	return 0, false
}

// Fact is a ground atomic proposition: a functor plus an argument tuple.
// Two facts are interchangeable iff their functor and arguments are equal,
// so Fact is safe to use as a map key directly.
type Fact struct {
	Functor Functor
	Args    [3]string
	Arity   int
}

// New builds a fact for functor over the given ground arguments. Arity is
// recorded so that facts of the same functor but different declared arity
// (not expected in this closed vocabulary, but possible under extension)
// never collide.
func New(functor Functor, args ...string) Fact {
	var a [3]string
	for i, v := range args {
		if i >= len(a) {
			break
		}
		a[i] = v
	}
	return Fact{Functor: functor, Args: a, Arity: len(args)}
}

// Arguments returns the fact's ground argument tuple.
func (f Fact) Arguments() []string {
	return f.Args[:f.Arity]
}

func (f Fact) String() string {
	return functorNames[f.Functor] + "(" + strings.Join(f.Arguments(), ", ") + ")"
}

// Domain predicate constructors. Each mirrors a small factory taking the
// required ground atoms and setting the corresponding functor; equality
// and hashing always go through Fact itself.

func Path(node1, node2 string) Fact         { return New(PATH, node1, node2) }
func Drop(node1, node2 string) Fact         { return New(DROP, node1, node2) }
func Teleportable(node1, node2 string) Fact { return New(TELEPORTABLE, node1, node2) }
func Downstairs(node1, node2 string) Fact   { return New(DOWNSTAIRS, node1, node2) }
func Upstairs(node1, node2 string) Fact     { return New(UPSTAIRS, node1, node2) }
func OpenGate(node1, node2 string) Fact     { return New(OPEN_GATE, node1, node2) }
func ClosedGate(node1, node2 string) Fact   { return New(CLOSED_GATE, node1, node2) }
func At(agent, node string) Fact            { return New(AT, agent, node) }
func Trigger(gate1, gate2, location string) Fact {
	return New(TRIGGER, gate1, gate2, location)
}
