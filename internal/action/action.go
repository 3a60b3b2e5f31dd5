// Package action implements the primitive actions agents can take: moving
// between locations and triggering a gate pair at the agent's current
// location. Both are grounded in the same precondition-test / add-effect /
// remove-effect contract.
package action

import (
	"fmt"
	"hash/fnv"
	"sort"

	"cognate/internal/fact"
	"cognate/internal/knowledge"
)

// Action is a primitive step an agent can commit to its plan. Precondition
// testing, add-effects and remove-effects are all evaluated against a
// KnowledgeStack, never computed eagerly at construction: an Action's
// dependencies/adds/removes are only populated once MeetsPreconditions (and
// then GenerateAdds/GenerateRemoves) have actually run.
type Action interface {
	MeetsPreconditions(k *knowledge.KnowledgeStack) bool
	GenerateAdds(k *knowledge.KnowledgeStack) map[fact.Fact]struct{}
	GenerateRemoves(k *knowledge.KnowledgeStack) map[fact.Fact]struct{}

	Dependencies() map[fact.Fact]struct{}
	Adds() map[fact.Fact]struct{}
	Removes() map[fact.Fact]struct{}

	Timestamp() int
	SetTimestamp(t int)

	// RequiredGoal is the goal this action's executor must contract out
	// before the action can truly fire (e.g. a Miniboss facing a closed
	// gate). ok is false when the action has no outstanding requirement.
	RequiredGoal() (goal fact.Fact, ok bool)

	Hash() uint64
	String() string
}

// base holds the fields common to every Action. Concrete action types embed
// it and only implement the behavior specific to their kind.
type base struct {
	dependencies map[fact.Fact]struct{}
	adds         map[fact.Fact]struct{}
	removes      map[fact.Fact]struct{}
	timestamp    int
	requiredGoal *fact.Fact
}

func newBase() base {
	return base{
		dependencies: make(map[fact.Fact]struct{}),
		adds:         make(map[fact.Fact]struct{}),
		removes:      make(map[fact.Fact]struct{}),
	}
}

func (b *base) Dependencies() map[fact.Fact]struct{} { return b.dependencies }
func (b *base) Adds() map[fact.Fact]struct{}         { return b.adds }
func (b *base) Removes() map[fact.Fact]struct{}      { return b.removes }
func (b *base) Timestamp() int                       { return b.timestamp }
func (b *base) SetTimestamp(t int)                   { b.timestamp = t }

func (b *base) RequiredGoal() (fact.Fact, bool) {
	if b.requiredGoal == nil {
		return fact.Fact{}, false
	}
	return *b.requiredGoal, true
}

// sortedStrings renders a fact set as a sorted slice of its String() form,
// giving every hash/diff consumer a deterministic order regardless of Go's
// randomized map iteration.
func sortedStrings(sets ...map[fact.Fact]struct{}) []string {
	var out []string
	for _, set := range sets {
		for f := range set {
			out = append(out, f.String())
		}
	}
	sort.Strings(out)
	return out
}

// factsHash combines dependency/add/remove sets plus a kind tag into a
// single identity hash, mirroring the source's hash((dependencies, adds,
// removes, kind)). search's taboo check does not use it: it compares the
// add/remove sets directly.
func factsHash(kind string, sets ...map[fact.Fact]struct{}) uint64 {
	h := fnv.New64a()
	for _, s := range sortedStrings(sets...) {
		fmt.Fprintf(h, "%s|", s)
	}
	fmt.Fprintf(h, "#%s", kind)
	return h.Sum64()
}
