package knowledge

import (
	"cognate/internal/fact"
)

// BaseKnowledge is an append-only set of facts indexed by functor. It
// never removes facts; the knowledge stack layered on top of it is the
// only place mutation (including simulated deletion) happens.
type BaseKnowledge struct {
	byFunctor map[fact.Functor]map[fact.Fact]struct{}
}

// NewBaseKnowledge returns an empty base.
func NewBaseKnowledge() *BaseKnowledge {
	return &BaseKnowledge{byFunctor: make(map[fact.Functor]map[fact.Fact]struct{})}
}

// Append idempotently inserts a fact. Duplicates have no effect.
func (b *BaseKnowledge) Append(f fact.Fact) {
	set, ok := b.byFunctor[f.Functor]
	if !ok {
		set = make(map[fact.Fact]struct{})
		b.byFunctor[f.Functor] = set
	}
	set[f] = struct{}{}
}

// Test reports whether f is present.
func (b *BaseKnowledge) Test(f fact.Fact) bool {
	set, ok := b.byFunctor[f.Functor]
	if !ok {
		return false
	}
	_, present := set[f]
	return present
}

// FindPossibleSolutions considers every argument-tuple stored under the
// proposal's functor.
func (b *BaseKnowledge) FindPossibleSolutions(p *fact.Proposal) {
	for f := range b.byFunctor[p.Functor] {
		p.Consider(f.Arguments())
	}
}

// All returns the stored facts for functor. Absent functor means empty
// result, never an error.
func (b *BaseKnowledge) All(functor fact.Functor) map[fact.Fact]struct{} {
	return b.byFunctor[functor]
}

// Clone deep-copies the base so independent knowledge stacks never share
// mutable state, even though the base itself is conceptually append-only
// within a single stack's lifetime.
func (b *BaseKnowledge) Clone() *BaseKnowledge {
	clone := NewBaseKnowledge()
	for functor, set := range b.byFunctor {
		copied := make(map[fact.Fact]struct{}, len(set))
		for f := range set {
			copied[f] = struct{}{}
		}
		clone.byFunctor[functor] = copied
	}
	return clone
}
