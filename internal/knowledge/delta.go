package knowledge

import "cognate/internal/fact"

// delta is a single stack layer: the facts it adds and the facts it
// deletes relative to everything below it. Layer 0 (the base) never has
// a delta; delta slices only exist for layers pushed above it.
type delta struct {
	adds    map[fact.Functor]map[fact.Fact]struct{}
	deletes map[fact.Functor]map[fact.Fact]struct{}
}

func newDelta() *delta {
	return &delta{
		adds:    make(map[fact.Functor]map[fact.Fact]struct{}),
		deletes: make(map[fact.Functor]map[fact.Fact]struct{}),
	}
}

func (d *delta) addFact(f fact.Fact) {
	set, ok := d.adds[f.Functor]
	if !ok {
		set = make(map[fact.Fact]struct{})
		d.adds[f.Functor] = set
	}
	set[f] = struct{}{}
}

func (d *delta) deleteFact(f fact.Fact) {
	set, ok := d.deletes[f.Functor]
	if !ok {
		set = make(map[fact.Fact]struct{})
		d.deletes[f.Functor] = set
	}
	set[f] = struct{}{}
}

func (d *delta) addCount() int {
	n := 0
	for _, set := range d.adds {
		n += len(set)
	}
	return n
}

func (d *delta) clone() *delta {
	clone := newDelta()
	for functor, set := range d.adds {
		copied := make(map[fact.Fact]struct{}, len(set))
		for f := range set {
			copied[f] = struct{}{}
		}
		clone.adds[functor] = copied
	}
	for functor, set := range d.deletes {
		copied := make(map[fact.Fact]struct{}, len(set))
		for f := range set {
			copied[f] = struct{}{}
		}
		clone.deletes[functor] = copied
	}
	return clone
}
