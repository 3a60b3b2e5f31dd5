package fact

// Proposal is a functor plus an argument tuple in which each slot is
// either ground or a *Variable. It records which slots are fixed and
// which are variable at construction time; proposals are ephemeral query
// objects, built fresh for a single lookup.
//
// Constructing a Proposal caches any Variable argument's current live set
// (see Variable.CacheResults): this lets the same variable be threaded
// through a sequence of proposals and recombined with ApplyAnd/ApplyOr.
type Proposal struct {
	Functor Functor
	slots   []slot
}

type slot struct {
	ground   string
	isGround bool
	variable *Variable
}

// NewProposal builds a query over functor. Each element of args must be
// either a string (ground) or a *Variable (collects bindings).
func NewProposal(functor Functor, args ...interface{}) *Proposal {
	p := &Proposal{Functor: functor}
	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			p.slots = append(p.slots, slot{ground: v, isGround: true})
		case *Variable:
			v.CacheResults()
			p.slots = append(p.slots, slot{variable: v})
		default:
			panic("fact: proposal argument must be string or *Variable")
		}
	}
	return p
}

// Consider tests a candidate argument-tuple against the proposal: if every
// fixed slot matches the proposal's ground value, each variable slot's
// AddPossibility is called with the tuple's corresponding value.
func (p *Proposal) Consider(tuple []string) {
	if len(tuple) != len(p.slots) {
		return
	}
	for i, s := range p.slots {
		if s.isGround && s.ground != tuple[i] {
			return
		}
	}
	for i, s := range p.slots {
		if !s.isGround {
			s.variable.AddPossibility(tuple[i])
		}
	}
}

// ToFact builds a Fact of the proposal's functor whose arguments are
// exactly resolved, the full argument list supplied by the caller. The
// proposal's own slots (ground values or variables) are not consulted.
func (p *Proposal) ToFact(resolved ...string) Fact {
	return New(p.Functor, resolved...)
}
