package fact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFunctorRoundTripsAllFunctors(t *testing.T) {
	for _, f := range AllFunctors() {
		parsed, ok := ParseFunctor(f.String())
		require.True(t, ok)
		assert.Equal(t, f, parsed)
	}

	_, ok := ParseFunctor("NotARealFunctor")
	assert.False(t, ok)
}

func TestFactEquality(t *testing.T) {
	a := At("bill", "canyon")
	b := At("bill", "canyon")
	assert.Equal(t, a, b)
	assert.Equal(t, a.String(), b.String())

	c := At("sam", "canyon")
	assert.NotEqual(t, a, c)
}

func TestProposalConsiderFixedSlots(t *testing.T) {
	x := NewVariable()
	p := NewProposal(AT, "bill", x)

	p.Consider([]string{"bill", "canyon"})
	p.Consider([]string{"sam", "canyon"})
	p.Consider([]string{"bill", "esb"})

	require.ElementsMatch(t, []string{"canyon", "esb"}, x.PossibleValues())
}

func TestApplyAndNoCacheIsNoop(t *testing.T) {
	x := NewVariable()
	// First use: no prior proposal, so CacheResults() at construction
	// caches an empty snapshot and hasCache stays false — ApplyAnd must
	// not erase what Consider just populated when the caller never ran a
	// second proposal in between.
	p := NewProposal(AT, "bill", x)
	p.Consider([]string{"bill", "canyon"})
	x.ApplyAnd()
	assert.ElementsMatch(t, []string{"canyon"}, x.PossibleValues())
}

func TestApplyAndIntersectsAcrossProposals(t *testing.T) {
	location := NewVariable()

	p1 := NewProposal(AT, "bill", location)
	p1.Consider([]string{"bill", "canyon"})

	p2 := NewProposal(TELEPORTABLE, location, "esb")
	// location was at {canyon}; this proposal never matches canyon->esb
	p2.Consider([]string{"esb", "esb"})

	location.ApplyAnd()
	assert.Empty(t, location.PossibleValues())
}

func TestApplyOrAccumulatesAcrossIterations(t *testing.T) {
	who := NewVariable()

	for _, loc := range []string{"white house", "your house"} {
		p := NewProposal(AT, who, loc)
		switch loc {
		case "white house":
			p.Consider([]string{"bob", "white house"})
		case "your house":
			p.Consider([]string{"sam", "your house"})
		}
		who.ApplyOr()
	}

	assert.ElementsMatch(t, []string{"bob", "sam"}, who.PossibleValues())
}
