package knowledge

import (
	"testing"

	"cognate/internal/fact"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseKnowledgeAppendAndTest(t *testing.T) {
	base := NewBaseKnowledge()
	f := fact.Path("canyon", "esb")
	assert.False(t, base.Test(f))
	base.Append(f)
	assert.True(t, base.Test(f))
}

func TestKnowledgeStackLayering(t *testing.T) {
	base := NewBaseKnowledge()
	base.Append(fact.At("bill", "canyon"))
	s := NewKnowledgeStack(base)

	require.Equal(t, 0, s.CurrentLayer())
	require.Equal(t, 1, s.PushLayer())
	require.Equal(t, 2, s.PushLayer())

	moved := fact.At("bill", "esb")
	s.Append(moved)
	assert.True(t, s.CheckFact(moved))
	assert.Equal(t, 1, s.FactsInCurrentAdd())

	require.Equal(t, 1, s.PopLayer())
	// the add made at layer 2 is undone by popping it
	assert.False(t, s.CheckFact(moved))
	assert.True(t, s.CheckFact(fact.At("bill", "canyon")))

	require.Equal(t, 0, s.PopLayer())
	require.Equal(t, -1, s.PopLayer())
}

func TestKnowledgeStackRemoveRequiresCurrentTruth(t *testing.T) {
	base := NewBaseKnowledge()
	base.Append(fact.At("bill", "canyon"))
	s := NewKnowledgeStack(base)
	s.PushLayer()

	// removing a fact that never held is a no-op (invariant I2)
	s.Remove(fact.At("bill", "esb"))
	assert.Equal(t, 0, s.FactsInCurrentAdd())

	s.Remove(fact.At("bill", "canyon"))
	assert.False(t, s.CheckFact(fact.At("bill", "canyon")))
}

func TestKnowledgeStackAppendIsNoopWhenAlreadyTrue(t *testing.T) {
	base := NewBaseKnowledge()
	base.Append(fact.At("bill", "canyon"))
	s := NewKnowledgeStack(base)
	s.PushLayer()

	// already true via the base, so re-asserting adds nothing to the layer
	s.Append(fact.At("bill", "canyon"))
	assert.Equal(t, 0, s.FactsInCurrentAdd())
}

func TestKnowledgeStackFlattenAcrossLayers(t *testing.T) {
	base := NewBaseKnowledge()
	base.Append(fact.Path("canyon", "esb"))
	s := NewKnowledgeStack(base)
	s.PushLayer()
	s.Append(fact.Path("esb", "your house"))
	s.PushLayer()
	s.Remove(fact.Path("canyon", "esb"))

	flat := s.Flatten(fact.PATH)
	_, hasCanyonESB := flat[fact.Path("canyon", "esb")]
	_, hasESBHouse := flat[fact.Path("esb", "your house")]
	assert.False(t, hasCanyonESB)
	assert.True(t, hasESBHouse)
}

func TestPredictedKnowledgeEarliestWins(t *testing.T) {
	p := NewPredictedKnowledge()
	f := fact.OpenGate("gate1", "gate2")

	p.AppendAdd(f, 5)
	p.AppendAdd(f, 2)
	p.AppendAdd(f, 9)

	assert.Equal(t, 2, p.TestAddition(f))
	assert.Equal(t, -1, p.TestRemoval(f))
}

func TestPredictedKnowledgeCheckPredictionRoutesByRemoval(t *testing.T) {
	p := NewPredictedKnowledge()
	f := fact.ClosedGate("gate1", "gate2")
	p.AppendAdd(f, 3)
	p.AppendRemove(f, 7)

	assert.Equal(t, 3, p.CheckPrediction(f, false))
	assert.Equal(t, 7, p.CheckPrediction(f, true))
}

func TestKnowledgeStackMaterializesPredictionsOnAdvance(t *testing.T) {
	base := NewBaseKnowledge()
	base.Append(fact.At("sam", "white house"))
	s := NewKnowledgeStack(base)

	gate := fact.OpenGate("gate1", "gate2")
	s.PredictAdd(gate, 3)

	s.AdvanceTo(3)
	assert.Equal(t, 3, s.CurrentLayer())
	assert.True(t, s.CheckFact(gate))
}

func TestKnowledgeStackFlattenMatchesExpectedSetExactly(t *testing.T) {
	base := NewBaseKnowledge()
	base.Append(fact.Path("canyon", "esb"))
	base.Append(fact.Path("esb", "your house"))
	s := NewKnowledgeStack(base)
	s.PushLayer()
	s.Append(fact.Path("your house", "canyon"))
	s.PushLayer()
	s.Remove(fact.Path("esb", "your house"))

	got := s.Flatten(fact.PATH)
	want := map[fact.Fact]struct{}{
		fact.Path("canyon", "esb"):        {},
		fact.Path("your house", "canyon"): {},
	}

	// map key order is irrelevant to set equality, which is exactly what
	// cmp.Diff checks for a map[fact.Fact]struct{} without needing a
	// sorted-slice conversion first.
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Flatten(PATH) mismatch (-want +got):\n%s", diff)
	}
}

func TestKnowledgeStackCloneIsIndependent(t *testing.T) {
	base := NewBaseKnowledge()
	base.Append(fact.At("bill", "canyon"))
	s := NewKnowledgeStack(base)
	s.PushLayer()

	clone := s.Clone()
	clone.Append(fact.At("bill", "esb"))

	assert.True(t, clone.CheckFact(fact.At("bill", "esb")))
	assert.False(t, s.CheckFact(fact.At("bill", "esb")))
}
