package agent

import (
	"testing"

	"cognate/internal/action"
	"cognate/internal/fact"
	"cognate/internal/knowledge"
	"cognate/internal/rpg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubContractor lets agent-level tests drive Core.Plan's contract/resume
// mechanism without the full bid/tie-break machinery of internal/central.
type stubContractor struct {
	onContract  func(goal fact.Fact) int
	predictions []action.Action
}

func (s *stubContractor) Contract(goal fact.Fact) int { return s.onContract(goal) }
func (s *stubContractor) AddPredictions(a action.Action) {
	s.predictions = append(s.predictions, a)
}

func newStack(facts ...fact.Fact) *knowledge.KnowledgeStack {
	base := knowledge.NewBaseKnowledge()
	for _, f := range facts {
		base.Append(f)
	}
	return knowledge.NewKnowledgeStack(base)
}

func TestBanditCommitsTrivialMultiHopMove(t *testing.T) {
	b := NewBandit("bandit_A")
	b.SetKnowledge(newStack(
		fact.At("bandit_A", "start"),
		fact.Path("start", "junction"),
		fact.Path("junction", "path_b"),
		fact.Path("path_b", "path_b1"),
	))

	completionTime, ok := b.Plan(fact.At("bandit_A", "path_b1"), &stubContractor{})
	require.True(t, ok)
	assert.Equal(t, 3, completionTime)
	assert.Len(t, b.ActionPlan(), 3)
}

func TestBanditSupplyBidDeadEndWithoutPath(t *testing.T) {
	b := NewBandit("bandit_A")
	b.SetKnowledge(newStack(fact.At("bandit_A", "start")))

	bid := b.SupplyBid(fact.At("bandit_A", "end"))
	assert.Equal(t, rpg.DeadEnd, bid)

	completionTime, ok := b.Plan(fact.At("bandit_A", "end"), &stubContractor{})
	assert.False(t, ok)
	assert.Equal(t, rpg.DeadEnd, completionTime)
	assert.Empty(t, b.ActionPlan())
}

func TestMinibossPropagatesContractFailure(t *testing.T) {
	m := NewMiniboss("miniboss")
	m.SetKnowledge(newStack(
		fact.At("miniboss", "start"),
		fact.Path("start", "end"),
		fact.ClosedGate("start", "end"),
	))

	stub := &stubContractor{onContract: func(fact.Fact) int { return rpg.DeadEnd }}
	completionTime, ok := m.Plan(fact.At("miniboss", "end"), stub)

	assert.False(t, ok)
	assert.Equal(t, 0, completionTime)
	assert.Empty(t, m.ActionPlan(), "a blocked action is never committed")
}

func TestMinibossResumesAfterContractOpensGate(t *testing.T) {
	m := NewMiniboss("miniboss")
	m.SetKnowledge(newStack(
		fact.At("miniboss", "start"),
		fact.Path("start", "end"),
		fact.ClosedGate("start", "end"),
	))

	stub := &stubContractor{}
	stub.onContract = func(fact.Fact) int {
		k := m.Knowledge()
		k.PushLayer()
		k.Append(fact.OpenGate("start", "end"))
		k.Remove(fact.ClosedGate("start", "end"))
		return 1
	}

	completionTime, ok := m.Plan(fact.At("miniboss", "end"), stub)
	require.True(t, ok)
	assert.Equal(t, 2, completionTime)
	require.Len(t, m.ActionPlan(), 1)
	require.Len(t, stub.predictions, 1)

	mv, isMove := m.ActionPlan()[0].(*action.MoveAction)
	require.True(t, isMove)
	_, blocked := mv.RequiredGoal()
	assert.False(t, blocked, "the resumed move should no longer carry a required goal")
}
