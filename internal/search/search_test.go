package search

import (
	"testing"

	"cognate/internal/action"
	"cognate/internal/fact"
	"cognate/internal/knowledge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type banditLikeAgent struct {
	name string
	goal fact.Fact
}

func (a *banditLikeAgent) Goal() fact.Fact { return a.goal }

func (a *banditLikeAgent) ProduceValidActions(k *knowledge.KnowledgeStack) []action.Action {
	var valid []action.Action
	current := fact.NewVariable()
	k.FindPossibleSolutions(fact.NewProposal(fact.AT, a.name, current))
	for _, loc := range current.PossibleValues() {
		dest := fact.NewVariable()
		k.FindPossibleSolutions(fact.NewProposal(fact.PATH, loc, dest))
		for _, d := range dest.PossibleValues() {
			mv := action.NewMoveAction(a.name, d, true)
			if mv.MeetsPreconditions(k) {
				valid = append(valid, mv)
			}
		}
	}
	tr := action.NewTriggerAction(a.name)
	if tr.MeetsPreconditions(k) {
		valid = append(valid, tr)
	}
	return valid
}

func newStack(facts ...fact.Fact) *knowledge.KnowledgeStack {
	base := knowledge.NewBaseKnowledge()
	for _, f := range facts {
		base.Append(f)
	}
	return knowledge.NewKnowledgeStack(base)
}

func TestPlanFindsTrivialPath(t *testing.T) {
	k := newStack(
		fact.At("bandit_A", "start"),
		fact.Path("start", "mid"),
		fact.Path("mid", "end"),
	)
	agent := &banditLikeAgent{name: "bandit_A", goal: fact.At("bandit_A", "end")}

	plan := NewPlan(k, agent).Plan()
	require.NotNil(t, plan)
	require.Len(t, plan, 2)

	for i, a := range plan {
		assert.Equal(t, i+1, a.Timestamp())
	}
	mv, ok := plan[len(plan)-1].(*action.MoveAction)
	require.True(t, ok)
	assert.Equal(t, "end", mv.Location)
}

func TestPlanReturnsNilWhenUnreachable(t *testing.T) {
	k := newStack(fact.At("bandit_A", "start"))
	agent := &banditLikeAgent{name: "bandit_A", goal: fact.At("bandit_A", "end")}

	plan := NewPlan(k, agent).Plan()
	assert.Nil(t, plan)
}
