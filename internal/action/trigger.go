package action

import (
	"fmt"

	"cognate/internal/fact"
	"cognate/internal/knowledge"
)

// CanTriggerRule tests whether agent stands at a location hosting a
// trigger (TRIGGER(gate1, gate2, location)) — the only precondition a
// trigger action needs.
type CanTriggerRule struct {
	Agent        string
	Dependencies map[fact.Fact]struct{}
}

// NewCanTriggerRule builds a trigger-feasibility test for agent.
func NewCanTriggerRule(agentName string) *CanTriggerRule {
	return &CanTriggerRule{Agent: agentName, Dependencies: make(map[fact.Fact]struct{})}
}

// Test evaluates the rule against k, recording one AT dependency per
// trigger-bearing location and one TRIGGER dependency per real gate pair
// found there (not every combination of candidate gate1/gate2 values is
// necessarily a real triple).
func (r *CanTriggerRule) Test(k *knowledge.KnowledgeStack) bool {
	currentLocation := fact.NewVariable()
	k.FindPossibleSolutions(fact.NewProposal(fact.AT, r.Agent, currentLocation))

	locs := currentLocation.PossibleValues()
	if len(locs) == 0 {
		return false
	}

	found := false
	for _, loc := range locs {
		gate1 := fact.NewVariable()
		gate2 := fact.NewVariable()
		k.FindPossibleSolutions(fact.NewProposal(fact.TRIGGER, gate1, gate2, loc))

		if gate1.Len() == 0 {
			continue
		}
		found = true
		r.Dependencies[fact.At(r.Agent, loc)] = struct{}{}

		for _, g1 := range gate1.PossibleValues() {
			for _, g2 := range gate2.PossibleValues() {
				if k.CheckFact(fact.Trigger(g1, g2, loc)) {
					r.Dependencies[fact.Trigger(g1, g2, loc)] = struct{}{}
				}
			}
		}
	}
	return found
}

// TriggerAction flops every gate pair wired to the agent's current
// location: an open gate becomes closed, a closed gate becomes open.
type TriggerAction struct {
	base

	AgentName string
	Location  string

	rule *CanTriggerRule
}

// NewTriggerAction builds a trigger action for agent.
func NewTriggerAction(agentName string) *TriggerAction {
	return &TriggerAction{base: newBase(), AgentName: agentName, rule: NewCanTriggerRule(agentName)}
}

func (t *TriggerAction) MeetsPreconditions(k *knowledge.KnowledgeStack) bool {
	if !t.rule.Test(k) {
		return false
	}
	t.dependencies = t.rule.Dependencies
	return true
}

func (t *TriggerAction) GenerateAdds(k *knowledge.KnowledgeStack) map[fact.Fact]struct{} {
	t.adds = make(map[fact.Fact]struct{})
	for dep := range t.dependencies {
		if dep.Functor != fact.TRIGGER {
			continue
		}
		g1, g2, loc := dep.Args[0], dep.Args[1], dep.Args[2]
		t.Location = loc
		if k.CheckFact(fact.OpenGate(g1, g2)) {
			t.adds[fact.ClosedGate(g1, g2)] = struct{}{}
		}
		if k.CheckFact(fact.ClosedGate(g1, g2)) {
			t.adds[fact.OpenGate(g1, g2)] = struct{}{}
		}
	}
	return t.adds
}

func (t *TriggerAction) GenerateRemoves(k *knowledge.KnowledgeStack) map[fact.Fact]struct{} {
	t.removes = make(map[fact.Fact]struct{})
	for dep := range t.dependencies {
		if dep.Functor != fact.TRIGGER {
			continue
		}
		g1, g2 := dep.Args[0], dep.Args[1]
		if k.CheckFact(fact.ClosedGate(g1, g2)) {
			t.removes[fact.ClosedGate(g1, g2)] = struct{}{}
		}
		if k.CheckFact(fact.OpenGate(g1, g2)) {
			t.removes[fact.OpenGate(g1, g2)] = struct{}{}
		}
	}
	return t.removes
}

func (t *TriggerAction) Hash() uint64 {
	return factsHash("trigger", t.dependencies, t.adds, t.removes)
}

func (t *TriggerAction) String() string {
	return fmt.Sprintf("t=%d: Trigger at %s", t.timestamp, t.Location)
}
