package action

import (
	"fmt"
	"sort"

	"cognate/internal/fact"
	"cognate/internal/knowledge"
)

// CanMoveRule tests whether an agent can move to location, and under what
// gate semantics.
//
// Hard semantics (bandits): an open gate on the candidate edge is recorded
// as a dependency; a closed gate rejects that candidate location outright,
// since under relaxed planning both OPEN_GATE and CLOSED_GATE may hold at
// once and "open wins" preserves the monotone-add invariant.
//
// Soft semantics (miniboss): a closed gate does not reject the move; it
// attaches a RequiredGoal (OpenGate) the executor must contract out before
// the move is truly safe to execute.
type CanMoveRule struct {
	Agent    string
	Location string
	Hard     bool

	CurrentLocations []string
	Dependencies     map[fact.Fact]struct{}
	RequiredGoal     *fact.Fact
}

// NewCanMoveRule builds a move-feasibility test for agent moving to
// location under the given gate semantics.
func NewCanMoveRule(agentName, location string, hard bool) *CanMoveRule {
	return &CanMoveRule{
		Agent:        agentName,
		Location:     location,
		Hard:         hard,
		Dependencies: make(map[fact.Fact]struct{}),
	}
}

// Test evaluates the rule against k, populating CurrentLocations,
// Dependencies and (for soft semantics, on a closed gate) RequiredGoal.
func (r *CanMoveRule) Test(k *knowledge.KnowledgeStack) bool {
	currentLocation := fact.NewVariable()
	k.FindPossibleSolutions(fact.NewProposal(fact.AT, r.Agent, currentLocation))

	locs := currentLocation.PossibleValues()
	if len(locs) == 0 {
		return false
	}

	found := false
	// Relaxed planning can place the agent at several candidate locations
	// at once; every one of them that has a path to the destination is a
	// viable predecessor for this move.
	for _, loc := range locs {
		if !k.CheckFact(fact.Path(loc, r.Location)) {
			continue
		}

		if r.Hard {
			if k.CheckFact(fact.OpenGate(loc, r.Location)) {
				r.Dependencies[fact.OpenGate(loc, r.Location)] = struct{}{}
			} else if k.CheckFact(fact.ClosedGate(loc, r.Location)) {
				continue
			}
		} else if k.CheckFact(fact.ClosedGate(loc, r.Location)) {
			goal := fact.OpenGate(loc, r.Location)
			r.RequiredGoal = &goal
		}

		r.Dependencies[fact.At(r.Agent, loc)] = struct{}{}
		r.Dependencies[fact.Path(loc, r.Location)] = struct{}{}
		r.CurrentLocations = append(r.CurrentLocations, loc)
		found = true
	}
	return found
}

// MoveAction moves agent to location, provided CanMoveRule's preconditions
// hold.
type MoveAction struct {
	base

	AgentName     string
	Location      string
	PrevLocations []string

	rule *CanMoveRule
}

// NewMoveAction builds a move action under hard (bandit) or soft (miniboss)
// gate semantics.
func NewMoveAction(agentName, location string, hard bool) *MoveAction {
	return &MoveAction{
		base:      newBase(),
		AgentName: agentName,
		Location:  location,
		rule:      NewCanMoveRule(agentName, location, hard),
	}
}

func (m *MoveAction) MeetsPreconditions(k *knowledge.KnowledgeStack) bool {
	if !m.rule.Test(k) {
		return false
	}
	m.PrevLocations = m.rule.CurrentLocations
	m.dependencies = m.rule.Dependencies
	m.requiredGoal = m.rule.RequiredGoal
	return true
}

func (m *MoveAction) GenerateAdds(k *knowledge.KnowledgeStack) map[fact.Fact]struct{} {
	m.adds = map[fact.Fact]struct{}{fact.At(m.AgentName, m.Location): {}}
	return m.adds
}

func (m *MoveAction) GenerateRemoves(k *knowledge.KnowledgeStack) map[fact.Fact]struct{} {
	m.removes = make(map[fact.Fact]struct{})
	for _, prev := range m.PrevLocations {
		m.removes[fact.At(m.AgentName, prev)] = struct{}{}
	}
	return m.removes
}

func (m *MoveAction) Hash() uint64 {
	return factsHash("move", m.dependencies, m.adds, m.removes)
}

func (m *MoveAction) String() string {
	prev := "?"
	if len(m.PrevLocations) > 0 {
		locs := append([]string(nil), m.PrevLocations...)
		sort.Strings(locs)
		prev = locs[0]
	}
	s := fmt.Sprintf("t=%d: Move %s from %s to %s", m.timestamp, m.AgentName, prev, m.Location)
	if goal, ok := m.RequiredGoal(); ok {
		s += fmt.Sprintf("\n\trequired: %s", goal)
	}
	return s
}
