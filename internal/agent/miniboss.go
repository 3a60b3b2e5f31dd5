package agent

import (
	"cognate/internal/action"
	"cognate/internal/fact"
	"cognate/internal/knowledge"
)

// Miniboss is a mover only — it cannot trigger gates. Its CanMoveRule uses
// soft gate semantics: a closed gate on its route does not reject the
// move, but attaches a RequiredGoal the executor must contract out (to a
// Bandit, typically) before that move is truly safe to execute.
type Miniboss struct {
	Core
}

// NewMiniboss builds a Miniboss agent named name.
func NewMiniboss(name string) *Miniboss {
	m := &Miniboss{}
	m.init(name, m)
	return m
}

// ProduceValidActions enumerates every move (soft gate semantics) from
// each of the agent's possible current locations. Miniboss never produces
// a trigger action.
func (m *Miniboss) ProduceValidActions(k *knowledge.KnowledgeStack) []action.Action {
	var valid []action.Action

	currentLocation := fact.NewVariable()
	k.FindPossibleSolutions(fact.NewProposal(fact.AT, m.Name, currentLocation))
	locs := currentLocation.PossibleValues()
	if len(locs) == 0 {
		return nil
	}

	for _, loc := range locs {
		destination := fact.NewVariable()
		k.FindPossibleSolutions(fact.NewProposal(fact.PATH, loc, destination))
		for _, dest := range destination.PossibleValues() {
			mv := action.NewMoveAction(m.Name, dest, false)
			if mv.MeetsPreconditions(k) {
				valid = append(valid, mv)
			}
		}
	}

	return valid
}
