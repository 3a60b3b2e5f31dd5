package agent

import (
	"cognate/internal/action"
	"cognate/internal/fact"
	"cognate/internal/knowledge"
)

// Bandit is a full mover: it can both move along paths (hard gate
// semantics — a closed gate rejects the move unless an open gate also
// holds on that edge; an edge with no gate facts is passable) and trigger
// gate pairs from its current location.
type Bandit struct {
	Core
}

// NewBandit builds a Bandit agent named name.
func NewBandit(name string) *Bandit {
	b := &Bandit{}
	b.init(name, b)
	return b
}

// ProduceValidActions enumerates every move (hard gate semantics) from
// each of the agent's possible current locations, plus a trigger action
// where one is available.
func (b *Bandit) ProduceValidActions(k *knowledge.KnowledgeStack) []action.Action {
	var valid []action.Action

	currentLocation := fact.NewVariable()
	k.FindPossibleSolutions(fact.NewProposal(fact.AT, b.Name, currentLocation))
	locs := currentLocation.PossibleValues()
	if len(locs) == 0 {
		return nil
	}

	for _, loc := range locs {
		destination := fact.NewVariable()
		k.FindPossibleSolutions(fact.NewProposal(fact.PATH, loc, destination))
		for _, dest := range destination.PossibleValues() {
			mv := action.NewMoveAction(b.Name, dest, true)
			if mv.MeetsPreconditions(k) {
				valid = append(valid, mv)
			}
		}
	}

	tr := action.NewTriggerAction(b.Name)
	if tr.MeetsPreconditions(k) {
		valid = append(valid, tr)
	}

	return valid
}
