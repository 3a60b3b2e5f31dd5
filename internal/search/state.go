// Package search implements enforced hill-climbing (EHC) over the relaxed
// planning graph heuristic: a greedy state-space search that accepts the
// first strictly-better successor it finds, falling back to broader
// breadth-first exploration on a plateau.
package search

import (
	"sort"

	"cognate/internal/action"
	"cognate/internal/fact"
	"cognate/internal/knowledge"
	"cognate/internal/rpg"
)

// State bundles a deep-cloned knowledge stack with the action that produced
// it (nil at the root), a timestamp, and the RPG heuristic/helpful-actions
// computed for it at construction time.
type State struct {
	producer rpg.ActionProducer

	knowledge *knowledge.KnowledgeStack
	action    action.Action
	timestamp int

	heuristic int
	actions   []action.Action
}

// newState clones k, builds an RPG over the clone toward the producer's
// goal, and timestamps every resulting helpful action at timestamp+1.
func newState(k *knowledge.KnowledgeStack, producer rpg.ActionProducer, timestamp int, producedBy action.Action) *State {
	clone := k.Clone()
	s := &State{producer: producer, knowledge: clone, action: producedBy, timestamp: timestamp}

	graph := rpg.New(clone, producer)
	s.heuristic, s.actions = graph.GenerateHeuristic()
	for _, a := range s.actions {
		a.SetTimestamp(timestamp + 1)
	}
	return s
}

// Heuristic is the RPG heuristic value computed for this state.
func (s *State) Heuristic() int { return s.heuristic }

// Action is the action that produced this state, or nil at the root.
func (s *State) Action() action.Action { return s.action }

// Timestamp is this state's time index.
func (s *State) Timestamp() int { return s.timestamp }

// isTaboo reports whether candidate would exactly reverse the action that
// produced this state: its effects are the mirror image of the parent
// action's (adds swapped with removes). Rejecting taboo successors keeps
// EHC from oscillating between two states forever.
func (s *State) isTaboo(candidate action.Action) bool {
	if s.action == nil {
		return false
	}
	return factsEqual(s.action.Adds(), candidate.Removes()) &&
		factsEqual(s.action.Removes(), candidate.Adds())
}

// getSuccessors evaluates every helpful action against this state's
// knowledge, discarding any that no longer meet their preconditions or that
// would taboo-reverse the action that produced this state. Each survivor
// becomes a successor State, sorted ascending by heuristic.
func (s *State) getSuccessors() []*State {
	var successors []*State
	for _, a := range s.actions {
		if !a.MeetsPreconditions(s.knowledge) {
			continue
		}
		adds := a.GenerateAdds(s.knowledge)
		removes := a.GenerateRemoves(s.knowledge)

		if s.isTaboo(a) {
			continue
		}

		s.knowledge.PushLayer()
		for add := range adds {
			s.knowledge.Append(add)
		}
		for del := range removes {
			s.knowledge.Remove(del)
		}
		successors = append(successors, newState(s.knowledge, s.producer, s.timestamp+1, a))
		s.knowledge.PopLayer()
	}

	sort.SliceStable(successors, func(i, j int) bool {
		return successors[i].heuristic < successors[j].heuristic
	})
	return successors
}

func factsEqual(a, b map[fact.Fact]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for f := range a {
		if _, ok := b[f]; !ok {
			return false
		}
	}
	return true
}
