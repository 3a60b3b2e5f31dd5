package search

import (
	"cognate/internal/action"
	"cognate/internal/knowledge"
	"cognate/internal/rpg"
)

// Plan is an enforced hill-climbing search over states rooted at an
// agent's current knowledge. Each call to Plan builds one root state and
// explores outward from it; it is not reusable across goals.
type Plan struct {
	root *State

	// dequeueCount tracks how many successor states were examined, purely
	// for diagnostics/tests — it has no effect on the search itself.
	dequeueCount int
}

// NewPlan builds the root state for a fresh search over k toward
// producer's goal.
func NewPlan(k *knowledge.KnowledgeStack, producer rpg.ActionProducer) *Plan {
	root := newState(k, producer, k.CurrentLayer(), nil)
	return &Plan{root: root}
}

// RootHeuristic exposes the root state's heuristic (e.g. so a caller can
// short-circuit before running a full search when the goal is already
// DeadEnd).
func (p *Plan) RootHeuristic() int { return p.root.heuristic }

// Plan runs EHC to completion: it returns the sequence of actions leading
// to a heuristic-0 (goal-satisfied) state, or nil if the open list is
// exhausted without ever reaching one.
func (p *Plan) Plan() []action.Action {
	openList := [][]*State{{p.root}}
	bestHeuristic := p.root.heuristic

	for len(openList) > 0 {
		path := openList[0]
		openList = openList[1:]
		curr := path[len(path)-1]

		successors := curr.getSuccessors()
		p.dequeueCount += len(successors)

		for len(successors) > 0 {
			next := successors[0]
			successors = successors[1:]

			if next.heuristic == 0 {
				full := appendPath(path, next)
				return statesToActions(full[1:])
			}

			if next.heuristic < bestHeuristic {
				for _, s := range successors {
					openList = append(openList, appendPath(path, s))
				}
				successors = nil
				bestHeuristic = next.heuristic
			}

			openList = append([][]*State{appendPath(path, next)}, openList...)
		}
	}
	return nil
}

func appendPath(path []*State, next *State) []*State {
	out := make([]*State, len(path), len(path)+1)
	copy(out, path)
	return append(out, next)
}

func statesToActions(states []*State) []action.Action {
	out := make([]action.Action, len(states))
	for i, s := range states {
		out[i] = s.action
	}
	return out
}
