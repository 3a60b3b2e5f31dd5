// Package rpg implements the relaxed planning graph heuristic: a forward
// layered expansion of an agent's knowledge that ignores delete-effects,
// used both to estimate distance-to-goal (the heuristic) and to extract the
// "helpful actions" worth trying from the current state.
package rpg

import (
	"cognate/internal/action"
	"cognate/internal/fact"
	"cognate/internal/knowledge"
)

// DeadEnd is the sentinel heuristic value meaning "this goal cannot be
// reached from here". It propagates rather than raising an error.
const DeadEnd = 99999

// MaxDepth bounds the forward expansion; it is the only soft limit on the
// graph's growth.
const MaxDepth = 999

// ActionProducer is the subset of Agent behavior the graph needs: the goal
// it is trying to satisfy, and the set of actions valid from a given
// knowledge state. Kept as a narrow interface here (rather than importing
// the agent package directly) to avoid a package cycle, since agents build
// an RPG as part of supplying a bid.
type ActionProducer interface {
	Goal() fact.Fact
	ProduceValidActions(k *knowledge.KnowledgeStack) []action.Action
}

// Graph is a single relaxed-planning-graph computation. It is built fresh
// for each heuristic query: construction does not mutate the knowledge
// stack it is given beyond the layers it pushes and pops internally during
// GenerateHeuristic.
type Graph struct {
	knowledge *knowledge.KnowledgeStack
	producer  ActionProducer
	goal      fact.Fact

	layers []action.Action
	plan   [][]action.Action
	depth  int
}

// New builds a relaxed planning graph over k (which the graph will push
// and pop layers on) toward producer's current goal.
func New(k *knowledge.KnowledgeStack, producer ActionProducer) *Graph {
	return &Graph{knowledge: k, producer: producer, goal: producer.Goal()}
}

func (g *Graph) isSatisfied() bool {
	return g.knowledge.CheckFact(g.goal)
}

// GenerateHeuristic runs the forward expansion up to MaxDepth, then (if the
// goal was reached) analyzes the resulting action layers to compute the
// heuristic value and the helpful-actions list. Returns (DeadEnd, nil) if
// the goal is unreachable or the expansion fixpoints without satisfying it.
func (g *Graph) GenerateHeuristic() (int, []action.Action) {
	return g.generateHeuristic(MaxDepth)
}

func (g *Graph) generateHeuristic(maxDepth int) (int, []action.Action) {
	for g.depth < maxDepth {
		if g.isSatisfied() {
			break
		}

		validActions := g.producer.ProduceValidActions(g.knowledge)
		if len(validActions) == 0 {
			return DeadEnd, nil
		}
		g.plan = append(g.plan, validActions)

		g.knowledge.PushLayer()
		for _, a := range validActions {
			for add := range a.GenerateAdds(g.knowledge) {
				g.knowledge.Append(add)
			}
		}

		if g.knowledge.FactsInCurrentAdd() == 0 {
			return DeadEnd, nil
		}

		g.depth++
	}

	if g.depth == maxDepth {
		return DeadEnd, nil
	}

	return g.analyzePlan()
}

// analyzePlan walks the action layers backward from the goal, crediting
// the first (earliest-layer) action found at or below each layer that
// supports one of that layer's outstanding preconditions. Every popped
// knowledge layer restores the stack to the state it was in before
// GenerateHeuristic was called.
func (g *Graph) analyzePlan() (int, []action.Action) {
	helpful := make([][]action.Action, g.depth)
	preconditions := make([]map[fact.Fact]struct{}, g.depth+1)
	for i := range preconditions {
		preconditions[i] = make(map[fact.Fact]struct{})
	}
	preconditions[g.depth][g.goal] = struct{}{}

	for layer := g.depth - 1; layer >= 0; layer-- {
		for pc := range preconditions[layer+1] {
			found := false
			for l := 0; l <= layer && !found; l++ {
				for _, a := range g.plan[l] {
					if _, ok := a.Adds()[pc]; !ok {
						continue
					}
					found = true
					helpful[l] = append(helpful[l], a)
					for dep := range a.Dependencies() {
						preconditions[l][dep] = struct{}{}
					}
					break
				}
			}
		}
		g.knowledge.PopLayer()
	}

	if g.depth == 0 {
		return 0, nil
	}

	heuristic := 0
	for _, l := range helpful {
		heuristic += len(l)
	}
	return heuristic, helpful[0]
}
