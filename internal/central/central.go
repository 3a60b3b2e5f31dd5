// Package central implements the coordinator that distributes sub-goals
// among agents via a bid/contract protocol: every registered agent bids
// its RPG heuristic for a goal, the lowest bidder wins the contract and
// commits a plan, and predictions from committed actions are published
// back to the shared knowledge stack so later agents plan against the
// expected future.
package central

import (
	"fmt"
	"sort"
	"strings"

	"cognate/internal/action"
	"cognate/internal/fact"
	"cognate/internal/knowledge"
	"cognate/internal/logging"
	"cognate/internal/rpg"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Agent is the subset of agent behavior the central planner depends on.
// Defined here (rather than imported from an agent package) so that
// central never needs to import agent — agent imports central instead,
// for the Contractor type its Plan method takes. That one-way dependency
// is what keeps the mutual agent/central relationship cycle-free in Go,
// where the source relied on Python's lazy TYPE_CHECKING imports.
type Agent interface {
	SetKnowledge(k *knowledge.KnowledgeStack)
	SupplyBid(goal fact.Fact) int
	Plan(goal fact.Fact, central Contractor) (int, bool)
	AdmitPlans() []string
}

// Contractor is the view of CentralPlanner an Agent needs while planning:
// enough to contract out a blocking goal and to publish its own committed
// actions' predicted effects.
type Contractor interface {
	Contract(goal fact.Fact) int
	AddPredictions(a action.Action)
}

// CentralPlanner owns the shared knowledge stack and the agent registry.
// Agents are registered in the order External code wants bid ties broken:
// Register appends to that order, mirroring the source's dict-insertion-
// order tie-break (spec.md's "ties: first in registry order").
type CentralPlanner struct {
	knowledge *knowledge.KnowledgeStack
	order     []string
	agents    map[string]Agent
}

// NewCentralPlanner returns a planner over base with an empty agent
// registry.
func NewCentralPlanner(base *knowledge.BaseKnowledge) *CentralPlanner {
	return &CentralPlanner{
		knowledge: knowledge.NewKnowledgeStack(base),
		agents:    make(map[string]Agent),
	}
}

// Register adds (or replaces) a named agent. A name registered for the
// first time is appended to the tie-break order; re-registering the same
// name keeps its original position.
func (c *CentralPlanner) Register(name string, a Agent) {
	if _, ok := c.agents[name]; !ok {
		c.order = append(c.order, name)
	}
	c.agents[name] = a
}

// Knowledge exposes the shared knowledge stack, e.g. for scenario setup.
func (c *CentralPlanner) Knowledge() *knowledge.KnowledgeStack { return c.knowledge }

// Get returns the agent registered under name, if any.
func (c *CentralPlanner) Get(name string) (Agent, bool) {
	a, ok := c.agents[name]
	return a, ok
}

// Plan looks up instigatorName and, if registered, clones the shared
// knowledge into it and runs its own planning loop. Returns false only
// when the instigator is unknown — an infeasible plan (DEAD_END) is still
// a "successfully looked up and ran" outcome per the source's contract;
// the caller inspects the agent's committed plan to see how far it got.
func (c *CentralPlanner) Plan(instigatorName string, goal fact.Fact) bool {
	instigator, ok := c.agents[instigatorName]
	if !ok {
		return false
	}
	instigator.SetKnowledge(c.knowledge)
	instigator.Plan(goal, c)
	return true
}

// Contract collects a bid from every registered agent, awards the goal to
// the lowest bidder (ties broken by registry order), and returns that
// agent's plan completion time. If the winning bid is itself DeadEnd, the
// contract is infeasible and DeadEnd propagates without ever invoking
// Plan on the loser-that-would-be-winner.
func (c *CentralPlanner) Contract(goal fact.Fact) int {
	log := logging.Get(logging.CategoryCentral)
	sessionID := uuid.New()

	type bid struct {
		value int
		name  string
		agent Agent
	}
	bids := make([]bid, 0, len(c.order))
	for _, name := range c.order {
		a := c.agents[name]
		a.SetKnowledge(c.knowledge)
		bids = append(bids, bid{value: a.SupplyBid(goal), name: name, agent: a})
	}
	if len(bids) == 0 {
		return rpg.DeadEnd
	}

	sort.SliceStable(bids, func(i, j int) bool { return bids[i].value < bids[j].value })
	winner := bids[0]
	log.Debug("contract awarded",
		zap.String("session", sessionID.String()),
		zap.String("goal", goal.String()),
		zap.String("winner", winner.name),
		zap.Int("bid", winner.value),
	)

	if winner.value == rpg.DeadEnd {
		return rpg.DeadEnd
	}
	completionTime, ok := winner.agent.Plan(goal, c)
	if !ok {
		return rpg.DeadEnd
	}
	return completionTime
}

// AddPredictions publishes a committed action's add/remove effects to the
// shared stack at its timestamp, so agents planned after it observe the
// committed future.
func (c *CentralPlanner) AddPredictions(a action.Action) {
	t := a.Timestamp()
	for add := range a.Adds() {
		c.knowledge.PredictAdd(add, t)
	}
	for remove := range a.Removes() {
		c.knowledge.PredictRemove(remove, t)
	}
}

// AgentsOfType filters the registry with an arbitrary predicate, in
// registry order. The source's get_agents iterated `self.agents.values`
// without calling it — a bound method, not an iterable — so it could
// never actually run; this is the corrected, working equivalent, plain
// filtering rather than isinstance-style class matching.
func (c *CentralPlanner) AgentsOfType(matches func(name string, a Agent) bool) []Agent {
	var out []Agent
	for _, name := range c.order {
		a := c.agents[name]
		if matches(name, a) {
			out = append(out, a)
		}
	}
	return out
}

// AdmitPlans renders every agent's committed plan, framed by the
// "-----------------" separator and agent name the source prints before
// each agent's plan.
func (c *CentralPlanner) AdmitPlans() string {
	var sb strings.Builder
	for _, name := range c.order {
		fmt.Fprintln(&sb, "-----------------")
		fmt.Fprintln(&sb, name)
		for _, line := range c.agents[name].AdmitPlans() {
			fmt.Fprintln(&sb, line)
		}
	}
	return sb.String()
}
