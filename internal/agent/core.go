// Package agent implements the shared agent contract (supplying bids,
// committing plans, contracting blocked sub-goals) plus the two concrete
// agent kinds: Bandit (full mover, can trigger gates) and Miniboss (mover
// only, must contract a Bandit to clear a closed gate ahead of it).
package agent

import (
	"cognate/internal/action"
	"cognate/internal/central"
	"cognate/internal/fact"
	"cognate/internal/knowledge"
	"cognate/internal/logging"
	"cognate/internal/rpg"
	"cognate/internal/search"

	"go.uber.org/zap"
)

// Core holds the state and planning logic common to every agent kind. It
// is never used on its own — Bandit and Miniboss embed it and supply
// ProduceValidActions, the one piece of behavior that differs between
// them. Core.producer is set to the embedding concrete agent at
// construction so SupplyBid/Plan can drive the RPG and EHC search through
// the concrete type's ProduceValidActions rather than a non-existent
// default.
type Core struct {
	Name string

	goal              fact.Fact
	knowledge         *knowledge.KnowledgeStack
	nextAvailableTime int
	actionPlan        []action.Action

	producer rpg.ActionProducer
}

func (c *Core) init(name string, producer rpg.ActionProducer) {
	c.Name = name
	c.producer = producer
}

// Goal returns the agent's current planning target. Part of
// rpg.ActionProducer.
func (c *Core) Goal() fact.Fact { return c.goal }

// NextAvailableTime reports the next timestamp this agent's plan is free
// to commit an action at.
func (c *Core) NextAvailableTime() int { return c.nextAvailableTime }

// ActionPlan returns the actions committed so far, in commit order.
func (c *Core) ActionPlan() []action.Action { return c.actionPlan }

// Knowledge exposes the agent's private knowledge clone, e.g. for tests.
func (c *Core) Knowledge() *knowledge.KnowledgeStack { return c.knowledge }

// SetKnowledge clones shared and advances the clone to this agent's
// next-available time, so the agent plans against a view of the world
// consistent with what it has already committed to.
func (c *Core) SetKnowledge(shared *knowledge.KnowledgeStack) {
	c.knowledge = shared.Clone()
	c.knowledge.AdvanceTo(c.nextAvailableTime)
}

// SupplyBid builds an RPG toward goal from the agent's current knowledge
// and returns its heuristic value as the agent's bid (lower is better;
// rpg.DeadEnd means "cannot deliver this goal").
func (c *Core) SupplyBid(goal fact.Fact) int {
	c.goal = goal
	graph := rpg.New(c.knowledge, c.producer)
	heuristic, _ := graph.GenerateHeuristic()
	return heuristic
}

// Plan runs an EHC search toward goal and commits actions in search order
// up to the first one carrying a RequiredGoal. That goal is contracted
// out through central; once the contract resolves, the agent advances its
// knowledge to the resume time and recurses to keep committing.
//
// Returns the time the goal was satisfied and true on success. If the
// search finds no plan, returns rpg.DeadEnd and false. If the contracted
// sub-goal is infeasible, returns the agent's current next-available time
// and false: the agent abandons committing further actions rather than
// recursing regardless, which is what the source's unconditional
// recursion failed to do.
func (c *Core) Plan(goal fact.Fact, contractor central.Contractor) (int, bool) {
	log := logging.Get(logging.CategoryAgent)
	c.goal = goal

	plan := search.NewPlan(c.knowledge, c.producer).Plan()
	if plan == nil {
		log.Debug("no plan found", zap.String("agent", c.Name), zap.String("goal", goal.String()))
		return rpg.DeadEnd, false
	}

	var blockingGoal *fact.Fact
	for _, act := range plan {
		requiredGoal, blocked := act.RequiredGoal()
		if blocked {
			g := requiredGoal
			blockingGoal = &g
			break
		}
		c.actionPlan = append(c.actionPlan, act)
		contractor.AddPredictions(act)
		c.knowledge.PushLayer()
		c.nextAvailableTime++
	}

	if blockingGoal == nil {
		return c.nextAvailableTime, true
	}

	resumeTime := contractor.Contract(*blockingGoal)
	if resumeTime == rpg.DeadEnd {
		log.Debug("contract failed, abandoning plan",
			zap.String("agent", c.Name),
			zap.String("required", blockingGoal.String()),
		)
		return c.nextAvailableTime, false
	}
	c.knowledge.AdvanceTo(resumeTime)
	c.nextAvailableTime = resumeTime

	return c.Plan(goal, contractor)
}

// AdmitPlans renders the agent's committed actions as display lines.
func (c *Core) AdmitPlans() []string {
	lines := make([]string, len(c.actionPlan))
	for i, a := range c.actionPlan {
		lines[i] = a.String()
	}
	return lines
}
