package main

import (
	"fmt"
	"sort"

	"cognate/internal/action"
	"cognate/internal/agent"
	"cognate/internal/central"
	"cognate/internal/fact"
	"cognate/internal/scenario"
)

// turn is one committed action from one agent's plan, flattened into a
// single chronological replay across every agent central registered.
type turn struct {
	Agent     string
	Timestamp int
	Action    action.Action
}

// buildTurns runs central.Plan for instigator toward goal, then flattens
// every registered agent's committed plan into a single list ordered by
// timestamp (ties broken by agent name, for a deterministic replay).
func buildTurns(fx *scenario.Fixture, instigator string, goal fact.Fact) ([]turn, error) {
	planner := central.NewCentralPlanner(fx.Base)
	concrete := make(map[string]interface{ ActionPlan() []action.Action })

	for _, spec := range fx.Agents {
		switch spec.Kind {
		case "bandit":
			b := agent.NewBandit(spec.Name)
			planner.Register(spec.Name, b)
			concrete[spec.Name] = b
		case "miniboss":
			m := agent.NewMiniboss(spec.Name)
			planner.Register(spec.Name, m)
			concrete[spec.Name] = m
		default:
			return nil, fmt.Errorf("agent %q: unknown kind %q", spec.Name, spec.Kind)
		}
	}

	if ok := planner.Plan(instigator, goal); !ok {
		return nil, fmt.Errorf("no agent registered as %q", instigator)
	}

	var turns []turn
	for name, a := range concrete {
		for _, act := range a.ActionPlan() {
			turns = append(turns, turn{Agent: name, Timestamp: act.Timestamp(), Action: act})
		}
	}
	sort.SliceStable(turns, func(i, j int) bool {
		if turns[i].Timestamp != turns[j].Timestamp {
			return turns[i].Timestamp < turns[j].Timestamp
		}
		return turns[i].Agent < turns[j].Agent
	})
	return turns, nil
}
