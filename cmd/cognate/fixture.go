package main

import (
	"fmt"

	"cognate/internal/agent"
	"cognate/internal/central"
	"cognate/internal/cliutil"
	"cognate/internal/fact"
	"cognate/internal/scenario"
)

func loadFixture() (*scenario.Fixture, error) {
	if noTriggers {
		return scenario.WithoutTriggers(), nil
	}
	if scenarioPath != "" {
		return scenario.Load(scenarioPath)
	}
	return scenario.TriggerMaze(), nil
}

func buildPlanner(fx *scenario.Fixture) (*central.CentralPlanner, error) {
	planner := central.NewCentralPlanner(fx.Base)
	for _, spec := range fx.Agents {
		switch spec.Kind {
		case "bandit":
			planner.Register(spec.Name, agent.NewBandit(spec.Name))
		case "miniboss":
			planner.Register(spec.Name, agent.NewMiniboss(spec.Name))
		default:
			return nil, fmt.Errorf("agent %q: unknown kind %q (want bandit or miniboss)", spec.Name, spec.Kind)
		}
	}
	return planner, nil
}

// parseGoal parses a fact written as "Functor(arg1,arg2)", e.g.
// "At(bandit_A,path_b1)".
func parseGoal(s string) (fact.Fact, error) {
	return cliutil.ParseGoal(s)
}
