// Command planview replays a committed multi-agent plan turn by turn in a
// terminal UI: run the planner once up front, then step through the
// resulting actions (across every agent, interleaved by timestamp) with
// the arrow keys.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"cognate/internal/cliutil"
	"cognate/internal/scenario"
)

func main() {
	var (
		scenarioPath string
		noTriggers   bool
		instigator   = flag.String("agent", "miniboss", "agent to plan for")
		goalFlag     = flag.String("goal", "At(miniboss,end)", "goal fact, e.g. At(bandit_A,path_b1)")
	)
	flag.StringVar(&scenarioPath, "scenario", "", "path to a scenario YAML file (default: built-in trigger maze)")
	flag.BoolVar(&noTriggers, "no-triggers", false, "strip all Trigger facts from the fixture")
	flag.Parse()

	fx, err := loadFixture(scenarioPath, noTriggers)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	goal, err := cliutil.ParseGoal(*goalFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	turns, err := buildTurns(fx, *instigator, goal)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(newModel(turns)).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadFixture(scenarioPath string, noTriggers bool) (*scenario.Fixture, error) {
	if noTriggers {
		return scenario.WithoutTriggers(), nil
	}
	if scenarioPath != "" {
		return scenario.Load(scenarioPath)
	}
	return scenario.TriggerMaze(), nil
}
