package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cognate/internal/rpg"
)

var traceCmd = &cobra.Command{
	Use:   "trace <agent> <goal>",
	Short: "Show an agent's relaxed-planning-graph bid for a goal without committing anything",
	Long: `Builds the agent's RPG heuristic for goal and prints the bid, without
running EHC search or committing any actions. Useful for understanding why
central would (or wouldn't) award a contract to this agent.`,
	Args: cobra.ExactArgs(2),
	RunE: runTrace,
}

func runTrace(cmd *cobra.Command, args []string) error {
	fx, err := loadFixture()
	if err != nil {
		return err
	}
	planner, err := buildPlanner(fx)
	if err != nil {
		return err
	}
	a, ok := planner.Get(args[0])
	if !ok {
		return fmt.Errorf("no agent registered as %q", args[0])
	}
	goal, err := parseGoal(args[1])
	if err != nil {
		return err
	}

	a.SetKnowledge(planner.Knowledge())
	bid := a.SupplyBid(goal)

	out := cmd.OutOrStdout()
	if bid == rpg.DeadEnd {
		fmt.Fprintf(out, "%s: DEAD_END — %s is unreachable from its current knowledge\n", args[0], goal.String())
		return nil
	}
	fmt.Fprintf(out, "%s: bid=%d for %s\n", args[0], bid, goal.String())
	return nil
}
