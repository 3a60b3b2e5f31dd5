package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan <agent> <goal>",
	Short: "Plan toward a goal for the named agent",
	Long: `Runs the named agent's planning loop toward goal, contracting out
any blocking sub-goals to other registered agents along the way.

Example:
  cognate plan bandit_A "At(bandit_A,path_b1)"`,
	Args: cobra.ExactArgs(2),
	RunE: runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	fx, err := loadFixture()
	if err != nil {
		return err
	}
	planner, err := buildPlanner(fx)
	if err != nil {
		return err
	}
	goal, err := parseGoal(args[1])
	if err != nil {
		return err
	}

	ok := planner.Plan(args[0], goal)
	if !ok {
		return fmt.Errorf("no agent registered as %q", args[0])
	}

	fmt.Fprintln(cmd.OutOrStdout(), "plan complete; run `cognate admit` to see committed actions")
	return nil
}
