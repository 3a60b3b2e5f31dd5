package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var admitCmd = &cobra.Command{
	Use:   "admit <agent> <goal>",
	Short: "Plan toward a goal, then print every agent's committed actions",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdmit,
}

func runAdmit(cmd *cobra.Command, args []string) error {
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

	if ok := planner.Plan(args[0], goal); !ok {
		return fmt.Errorf("no agent registered as %q", args[0])
	}

	fmt.Fprint(cmd.OutOrStdout(), planner.AdmitPlans())
	return nil
}
