// Package main implements the cognate CLI: a command-line front end for
// the contract-based multi-agent planner.
//
// File index:
//   - main.go        - entry point, rootCmd, global flags
//   - fixture.go      - scenario loading and planner/agent wiring shared by every subcommand
//   - cmd_plan.go     - planCmd
//   - cmd_admit.go    - admitCmd
//   - cmd_query.go    - queryCmd
//   - cmd_trace.go    - traceCmd
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cognate/internal/logging"
)

var (
	verbose      bool
	scenarioPath string
	noTriggers   bool
)

var rootCmd = &cobra.Command{
	Use:   "cognate",
	Short: "Contract-based multi-agent symbolic planner",
	Long: `cognate plans over a layered knowledge base with a relaxed-planning-
graph heuristic and enforced hill-climbing search, coordinating multiple
agents through a bid/contract protocol.

Without --scenario, every subcommand runs against the built-in
trigger-maze fixture.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Configure(verbose)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&scenarioPath, "scenario", "s", "", "path to a scenario YAML file (default: built-in trigger maze)")
	rootCmd.PersistentFlags().BoolVar(&noTriggers, "no-triggers", false, "strip all Trigger facts from the fixture (forces infeasibility)")

	rootCmd.AddCommand(planCmd, admitCmd, queryCmd, traceCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
