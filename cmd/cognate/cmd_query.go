package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cognate/internal/fact"
)

var queryCmd = &cobra.Command{
	Use:   "query <functor>",
	Short: "List every fact of a functor in the fixture's base knowledge",
	Long: `Example:
  cognate query Path
  cognate query ClosedGate`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	functor, ok := fact.ParseFunctor(args[0])
	if !ok {
		return fmt.Errorf("unknown functor %q", args[0])
	}

	fx, err := loadFixture()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for f := range fx.Base.All(functor) {
		fmt.Fprintln(out, f.String())
	}
	return nil
}
