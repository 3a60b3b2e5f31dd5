// Package cliutil holds small parsing helpers shared by the cognate and
// planview command-line entry points.
package cliutil

import (
	"fmt"
	"strings"

	"cognate/internal/fact"
)

// ParseGoal parses a fact written as "Functor(arg1,arg2)", e.g.
// "At(bandit_A,path_b1)".
func ParseGoal(s string) (fact.Fact, error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return fact.Fact{}, fmt.Errorf("malformed goal %q: want Functor(arg1,arg2)", s)
	}
	name := s[:open]
	functor, ok := fact.ParseFunctor(name)
	if !ok {
		return fact.Fact{}, fmt.Errorf("unknown functor %q", name)
	}

	raw := s[open+1 : len(s)-1]
	var args []string
	if strings.TrimSpace(raw) != "" {
		for _, a := range strings.Split(raw, ",") {
			args = append(args, strings.TrimSpace(a))
		}
	}
	return fact.New(functor, args...), nil
}
