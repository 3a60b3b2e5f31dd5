package cliutil

import (
	"testing"

	"cognate/internal/fact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGoalParsesFunctorAndArgs(t *testing.T) {
	goal, err := ParseGoal("At(bandit_A,path_b1)")
	require.NoError(t, err)
	assert.Equal(t, fact.At("bandit_A", "path_b1"), goal)

	goal, err = ParseGoal(" Trigger(path_a, trigger_a, junction) ")
	require.NoError(t, err)
	assert.Equal(t, fact.Trigger("path_a", "trigger_a", "junction"), goal)
}

func TestParseGoalRejectsMalformedInput(t *testing.T) {
	_, err := ParseGoal("At bandit_A path_b1")
	assert.Error(t, err)

	_, err = ParseGoal("NotAFunctor(a,b)")
	assert.Error(t, err)
}
