package main

import (
	"testing"

	"cognate/internal/scenario"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlannerRegistersAgentsByKind(t *testing.T) {
	fx, err := loadFixture()
	require.NoError(t, err)

	planner, err := buildPlanner(fx)
	require.NoError(t, err)

	_, ok := planner.Get("bandit_A")
	assert.True(t, ok)
	_, ok = planner.Get("miniboss")
	assert.True(t, ok)
}

func TestBuildPlannerRejectsUnknownKind(t *testing.T) {
	fx, err := loadFixture()
	require.NoError(t, err)
	fx.Agents = append(fx.Agents, scenario.AgentSpec{Name: "ghost", Kind: "wraith"})

	_, err = buildPlanner(fx)
	assert.Error(t, err)
}
