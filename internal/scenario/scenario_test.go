package scenario

import (
	"testing"

	"cognate/internal/fact"
	"cognate/internal/knowledge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBuildsFactsFromYAML(t *testing.T) {
	doc := []byte(`
facts:
  path:
    - [start, junction]
    - [junction, start]
  closed_gate:
    - [junction, vault]
  trigger:
    - [junction, vault, lever]
  at:
    - [bandit_A, start]
agents:
  - name: bandit_A
    kind: bandit
`)
	fx, err := Parse(doc)
	require.NoError(t, err)

	stack := knowledge.NewKnowledgeStack(fx.Base)
	assert.True(t, stack.CheckFact(fact.Path("start", "junction")))
	assert.True(t, stack.CheckFact(fact.ClosedGate("junction", "vault")))
	assert.True(t, stack.CheckFact(fact.Trigger("junction", "vault", "lever")))
	assert.True(t, stack.CheckFact(fact.At("bandit_A", "start")))
	require.Len(t, fx.Agents, 1)
	assert.Equal(t, "bandit", fx.Agents[0].Kind)
}

func TestParseRejectsWrongArity(t *testing.T) {
	_, err := Parse([]byte(`
facts:
  path:
    - [start]
`))
	assert.Error(t, err)
}

func TestTriggerMazeTopology(t *testing.T) {
	fx := TriggerMaze()
	stack := knowledge.NewKnowledgeStack(fx.Base)

	assert.True(t, stack.CheckFact(fact.At("bandit_A", "start")))
	assert.True(t, stack.CheckFact(fact.At("miniboss", "start")))
	assert.True(t, stack.CheckFact(fact.Path("start", "junction")))
	assert.True(t, stack.CheckFact(fact.Path("junction", "start")))
	assert.True(t, stack.CheckFact(fact.ClosedGate("path_b3", "end")))
	assert.True(t, stack.CheckFact(fact.Trigger("path_a", "trigger_a", "junction")))

	require.Len(t, fx.Agents, 2)
}

func TestWithoutTriggersDropsOnlyTriggerFacts(t *testing.T) {
	fx := WithoutTriggers()
	stack := knowledge.NewKnowledgeStack(fx.Base)

	assert.False(t, stack.CheckFact(fact.Trigger("path_a", "trigger_a", "junction")))
	assert.True(t, stack.CheckFact(fact.ClosedGate("path_a", "trigger_a")))
	assert.True(t, stack.CheckFact(fact.Path("start", "junction")))
}
