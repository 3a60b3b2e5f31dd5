package scenario

import (
	"cognate/internal/fact"
	"cognate/internal/knowledge"
)

// TriggerMaze builds the fixture used by the worked scenarios: a start
// room, a junction with three branches, two paired gates guarding the
// branches, and a final gate guarding the end room. Every Path is added
// symmetrically (both directions), matching how a location graph is
// normally described.
//
// Route: start <-> junction; junction <-> path_a, path_b, path_c;
// path_a <-> trigger_a (closed gate, triggered from junction);
// junction <-> path_b <-> path_b1 <-> path_b2 (closed gate between
// path_b1 and path_b2, triggered from trigger_b); trigger_a <-> trigger_b;
// path_b2 <-> path_b3 <-> end (closed gate between path_b3 and end,
// triggered from trigger_c); path_b2 <-> trigger_c.
func TriggerMaze() *Fixture {
	base := knowledge.NewBaseKnowledge()

	link := func(a, b string) {
		base.Append(fact.Path(a, b))
		base.Append(fact.Path(b, a))
	}
	link("start", "junction")
	link("junction", "path_a")
	link("junction", "path_b")
	link("junction", "path_c")
	link("path_a", "trigger_a")
	link("path_b", "path_b1")
	link("path_b1", "path_b2")
	link("trigger_a", "trigger_b")
	link("path_b2", "path_b3")
	link("path_b2", "trigger_c")
	link("path_b3", "end")

	base.Append(fact.ClosedGate("path_a", "trigger_a"))
	base.Append(fact.ClosedGate("trigger_a", "path_a"))
	base.Append(fact.ClosedGate("path_b1", "path_b2"))
	base.Append(fact.ClosedGate("path_b2", "path_b1"))
	base.Append(fact.ClosedGate("path_b3", "end"))
	base.Append(fact.ClosedGate("end", "path_b3"))

	base.Append(fact.Trigger("path_a", "trigger_a", "junction"))
	base.Append(fact.Trigger("trigger_a", "path_a", "junction"))
	base.Append(fact.Trigger("path_b1", "path_b2", "trigger_b"))
	base.Append(fact.Trigger("path_b2", "path_b1", "trigger_b"))
	base.Append(fact.Trigger("path_b3", "end", "trigger_c"))
	base.Append(fact.Trigger("end", "path_b3", "trigger_c"))

	base.Append(fact.At("bandit_A", "start"))
	base.Append(fact.At("miniboss", "start"))

	return &Fixture{
		Base: base,
		Agents: []AgentSpec{
			{Name: "bandit_A", Kind: "bandit"},
			{Name: "miniboss", Kind: "miniboss"},
		},
	}
}

// WithoutTriggers returns the trigger-maze fixture with every Trigger fact
// dropped, so every gate is permanently stuck closed. Used by the
// infeasibility scenario: no agent can ever satisfy a goal beyond the
// first closed gate.
func WithoutTriggers() *Fixture {
	f := TriggerMaze()
	trimmed := knowledge.NewBaseKnowledge()
	for _, functor := range fact.AllFunctors() {
		if functor == fact.TRIGGER {
			continue
		}
		for fct := range f.Base.All(functor) {
			trimmed.Append(fct)
		}
	}
	f.Base = trimmed
	return f
}
