// Package scenario loads a world description — facts and an agent
// roster — from YAML, and provides the trigger-maze fixture used by the
// example scenarios and this package's own tests.
package scenario

import (
	"fmt"
	"os"

	"cognate/internal/fact"
	"cognate/internal/knowledge"
	"cognate/internal/logging"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// AgentSpec names one agent to seed into a roster, along with its kind
// ("bandit" or "miniboss").
type AgentSpec struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

// Fixture is a fully-loaded world: a base knowledge layer plus the agents
// that should be registered against it.
type Fixture struct {
	Base   *knowledge.BaseKnowledge
	Agents []AgentSpec
}

// document is the raw YAML shape. Pair/triple facts are plain string
// slices rather than fixed arrays so a malformed row (wrong arity) fails
// with a clear error instead of a silent truncation.
type document struct {
	Facts struct {
		Path         [][]string `yaml:"path"`
		Drop         [][]string `yaml:"drop"`
		Teleportable [][]string `yaml:"teleportable"`
		Downstairs   [][]string `yaml:"downstairs"`
		Upstairs     [][]string `yaml:"upstairs"`
		OpenGate     [][]string `yaml:"open_gate"`
		ClosedGate   [][]string `yaml:"closed_gate"`
		At           [][]string `yaml:"at"`
		Trigger      [][]string `yaml:"trigger"`
	} `yaml:"facts"`
	Agents []AgentSpec `yaml:"agents"`
}

// Load reads and parses a world description from a YAML file at path.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a world description from YAML bytes.
func Parse(data []byte) (*Fixture, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}

	base := knowledge.NewBaseKnowledge()
	builders := []struct {
		name  string
		arity int
		rows  [][]string
		build func(args []string) fact.Fact
	}{
		{"path", 2, doc.Facts.Path, func(a []string) fact.Fact { return fact.Path(a[0], a[1]) }},
		{"drop", 2, doc.Facts.Drop, func(a []string) fact.Fact { return fact.Drop(a[0], a[1]) }},
		{"teleportable", 2, doc.Facts.Teleportable, func(a []string) fact.Fact { return fact.Teleportable(a[0], a[1]) }},
		{"downstairs", 2, doc.Facts.Downstairs, func(a []string) fact.Fact { return fact.Downstairs(a[0], a[1]) }},
		{"upstairs", 2, doc.Facts.Upstairs, func(a []string) fact.Fact { return fact.Upstairs(a[0], a[1]) }},
		{"open_gate", 2, doc.Facts.OpenGate, func(a []string) fact.Fact { return fact.OpenGate(a[0], a[1]) }},
		{"closed_gate", 2, doc.Facts.ClosedGate, func(a []string) fact.Fact { return fact.ClosedGate(a[0], a[1]) }},
		{"at", 2, doc.Facts.At, func(a []string) fact.Fact { return fact.At(a[0], a[1]) }},
		{"trigger", 3, doc.Facts.Trigger, func(a []string) fact.Fact { return fact.Trigger(a[0], a[1], a[2]) }},
	}

	for _, b := range builders {
		for i, row := range b.rows {
			if len(row) != b.arity {
				return nil, fmt.Errorf("facts.%s[%d]: expected %d arguments, got %d", b.name, i, b.arity, len(row))
			}
			base.Append(b.build(row))
		}
	}

	logging.Get(logging.CategoryScenario).Debug("scenario parsed",
		zap.Int("agents", len(doc.Agents)),
	)
	return &Fixture{Base: base, Agents: doc.Agents}, nil
}
