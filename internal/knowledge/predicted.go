package knowledge

import "cognate/internal/fact"

// PredictedKnowledge records, for a single fact, the earliest layer
// timestamp at which some agent's plan expects it to become true
// (predicted add) or false (predicted remove). Earliest wins: if two
// plans both predict the same fact, the sooner prediction is the one
// that gets materialized when the knowledge stack advances.
type PredictedKnowledge struct {
	added   map[fact.Fact]int
	removed map[fact.Fact]int
}

// NewPredictedKnowledge returns an empty prediction set.
func NewPredictedKnowledge() *PredictedKnowledge {
	return &PredictedKnowledge{
		added:   make(map[fact.Fact]int),
		removed: make(map[fact.Fact]int),
	}
}

// AppendAdd records that f is predicted to become true at timestamp t,
// keeping the earliest timestamp if f was already predicted.
func (p *PredictedKnowledge) AppendAdd(f fact.Fact, t int) {
	if existing, ok := p.added[f]; !ok || t < existing {
		p.added[f] = t
	}
}

// AppendRemove records that f is predicted to become false at timestamp t,
// keeping the earliest timestamp if f was already predicted.
func (p *PredictedKnowledge) AppendRemove(f fact.Fact, t int) {
	if existing, ok := p.removed[f]; !ok || t < existing {
		p.removed[f] = t
	}
}

// TestAddition returns the predicted add timestamp for f, or -1 if none.
func (p *PredictedKnowledge) TestAddition(f fact.Fact) int {
	if t, ok := p.added[f]; ok {
		return t
	}
	return -1
}

// TestRemoval returns the predicted remove timestamp for f, or -1 if none.
func (p *PredictedKnowledge) TestRemoval(f fact.Fact) int {
	if t, ok := p.removed[f]; ok {
		return t
	}
	return -1
}

// CheckPrediction routes to TestRemoval when removal is true and to
// TestAddition otherwise.
func (p *PredictedKnowledge) CheckPrediction(f fact.Fact, removal bool) int {
	if removal {
		return p.TestRemoval(f)
	}
	return p.TestAddition(f)
}

// GetPredictedAdds returns every fact whose predicted add timestamp is
// exactly t.
func (p *PredictedKnowledge) GetPredictedAdds(t int) []fact.Fact {
	var out []fact.Fact
	for f, at := range p.added {
		if at == t {
			out = append(out, f)
		}
	}
	return out
}

// GetPredictedRemoves returns every fact whose predicted remove timestamp
// is exactly t.
func (p *PredictedKnowledge) GetPredictedRemoves(t int) []fact.Fact {
	var out []fact.Fact
	for f, at := range p.removed {
		if at == t {
			out = append(out, f)
		}
	}
	return out
}

// Clone deep-copies the prediction set.
func (p *PredictedKnowledge) Clone() *PredictedKnowledge {
	clone := NewPredictedKnowledge()
	for f, t := range p.added {
		clone.added[f] = t
	}
	for f, t := range p.removed {
		clone.removed[f] = t
	}
	return clone
}
