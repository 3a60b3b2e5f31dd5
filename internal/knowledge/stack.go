package knowledge

import "cognate/internal/fact"

// KnowledgeStack is a BaseKnowledge with an ordered sequence of delta
// layers pushed above it, plus the prediction set used to materialize
// future facts as the stack advances. Layer 0 is the base itself: it may
// not be popped and accepts only appends. Layers 1..N are the deltas an
// agent pushes while planning a turn, each one undoable by PopLayer.
type KnowledgeStack struct {
	base         *BaseKnowledge
	layers       []*delta
	predicted    *PredictedKnowledge
	currentLayer int
}

// NewKnowledgeStack returns a stack over base at layer 0, with no delta
// layers pushed.
func NewKnowledgeStack(base *BaseKnowledge) *KnowledgeStack {
	return &KnowledgeStack{base: base, predicted: NewPredictedKnowledge()}
}

// CurrentLayer reports the index of the topmost layer (0 means the base).
func (s *KnowledgeStack) CurrentLayer() int {
	return s.currentLayer
}

// PushLayer opens a new delta layer above the current one and returns its
// index. Any fact predicted (by AppendAdd/AppendRemove) to land exactly at
// the new layer's timestamp is materialized immediately.
func (s *KnowledgeStack) PushLayer() int {
	s.layers = append(s.layers, newDelta())
	s.currentLayer++

	for _, f := range s.predicted.GetPredictedAdds(s.currentLayer) {
		s.Append(f)
	}
	for _, f := range s.predicted.GetPredictedRemoves(s.currentLayer) {
		s.Remove(f)
	}
	return s.currentLayer
}

// PopLayer discards the topmost layer and returns the new current layer
// index, or -1 if the stack is already at the base and there is nothing
// left to pop.
func (s *KnowledgeStack) PopLayer() int {
	if s.currentLayer == 0 {
		return -1
	}
	s.layers = s.layers[:len(s.layers)-1]
	s.currentLayer--
	return s.currentLayer
}

// Append asserts f. At layer 0 this forwards straight to the base. Above
// layer 0, per invariant I1, a fact already true under CheckFact is left
// alone: Append only ever grows the current layer's add-set for facts
// that are not already true.
func (s *KnowledgeStack) Append(f fact.Fact) {
	if s.currentLayer == 0 {
		s.base.Append(f)
		return
	}
	if s.CheckFact(f) {
		return
	}
	s.layers[s.currentLayer-1].addFact(f)
}

// Remove retracts f at the current layer. Per invariant I2, a fact that
// is not currently true cannot be removed, and layer 0 never accepts
// removal since the base is append-only.
func (s *KnowledgeStack) Remove(f fact.Fact) {
	if s.currentLayer == 0 {
		return
	}
	if !s.CheckFact(f) {
		return
	}
	s.layers[s.currentLayer-1].deleteFact(f)
}

// CheckFact reports whether f currently holds: the base's truth value as
// overridden by each layer's adds and deletes, in layer order, with
// delete taking precedence within a layer over a same-layer add.
func (s *KnowledgeStack) CheckFact(f fact.Fact) bool {
	truth := s.base.Test(f)
	for i := 0; i < s.currentLayer; i++ {
		layer := s.layers[i]
		if _, ok := layer.adds[f.Functor][f]; ok {
			truth = true
		}
		if _, ok := layer.deletes[f.Functor][f]; ok {
			truth = false
		}
	}
	return truth
}

// Flatten projects the current truth of every fact under functor: the
// base set with each layer's adds and deletes applied in order.
func (s *KnowledgeStack) Flatten(functor fact.Functor) map[fact.Fact]struct{} {
	result := make(map[fact.Fact]struct{})
	for f := range s.base.All(functor) {
		result[f] = struct{}{}
	}
	for i := 0; i < s.currentLayer; i++ {
		layer := s.layers[i]
		for f := range layer.adds[functor] {
			result[f] = struct{}{}
		}
		for f := range layer.deletes[functor] {
			delete(result, f)
		}
	}
	return result
}

// FindPossibleSolutions considers every argument-tuple currently true
// under the proposal's functor, against the flattened view of the stack.
func (s *KnowledgeStack) FindPossibleSolutions(p *fact.Proposal) {
	for f := range s.Flatten(p.Functor) {
		p.Consider(f.Arguments())
	}
}

// FactsInCurrentAdd counts the distinct facts added at the topmost layer,
// across all functors. Zero at the base.
func (s *KnowledgeStack) FactsInCurrentAdd() int {
	if s.currentLayer == 0 {
		return 0
	}
	return s.layers[s.currentLayer-1].addCount()
}

// PredictAdd records that f is expected to become true at timestamp t.
func (s *KnowledgeStack) PredictAdd(f fact.Fact, t int) {
	s.predicted.AppendAdd(f, t)
}

// PredictRemove records that f is expected to become false at timestamp t.
func (s *KnowledgeStack) PredictRemove(f fact.Fact, t int) {
	s.predicted.AppendRemove(f, t)
}

// CheckPrediction returns the recorded prediction timestamp for f (-1 if
// none), routed by removal to the remove or add side of the prediction
// set.
func (s *KnowledgeStack) CheckPrediction(f fact.Fact, removal bool) int {
	return s.predicted.CheckPrediction(f, removal)
}

// Clone deep-copies the entire stack — base, every layer, and the
// prediction set — so the clone can diverge freely from the original.
// Agents clone the shared stack before planning their own turn.
func (s *KnowledgeStack) Clone() *KnowledgeStack {
	clone := &KnowledgeStack{
		base:         s.base.Clone(),
		predicted:    s.predicted.Clone(),
		currentLayer: s.currentLayer,
	}
	clone.layers = make([]*delta, len(s.layers))
	for i, l := range s.layers {
		clone.layers[i] = l.clone()
	}
	return clone
}

// AdvanceTo pushes empty (aside from materializing predictions) layers
// until the stack's current layer reaches t. Used when an agent must wait
// out turns while another agent's contracted plan executes.
func (s *KnowledgeStack) AdvanceTo(t int) {
	for s.currentLayer < t {
		s.PushLayer()
	}
}
