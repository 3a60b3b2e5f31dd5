package fact

import "sort"

// Variable is a mutable binding cell holding a set of candidate values
// plus a cached snapshot used for set-algebra composition across
// proposals (see Proposal).
type Variable struct {
	live     map[string]struct{}
	cache    map[string]struct{}
	hasCache bool
}

// NewVariable returns an empty variable ready to collect candidates.
func NewVariable() *Variable {
	return &Variable{live: make(map[string]struct{})}
}

// AddPossibility accumulates a candidate binding.
func (v *Variable) AddPossibility(value string) {
	v.live[value] = struct{}{}
}

// CacheResults moves the current live set into the cache slot and clears
// the live set, so a fresh Proposal can accumulate its own bindings
// without losing the prior proposal's results.
func (v *Variable) CacheResults() {
	v.cache = v.live
	v.live = make(map[string]struct{})
	v.hasCache = len(v.cache) > 0
}

// ApplyAnd intersects the live set with the cached snapshot. If the cached
// snapshot is empty (as on the variable's first use, but also when the
// previous proposal found no candidates), ApplyAnd is a no-op: this
// preserves the "first proposal establishes the candidate set" semantic.
func (v *Variable) ApplyAnd() {
	if !v.hasCache {
		return
	}
	result := make(map[string]struct{})
	for k := range v.live {
		if _, ok := v.cache[k]; ok {
			result[k] = struct{}{}
		}
	}
	v.live = result
	v.cache = nil
	v.hasCache = false
}

// ApplyOr unions the live set with the cached snapshot. No-op under the
// same no-cache edge case as ApplyAnd.
func (v *Variable) ApplyOr() {
	if !v.hasCache {
		return
	}
	for k := range v.cache {
		v.live[k] = struct{}{}
	}
	v.cache = nil
	v.hasCache = false
}

// PossibleValues returns the variable's current candidate set, sorted for
// deterministic iteration.
func (v *Variable) PossibleValues() []string {
	out := make([]string, 0, len(v.live))
	for k := range v.live {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Len reports the number of current candidates.
func (v *Variable) Len() int {
	return len(v.live)
}
