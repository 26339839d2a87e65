package gate

// ScopeTracker validates that nested gates stay coherent while descending
// into a procedure's branch points. Entering a scope intersects the provided
// gate with the enclosing scope's effective gate; a nested gate that leaves
// no slot able to proceed is reported rather than silently producing a dead
// branch.
type ScopeTracker struct {
	// gates[d] is the effective gate at depth d; gates[0] is the allow-all
	// root scope.
	gates []Gate
}

// NewScopeTracker creates a tracker positioned at the root scope.
func NewScopeTracker() *ScopeTracker {
	return &ScopeTracker{gates: []Gate{AllowAll()}}
}

// Depth returns the current nesting depth. The root scope is depth zero.
func (t *ScopeTracker) Depth() int {
	return len(t.gates) - 1
}

// Current returns the effective gate of the innermost open scope: the
// intersection of every gate on the path from the root.
func (t *ScopeTracker) Current() Gate {
	return t.gates[len(t.gates)-1]
}

// Begin enters a scope gated by g. It fails with a NoIntersectionError when
// g admits no slot that the enclosing scopes also admit.
func (t *ScopeTracker) Begin(g Gate) error {
	eff := t.Current().Intersection(g)
	if eff.IsBlockAll() {
		return &NoIntersectionError{Expected: t.Current(), Provided: g}
	}
	t.gates = append(t.gates, eff)
	return nil
}

// Close leaves the innermost open scope.
func (t *ScopeTracker) Close() error {
	if len(t.gates) == 1 {
		return ErrScopeUnderflow
	}
	t.gates = t.gates[:len(t.gates)-1]
	return nil
}
