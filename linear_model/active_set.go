package linear_model

// activeSet tracks which predictors currently participate in the model.
// It keeps both an ordered list of indices (activation order, which must
// match the column order of the Cholesky factor) and a membership flag per
// predictor for O(1) lookups.
type activeSet struct {
	indices []int
	member  []bool
}

func newActiveSet(p int) *activeSet {
	return &activeSet{
		indices: make([]int, 0, p),
		member:  make([]bool, p),
	}
}

// activate appends the predictor with absolute index idx to the active set.
func (a *activeSet) activate(idx int) {
	a.member[idx] = true
	a.indices = append(a.indices, idx)
}

// deactivate removes the entry at active-set position pos, preserving the
// relative order of the remaining entries.
func (a *activeSet) deactivate(pos int) {
	a.member[a.indices[pos]] = false
	a.indices = append(a.indices[:pos], a.indices[pos+1:]...)
}

// size returns the number of active predictors.
func (a *activeSet) size() int {
	return len(a.indices)
}

// at returns the absolute predictor index at active-set position pos.
func (a *activeSet) at(pos int) int {
	return a.indices[pos]
}

// contains reports whether the predictor with absolute index idx is active.
func (a *activeSet) contains(idx int) bool {
	return a.member[idx]
}

// ordered returns a copy of the active indices in activation order.
func (a *activeSet) ordered() []int {
	out := make([]int, len(a.indices))
	copy(out, a.indices)
	return out
}

// reset empties the set.
func (a *activeSet) reset() {
	for _, idx := range a.indices {
		a.member[idx] = false
	}
	a.indices = a.indices[:0]
}
