package linear_model

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/golars/core/parallel"
)

// parallelGramThreshold is the predictor count above which Gram and
// correlation computations are split across CPU cores.
const parallelGramThreshold = 64

// gramCache holds the solver's derived quantities: the correlation vector
// Xᵀy and, for the direct-solve branch, the Gram matrix XᵀX with the ridge
// strength folded into the diagonal. Incremental column updates keep both
// consistent with the predictor matrix without full recomputation of
// untouched entries.
type gramCache struct {
	gram    *mat.Dense    // XᵀX (+ lambda2·I), nil when not materialized
	xty     *mat.VecDense // Xᵀy
	lambda2 float64       // ridge strength added to the Gram diagonal, 0 disables
}

func newGramCache(lambda2 float64) *gramCache {
	return &gramCache{lambda2: lambda2}
}

// computeXty computes the correlation vector Xᵀy from scratch.
func (g *gramCache) computeXty(x *mat.Dense, y *mat.VecDense) {
	_, p := x.Dims()
	g.xty = mat.NewVecDense(p, nil)
	parallel.ParallelizeWithThreshold(p, parallelGramThreshold, func(start, end int) {
		for j := start; j < end; j++ {
			g.xty.SetVec(j, mat.Dot(x.ColView(j), y))
		}
	})
}

// computeGram materializes the Gram matrix XᵀX, adding lambda2 to the
// diagonal. Column blocks are filled in parallel; symmetry makes the
// duplicated work per pair cheaper than synchronizing.
func (g *gramCache) computeGram(x *mat.Dense) {
	_, p := x.Dims()
	g.gram = mat.NewDense(p, p, nil)
	parallel.ParallelizeWithThreshold(p, parallelGramThreshold, func(start, end int) {
		for j := start; j < end; j++ {
			col := x.ColView(j)
			for i := 0; i < p; i++ {
				g.gram.Set(i, j, mat.Dot(x.ColView(i), col))
			}
			g.gram.Set(j, j, g.gram.At(j, j)+g.lambda2)
		}
	})
}

// at returns the (i, j) entry of the materialized Gram matrix.
func (g *gramCache) at(i, j int) float64 {
	return g.gram.At(i, j)
}

// updateColumns refreshes every Gram entry involving a replaced predictor
// column: for each index the full row and column are recomputed, so cross
// terms against untouched predictors stay consistent. The correlation
// vector entries for the replaced columns are refreshed as well.
func (g *gramCache) updateColumns(x *mat.Dense, y *mat.VecDense, indices []int) {
	if g.gram != nil {
		_, p := x.Dims()
		for _, idx := range indices {
			col := x.ColView(idx)
			for j := 0; j < p; j++ {
				v := mat.Dot(col, x.ColView(j))
				if j == idx {
					v += g.lambda2
				}
				g.gram.Set(idx, j, v)
				g.gram.Set(j, idx, v)
			}
		}
	}
	g.updateXty(x, y, indices)
}

// updateXty refreshes the correlation entries for the given predictor indices.
func (g *gramCache) updateXty(x *mat.Dense, y *mat.VecDense, indices []int) {
	for _, idx := range indices {
		g.xty.SetVec(idx, mat.Dot(x.ColView(idx), y))
	}
}
