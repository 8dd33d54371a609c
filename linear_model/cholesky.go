package linear_model

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/golars/pkg/errors"
)

// cholTol is the relative level below which the insert radicand counts as
// zero: an exactly dependent column leaves a rounding residue of a few ulps
// rather than a clean zero.
const cholTol = 1e-14

// cholFactor maintains the upper triangular Cholesky factor R of the active
// Gram submatrix, so RᵀR equals the Gram matrix restricted to the active
// predictors in activation order (ridge augmented when Elastic-Net is on).
// The factor grows by one row and column when a predictor enters and shrinks
// through Givens rotations when one leaves, avoiding refactorization.
type cholFactor struct {
	r *mat.TriDense
	n int
}

// size returns the current dimension of the factor.
func (c *cholFactor) size() int {
	return c.n
}

// reset discards the factor.
func (c *cholFactor) reset() {
	c.r = nil
	c.n = 0
}

// insert extends the factor for an entering predictor. sqNorm is the
// predictor's (ridge-augmented) squared norm and gramCol its Gram column
// against the current active set, in activation order; gramCol may be nil
// when the active set is empty. A diagonal radicand that is zero up to
// rounding, relative to sqNorm, means the entering predictor is numerically
// dependent on the active set and yields an IllConditionedError, leaving the
// factor unchanged.
func (c *cholFactor) insert(sqNorm float64, gramCol *mat.VecDense) error {
	if c.n == 0 {
		if sqNorm <= 0 {
			return errors.NewIllConditionedError("cholFactor.insert", sqNorm)
		}
		c.r = mat.NewTriDense(1, mat.Upper, []float64{math.Sqrt(sqNorm)})
		c.n = 1
		return nil
	}

	// Solve Rᵀ rk = gramCol for the new off-diagonal column.
	var rk mat.VecDense
	if err := rk.SolveVec(c.r.TTri(), gramCol); err != nil {
		return errors.Wrap(err, "cholFactor.insert: triangular solve failed")
	}

	radicand := sqNorm - mat.Dot(&rk, &rk)
	if radicand <= cholTol*sqNorm {
		return errors.NewIllConditionedError("cholFactor.insert", radicand)
	}

	n := c.n
	grown := mat.NewTriDense(n+1, mat.Upper, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			grown.SetTri(i, j, c.r.At(i, j))
		}
		grown.SetTri(i, n, rk.AtVec(i))
	}
	grown.SetTri(n, n, math.Sqrt(radicand))

	c.r = grown
	c.n = n + 1
	return nil
}

// delete removes the column at active-set position pos. Shedding an interior
// column leaves a factor with one subdiagonal entry per remaining column at
// or right of pos; Givens rotations restore triangularity before the last
// row is dropped.
func (c *cholFactor) delete(pos int) {
	n := c.n
	if n == 1 {
		c.reset()
		return
	}
	if pos == n-1 {
		c.r = shrinkTri(c.r, n-1)
		c.n = n - 1
		return
	}

	// R without column pos, as a rectangular working matrix.
	work := mat.NewDense(n, n-1, nil)
	for i := 0; i < n; i++ {
		dst := 0
		for j := 0; j < n; j++ {
			if j == pos {
				continue
			}
			if j >= i {
				work.Set(i, dst, c.r.At(i, j))
			}
			dst++
		}
	}

	m := n - 1
	for k := pos; k < m; k++ {
		givensRotate(work, k, m)
	}

	// Last row is now zero; keep the upper triangle of the first m rows.
	reduced := mat.NewTriDense(m, mat.Upper, nil)
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			reduced.SetTri(i, j, work.At(i, j))
		}
	}
	c.r = reduced
	c.n = m
}

// givensRotate zeroes work[k+1][k] by rotating rows k and k+1 across
// columns k..m-1. A zero subdiagonal entry needs no rotation.
func givensRotate(work *mat.Dense, k, m int) {
	a := work.At(k, k)
	b := work.At(k+1, k)
	if b == 0 {
		return
	}
	r := math.Hypot(a, b)
	cth := a / r
	sth := b / r
	for j := k; j < m; j++ {
		top := work.At(k, j)
		bot := work.At(k+1, j)
		work.Set(k, j, cth*top+sth*bot)
		work.Set(k+1, j, -sth*top+cth*bot)
	}
}

// shrinkTri returns the leading m×m block of an upper triangular matrix.
func shrinkTri(r *mat.TriDense, m int) *mat.TriDense {
	out := mat.NewTriDense(m, mat.Upper, nil)
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			out.SetTri(i, j, r.At(i, j))
		}
	}
	return out
}

// equiangular solves RᵀR d = s through two triangular solves and returns d,
// the unnormalized equiangular direction over the active set.
func (c *cholFactor) equiangular(s *mat.VecDense) (*mat.VecDense, error) {
	var w mat.VecDense
	if err := w.SolveVec(c.r.TTri(), s); err != nil {
		return nil, errors.Wrap(err, "cholFactor.equiangular: forward solve failed")
	}
	var d mat.VecDense
	if err := d.SolveVec(c.r, &w); err != nil {
		return nil, errors.Wrap(err, "cholFactor.equiangular: backward solve failed")
	}
	return &d, nil
}
