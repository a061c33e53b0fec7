// Package screen computes per-feature maximum absolute correlation
// against all other features of a sample data matrix.
package screen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/locograph/core"
)

// AbsCorrelationMatrix computes |XᵀX/n| with a zeroed diagonal.
//
// The result is the p×p screening matrix shared by every target: entry
// (i, j) is the absolute scaled inner product of features i and j, and
// the self term (i, i) is excluded by construction. See the package
// documentation for the standardization precondition.
func AbsCorrelationMatrix(X mat.Matrix) (*mat.Dense, error) {
	if X == nil {
		return nil, ErrNilMatrix
	}
	n, p := X.Dims()
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d rows", ErrNoSamples, n)
	}

	// Σ = XᵀX / n, then entrywise |·| with the diagonal dropped,
	// folded into a single pass over the product.
	sigma := mat.NewDense(p, p, nil)
	sigma.Mul(X.T(), X)
	inv := 1.0 / float64(n)
	sigma.Apply(func(i, j int, v float64) float64 {
		if i == j {
			return 0
		}
		return math.Abs(v) * inv
	}, sigma)

	return sigma, nil
}

// MaxAbsCorrelation returns, for each target feature, the largest
// absolute correlation with any other feature, one value per target in
// the order given. An empty target slice yields an empty result.
//
// Target indices must lie in [0, p); violations fail with
// core.ErrIndexOutOfRange before any computation.
func MaxAbsCorrelation(X mat.Matrix, targets []int) ([]float64, error) {
	if X == nil {
		return nil, ErrNilMatrix
	}
	_, p := X.Dims()
	if err := validateTargets(targets, p); err != nil {
		return nil, err
	}

	abs, err := AbsCorrelationMatrix(X)
	if err != nil {
		return nil, err
	}

	maxCors := make([]float64, 0, len(targets))
	row := make([]float64, p)
	for _, t := range targets {
		mat.Row(row, t, abs)
		maxCors = append(maxCors, floats.Max(row))
	}
	return maxCors, nil
}

// StrongestCorrelate returns the feature attaining the maximum absolute
// correlation with target, together with that value. Ties resolve to
// the lowest feature index. With p == 1 there is no other feature; the
// result is (target, 0).
func StrongestCorrelate(X mat.Matrix, target int) (int, float64, error) {
	if X == nil {
		return 0, 0, ErrNilMatrix
	}
	_, p := X.Dims()
	if err := validateTargets([]int{target}, p); err != nil {
		return 0, 0, err
	}

	abs, err := AbsCorrelationMatrix(X)
	if err != nil {
		return 0, 0, err
	}

	best, bestVal := target, 0.0
	for j := 0; j < p; j++ {
		if j == target {
			continue
		}
		if v := abs.At(target, j); v > bestVal {
			best, bestVal = j, v
		}
	}
	return best, bestVal, nil
}

// validateTargets rejects any index outside [0, p).
func validateTargets(targets []int, p int) error {
	for _, t := range targets {
		if t < 0 || t >= p {
			return fmt.Errorf("%w: target %d, %d features", core.ErrIndexOutOfRange, t, p)
		}
	}
	return nil
}
