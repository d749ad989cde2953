package noise

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// RowSumTolerance is the allowed deviation of a transition matrix row sum from 1.
const RowSumTolerance = 1e-6

// ValidateTransition checks that p is square, finite, non-negative and
// row-stochastic.
func ValidateTransition(p mat.Matrix) error {
	r, c := p.Dims()
	if r != c {
		return fmt.Errorf("%w: %dx%d", ErrNonSquare, r, c)
	}

	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, p)
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: P[%d][%d]", ErrNaNInf, i, j)
			} else if v < 0 {
				return fmt.Errorf("%w: P[%d][%d] = %v", ErrNegativeEntry, i, j, v)
			}
		}
		if sum := floats.Sum(row); math.Abs(sum-1) > RowSumTolerance {
			return fmt.Errorf("%w: row %d sums to %v", ErrRowSum, i, sum)
		}
	}

	return nil
}

func validateLabels(labels []int, classes int) error {
	if len(labels) == 0 {
		return ErrNoLabels
	}
	for i, label := range labels {
		if label < 0 || label >= classes {
			return fmt.Errorf("%w: labels[%d] = %d with %d classes", ErrLabelOutOfRange, i, label, classes)
		}
	}
	return nil
}
