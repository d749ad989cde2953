package noise

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// MatrixBuilder returns the transition matrix for a noise model. Arguments
// are validated before a builder is called.
type MatrixBuilder func(classes int, rate float64) *mat.Dense

var builders = map[NoiseType]MatrixBuilder{
	NoiseTypeSymmetric: symmetricMatrix,
	NoiseTypePairFlip:  pairFlipMatrix,
}

// BuildMatrix returns the row-stochastic matrix P where P[i][j] is the
// probability that true class i is observed as class j.
func BuildMatrix(t NoiseType, classes int, rate float64) (*mat.Dense, error) {
	builder, ok := builders[t]
	if !ok {
		if t == NoiseTypeFromFile {
			return nil, fmt.Errorf("%w: %s", ErrNoMatrix, t)
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownNoiseType, string(t))
	}

	if classes < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidClassCount, classes)
	}
	if math.IsNaN(rate) || rate < 0 || rate > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRate, rate)
	}

	return builder(classes, rate), nil
}

// Any wrong class is equally likely.
func symmetricMatrix(classes int, rate float64) *mat.Dense {
	off := rate / float64(classes-1)
	p := mat.NewDense(classes, classes, nil)
	p.Apply(func(i, j int, _ float64) float64 {
		if i == j {
			return 1 - rate
		}
		return off
	}, p)
	return p
}

// Each class flips only to its cyclic successor.
func pairFlipMatrix(classes int, rate float64) *mat.Dense {
	p := mat.NewDense(classes, classes, nil)
	for i := 0; i < classes; i++ {
		p.Set(i, i, 1-rate)
		p.Set(i, (i+1)%classes, rate)
	}
	return p
}

func identity(classes int) *mat.Dense {
	p := mat.NewDense(classes, classes, nil)
	for i := 0; i < classes; i++ {
		p.Set(i, i, 1)
	}
	return p
}
