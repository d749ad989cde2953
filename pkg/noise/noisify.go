package noise

import (
	"fmt"
	"log"
	"slices"

	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"
)

// ExternalLoader supplies labels that were corrupted outside this package,
// together with the raw data they belong to.
type ExternalLoader interface {
	LoadExternalNoise(path string) (*Result, error)
}

type Options struct {
	Type    NoiseType
	Classes int
	Rate    float64
	Seed    uint64

	// NoiseFile and Loader are only used by NoiseTypeFromFile.
	NoiseFile string
	Loader    ExternalLoader

	// Lenient logs a warning instead of failing when a positive rate
	// changed no label.
	Lenient bool
}

type Result struct {
	Labels       []int
	RealizedRate float64

	// Matrix is nil for externally supplied noise.
	Matrix *mat.Dense
	// Data is only set for externally supplied noise.
	Data *tensor.Dense
}

func Noisify(labels []int, opts Options) (*Result, error) {
	switch opts.Type {
	case NoiseTypeFromFile:
		if opts.Loader == nil {
			return nil, ErrNoLoader
		}
		return opts.Loader.LoadExternalNoise(opts.NoiseFile)

	case NoiseTypeSymmetric, NoiseTypePairFlip:
		p, err := BuildMatrix(opts.Type, opts.Classes, opts.Rate)
		if err != nil {
			return nil, err
		}

		if opts.Rate == 0 {
			if err := validateLabels(labels, opts.Classes); err != nil {
				return nil, err
			}
			return &Result{
				Labels: slices.Clone(labels),
				Matrix: identity(opts.Classes),
			}, nil
		}

		noisy, realized, err := Relabel(labels, p, opts.Seed)
		if err != nil {
			return nil, fmt.Errorf("%s noise: %w", opts.Type, err)
		}

		if realized == 0 {
			if !opts.Lenient {
				return nil, fmt.Errorf("%w: %s noise at rate %v over %d labels with seed %d", ErrNoNoiseApplied, opts.Type, opts.Rate, len(labels), opts.Seed)
			}
			log.Printf("warning: %s noise at rate %v changed none of %d labels", opts.Type, opts.Rate, len(labels))
		}

		return &Result{
			Labels:       noisy,
			RealizedRate: realized,
			Matrix:       p,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNoiseType, string(opts.Type))
	}
}
