package noise_test

import (
	"testing"

	"github.com/grexie/labelnoise/pkg/noise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func rows(p mat.Matrix) [][]float64 {
	r, _ := p.Dims()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = mat.Row(nil, i, p)
	}
	return out
}

func assertRowsInDelta(t *testing.T, expected [][]float64, p mat.Matrix) {
	t.Helper()
	actual := rows(p)
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.InDeltaSlice(t, expected[i], actual[i], 1e-12, "row %d", i)
	}
}

func TestBuildMatrixSymmetric(t *testing.T) {
	p, err := noise.BuildMatrix(noise.NoiseTypeSymmetric, 3, 0.3)
	require.NoError(t, err)
	assertRowsInDelta(t, [][]float64{
		{0.7, 0.15, 0.15},
		{0.15, 0.7, 0.15},
		{0.15, 0.15, 0.7},
	}, p)
}

func TestBuildMatrixPairFlip(t *testing.T) {
	p, err := noise.BuildMatrix(noise.NoiseTypePairFlip, 3, 0.4)
	require.NoError(t, err)
	assertRowsInDelta(t, [][]float64{
		{0.6, 0.4, 0},
		{0, 0.6, 0.4},
		{0.4, 0, 0.6},
	}, p)
}

func TestBuildMatrixRowStochastic(t *testing.T) {
	for _, nt := range []noise.NoiseType{noise.NoiseTypeSymmetric, noise.NoiseTypePairFlip} {
		for classes := 2; classes <= 12; classes++ {
			for _, rate := range []float64{0, 0.01, 0.2, 0.45, 0.5, 0.8, 0.99} {
				p, err := noise.BuildMatrix(nt, classes, rate)
				require.NoError(t, err)
				require.NoError(t, noise.ValidateTransition(p), "%s classes=%d rate=%v", nt, classes, rate)

				for i, row := range rows(p) {
					assert.InDelta(t, 1, floats.Sum(row), 1e-6)
					assert.GreaterOrEqual(t, floats.Min(row), 0.0)
					assert.InDelta(t, 1-rate, row[i], 1e-12)
				}
			}
		}
	}
}

func TestBuildMatrixPairFlipNonZeros(t *testing.T) {
	for classes := 2; classes <= 10; classes++ {
		for _, rate := range []float64{0, 0.1, 0.45, 1} {
			p, err := noise.BuildMatrix(noise.NoiseTypePairFlip, classes, rate)
			require.NoError(t, err)

			for i, row := range rows(p) {
				nonZero := 0
				for _, v := range row {
					if v != 0 {
						nonZero++
					}
				}
				switch rate {
				case 0:
					assert.Equal(t, 1, nonZero)
				case 1:
					assert.Equal(t, 1, nonZero)
					assert.Equal(t, 1.0, row[(i+1)%classes])
				default:
					assert.Equal(t, 2, nonZero)
					assert.InDelta(t, 1-rate, row[i], 1e-12)
					assert.InDelta(t, rate, row[(i+1)%classes], 1e-12)
				}
			}
		}
	}
}

func TestBuildMatrixZeroRateIsIdentity(t *testing.T) {
	for _, nt := range []noise.NoiseType{noise.NoiseTypeSymmetric, noise.NoiseTypePairFlip} {
		p, err := noise.BuildMatrix(nt, 4, 0)
		require.NoError(t, err)
		for i, row := range rows(p) {
			for j, v := range row {
				if i == j {
					assert.Equal(t, 1.0, v)
				} else {
					assert.Equal(t, 0.0, v)
				}
			}
		}
	}
}

func TestBuildMatrixErrors(t *testing.T) {
	_, err := noise.BuildMatrix(noise.NoiseTypeSymmetric, 1, 0.2)
	assert.ErrorIs(t, err, noise.ErrInvalidClassCount)

	_, err = noise.BuildMatrix(noise.NoiseTypePairFlip, 5, -0.1)
	assert.ErrorIs(t, err, noise.ErrInvalidRate)

	_, err = noise.BuildMatrix(noise.NoiseTypePairFlip, 5, 1.5)
	assert.ErrorIs(t, err, noise.ErrInvalidRate)

	_, err = noise.BuildMatrix(noise.NoiseType("gaussian"), 5, 0.2)
	assert.ErrorIs(t, err, noise.ErrUnknownNoiseType)

	_, err = noise.BuildMatrix(noise.NoiseTypeFromFile, 5, 0.2)
	assert.ErrorIs(t, err, noise.ErrNoMatrix)
}

func TestParseNoiseType(t *testing.T) {
	for input, expected := range map[string]noise.NoiseType{
		"symmetric":  noise.NoiseTypeSymmetric,
		"PairFlip":   noise.NoiseTypePairFlip,
		" from_file": noise.NoiseTypeFromFile,
	} {
		nt, err := noise.ParseNoiseType(input)
		require.NoError(t, err)
		assert.Equal(t, expected, nt)
	}

	_, err := noise.ParseNoiseType("asymmetric")
	assert.ErrorIs(t, err, noise.ErrUnknownNoiseType)
}
