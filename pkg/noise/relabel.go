package noise

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Relabel draws a new label for every example from the row of p selected by
// its true label. The input slice is left untouched. The random source is
// seeded per call, so identical arguments give identical output.
func Relabel(labels []int, p mat.Matrix, seed uint64) ([]int, float64, error) {
	if err := ValidateTransition(p); err != nil {
		return nil, 0, err
	}
	classes, _ := p.Dims()
	if err := validateLabels(labels, classes); err != nil {
		return nil, 0, err
	}

	src := rand.NewSource(seed)
	rows := make([]*distuv.Categorical, classes)
	category := func(i int) *distuv.Categorical {
		if rows[i] == nil {
			c := distuv.NewCategorical(mat.Row(nil, i, p), src)
			rows[i] = &c
		}
		return rows[i]
	}

	out := make([]int, len(labels))
	for idx, label := range labels {
		out[idx] = int(category(label).Rand())
	}

	return out, RealizedRate(labels, out), nil
}

// RealizedRate is the fraction of positions where noisy differs from labels.
func RealizedRate(labels, noisy []int) float64 {
	if len(labels) == 0 {
		return 0
	}
	changed := 0
	for i := range labels {
		if labels[i] != noisy[i] {
			changed++
		}
	}
	return float64(changed) / float64(len(labels))
}
