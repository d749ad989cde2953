package noise

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

type Metrics struct {
	RealizedRate float64
	// Transition is the empirical transition matrix, rows normalized by class support.
	Transition *mat.Dense
	FlipRates  []float64
	Samples    []int
}

// CalculateMetrics compares a noisy label vector against the true labels.
func CalculateMetrics(labels, noisy []int, classes int) (Metrics, error) {
	if len(labels) != len(noisy) {
		return Metrics{}, fmt.Errorf("label vectors differ in length: %d != %d", len(labels), len(noisy))
	}
	if err := validateLabels(labels, classes); err != nil {
		return Metrics{}, err
	} else if err := validateLabels(noisy, classes); err != nil {
		return Metrics{}, fmt.Errorf("noisy labels: %w", err)
	}

	counts := mat.NewDense(classes, classes, nil)
	samples := make([]int, classes)
	for i := range labels {
		counts.Set(labels[i], noisy[i], counts.At(labels[i], noisy[i])+1)
		samples[labels[i]]++
	}

	metrics := Metrics{
		RealizedRate: RealizedRate(labels, noisy),
		Transition:   mat.NewDense(classes, classes, nil),
		FlipRates:    make([]float64, classes),
		Samples:      samples,
	}

	for i := 0; i < classes; i++ {
		if samples[i] == 0 {
			continue
		}
		for j := 0; j < classes; j++ {
			metrics.Transition.Set(i, j, counts.At(i, j)/float64(samples[i]))
		}
		metrics.FlipRates[i] = 1 - metrics.Transition.At(i, i)
	}

	return metrics, nil
}

func (m Metrics) Write(w io.Writer) error {
	if err := WriteMatrix(w, "Empirical Transition Matrix", m.Transition); err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Class Metrics")
	t.AppendHeader(table.Row{"CLASS", "FLIP RATE", "SAMPLES"})
	present := []float64{}
	for i, rate := range m.FlipRates {
		if m.Samples[i] == 0 {
			t.AppendRow(table.Row{i, "", 0})
			continue
		}
		present = append(present, rate)
		t.AppendRow(table.Row{i, fmt.Sprintf("%6.2f%%", 100*rate), m.Samples[i]})
	}
	t.AppendSeparator()
	if len(present) > 0 {
		mean, std := stat.MeanStdDev(present, nil)
		t.AppendRow(table.Row{"MEAN", fmt.Sprintf("%6.2f%%", 100*mean), ""})
		if len(present) > 1 {
			t.AppendRow(table.Row{"STDDEV", fmt.Sprintf("%6.2f%%", 100*std), ""})
		}
	}
	t.AppendFooter(table.Row{"REALIZED", fmt.Sprintf("%0.02f%%", 100*m.RealizedRate), ""})
	t.Render()

	return nil
}

// WriteMatrix renders a transition matrix as a table with true classes as rows.
func WriteMatrix(w io.Writer, title string, p mat.Matrix) error {
	if p == nil {
		return fmt.Errorf("nil matrix")
	}
	r, c := p.Dims()

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	header := table.Row{""}
	for j := 0; j < c; j++ {
		header = append(header, j)
	}
	t.AppendHeader(header)
	for i := 0; i < r; i++ {
		row := table.Row{i}
		for j := 0; j < c; j++ {
			row = append(row, fmt.Sprintf("%0.4f", p.At(i, j)))
		}
		t.AppendRow(row)
	}
	t.Render()

	return nil
}
