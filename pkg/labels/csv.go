package labels

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Read parses one label per record. Blank records are skipped and an
// optional "label" header is accepted.
func Read(r io.Reader) ([]int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	out := []int{}
	for n := 1; ; n++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		if len(record) == 0 || strings.TrimSpace(record[0]) == "" {
			continue
		}
		field := strings.TrimSpace(record[0])
		if n == 1 && strings.EqualFold(field, "label") {
			continue
		}

		if v, err := strconv.Atoi(field); err != nil {
			return nil, fmt.Errorf("record %d: invalid label %q: %v", n, field, err)
		} else {
			out = append(out, v)
		}
	}

	return out, nil
}

func Write(w io.Writer, labels []int) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"label"}); err != nil {
		return err
	}
	for _, label := range labels {
		if err := writer.Write([]string{strconv.Itoa(label)}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func ReadFile(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

func WriteFile(path string, labels []int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(f, labels); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// NumClasses is one more than the largest label.
func NumClasses(labels []int) int {
	classes := 0
	for _, label := range labels {
		if label+1 > classes {
			classes = label + 1
		}
	}
	return classes
}
