package dataset

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/grexie/labelnoise/pkg/noise"
)

// FileNoise loads noisy labels that were produced outside this program. The
// file is a JSON object mapping image paths to labels.
type FileNoise struct {
	Folder *ImageFolder

	// Lenient logs instead of failing when the file changes no label.
	Lenient bool
}

func (f *FileNoise) LoadExternalNoise(path string) (*noise.Result, error) {
	if f.Folder == nil {
		return nil, fmt.Errorf("%w: no image folder for %s", ErrNoClasses, path)
	}

	mapping, err := readLabelMapping(path)
	if err != nil {
		return nil, err
	}

	truth := f.Folder.Labels()
	noisy := make([]int, len(f.Folder.Samples))
	for i, s := range f.Folder.Samples {
		if label, ok := f.lookup(mapping, s.Path); !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingLabel, s.Path)
		} else if label < 0 || label >= len(f.Folder.Classes) {
			return nil, fmt.Errorf("%w: %s has label %d with %d classes", noise.ErrLabelOutOfRange, s.Path, label, len(f.Folder.Classes))
		} else {
			noisy[i] = label
		}
	}

	data, err := f.Folder.Load()
	if err != nil {
		return nil, err
	}

	realized := noise.RealizedRate(truth, noisy)
	if realized == 0 {
		if !f.Lenient {
			return nil, fmt.Errorf("%w: %s", noise.ErrNoNoiseApplied, path)
		}
		log.Printf("warning: %s changes none of %d labels", path, len(noisy))
	}
	log.Printf("actual noise %.2f", realized)

	return &noise.Result{
		Labels:       noisy,
		RealizedRate: realized,
		Data:         data,
	}, nil
}

func (f *FileNoise) lookup(mapping map[string]int, path string) (int, bool) {
	if label, ok := mapping[path]; ok {
		return label, true
	}
	if rel, err := filepath.Rel(f.Folder.Root, path); err == nil {
		if label, ok := mapping[filepath.ToSlash(rel)]; ok {
			return label, true
		}
	}
	return 0, false
}

func readLabelMapping(path string) (map[string]int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var mapping map[string]int
	if err := json.Unmarshal(b, &mapping); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v", path, err)
	}
	return mapping, nil
}
