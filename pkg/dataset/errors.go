package dataset

import "errors"

var (
	ErrChecksumMismatch = errors.New("dataset: checksum mismatch")
	ErrNoClasses        = errors.New("dataset: image folder has no class directories")
	ErrNoSamples        = errors.New("dataset: image folder has no samples")
	ErrMissingLabel     = errors.New("dataset: no noisy label for sample")
	ErrImageShape       = errors.New("dataset: images differ in size")
)
