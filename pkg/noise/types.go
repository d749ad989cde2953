package noise

import (
	"fmt"
	"strings"
)

type NoiseType string

const (
	NoiseTypeSymmetric NoiseType = "symmetric"
	NoiseTypePairFlip  NoiseType = "pairflip"
	NoiseTypeFromFile  NoiseType = "from_file"
)

func (t NoiseType) String() string {
	return string(t)
}

func ParseNoiseType(s string) (NoiseType, error) {
	switch NoiseType(strings.ToLower(strings.TrimSpace(s))) {
	case NoiseTypeSymmetric:
		return NoiseTypeSymmetric, nil
	case NoiseTypePairFlip:
		return NoiseTypePairFlip, nil
	case NoiseTypeFromFile:
		return NoiseTypeFromFile, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownNoiseType, s)
	}
}
