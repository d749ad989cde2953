package dataset

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"gorgonia.org/tensor"
)

var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".PNG", ".JPG", ".JPEG"}

type Sample struct {
	Path  string
	Label int
}

// ImageFolder is a dataset laid out as root/<class>/<image>. Classes are the
// sorted directory names; a sample's label is its class's position.
type ImageFolder struct {
	Root    string
	Classes []string
	Samples []Sample
}

func NewImageFolder(root string) (*ImageFolder, error) {
	root, err := ExpandUser(root)
	if err != nil {
		return nil, err
	}

	classes, err := ListDirs(root, false)
	if err != nil {
		return nil, err
	} else if len(classes) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoClasses, root)
	}

	f := &ImageFolder{Root: root, Classes: classes}
	for label, class := range classes {
		files, err := ListFiles(filepath.Join(root, class), true, ImageExtensions...)
		if err != nil {
			return nil, err
		}
		for _, path := range files {
			f.Samples = append(f.Samples, Sample{Path: path, Label: label})
		}
	}

	return f, nil
}

func (f *ImageFolder) Labels() []int {
	out := make([]int, len(f.Samples))
	for i, s := range f.Samples {
		out[i] = s.Label
	}
	return out
}

// Load decodes every sample into a uint8 tensor of shape (N, H, W, 3).
func (f *ImageFolder) Load() (*tensor.Dense, error) {
	if len(f.Samples) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSamples, f.Root)
	}

	var backing []uint8
	height, width := 0, 0
	for i, s := range f.Samples {
		img, err := decodeImage(s.Path)
		if err != nil {
			return nil, err
		}

		bounds := img.Bounds()
		if i == 0 {
			height, width = bounds.Dy(), bounds.Dx()
			backing = make([]uint8, 0, len(f.Samples)*height*width*3)
		} else if bounds.Dy() != height || bounds.Dx() != width {
			return nil, fmt.Errorf("%w: %s is %dx%d, expected %dx%d", ErrImageShape, s.Path, bounds.Dx(), bounds.Dy(), width, height)
		}

		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				r, g, b, _ := img.At(x, y).RGBA()
				backing = append(backing, uint8(r>>8), uint8(g>>8), uint8(b>>8))
			}
		}
	}

	return tensor.New(tensor.WithShape(len(f.Samples), height, width, 3), tensor.WithBacking(backing)), nil
}

func decodeImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %v", path, err)
	}
	return img, nil
}
