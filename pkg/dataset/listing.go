package dataset

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ExpandUser replaces a leading ~ with the user's home directory.
func ExpandUser(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// ListDirs returns the sorted names of the directories in root. With prefix
// set, root is joined onto every name.
func ListDirs(root string, prefix bool) ([]string, error) {
	return list(root, prefix, func(e os.DirEntry) bool {
		return e.IsDir()
	})
}

// ListFiles returns the sorted names of the regular files in root ending in
// any of suffixes.
func ListFiles(root string, prefix bool, suffixes ...string) ([]string, error) {
	return list(root, prefix, func(e os.DirEntry) bool {
		if !e.Type().IsRegular() {
			return false
		}
		return slices.ContainsFunc(suffixes, func(s string) bool {
			return strings.HasSuffix(e.Name(), s)
		})
	})
}

func list(root string, prefix bool, keep func(os.DirEntry) bool) ([]string, error) {
	root, err := ExpandUser(root)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	out := []string{}
	for _, e := range entries {
		if !keep(e) {
			continue
		}
		if prefix {
			out = append(out, filepath.Join(root, e.Name()))
		} else {
			out = append(out, e.Name())
		}
	}
	return out, nil
}
