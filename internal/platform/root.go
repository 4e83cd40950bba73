package platform

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrRootNotFound is returned when no site root marker exists above the start directory.
var ErrRootNotFound = errors.New("site root not found")

// RootMarkers are the files whose presence identifies the site root.
var RootMarkers = []string{ConfigFile, "package.json", ".git"}

// FindRoot looks upwards from startDir for a site root indicator.
// Indicators are: blog.yaml, package.json or a .git entry.
// It returns the absolute path of the first directory that has one.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		for _, marker := range RootMarkers {
			if hasFile(dir, marker) {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", ErrRootNotFound
}

// ResolveRoot is FindRoot falling back to the absolute start directory.
func ResolveRoot(startDir string) (string, error) {
	root, err := FindRoot(startDir)
	if errors.Is(err, ErrRootNotFound) {
		return filepath.Abs(startDir)
	}
	return root, err
}

func hasFile(dir, name string) bool {
	path := filepath.Join(dir, name)
	_, err := os.Stat(path)
	return err == nil
}
