package naming

import (
	"fmt"
	"path/filepath"
)

// BaseName returns the output root name for an input directory called
// inputName: "<inputName>_sorted_L<limiter>".
func BaseName(inputName string, limiter int) string {
	return fmt.Sprintf("%s_sorted_L%d", inputName, limiter)
}

// candidate returns the n-th collision variant of base. n == 0 is base itself.
func candidate(base string, n int) string {
	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s (%d)", base, n)
}

// RatioDir returns the subdirectory of root that holds files labeled label
// (e.g. "16X9").
func RatioDir(root, label string) string {
	return filepath.Join(root, label)
}

// splitInput resolves inputDir to an absolute path and returns its parent
// and base name. The filesystem root has no usable name and is reported
// as "root".
func splitInput(inputDir string) (parent, name string, err error) {
	abs, err := filepath.Abs(inputDir)
	if err != nil {
		return "", "", fmt.Errorf("resolve %s: %w", inputDir, err)
	}
	parent, name = filepath.Split(abs)
	if name == "" {
		name = "root"
	}
	return filepath.Clean(parent), name, nil
}
