package naming

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// maxCandidates bounds the suffix search.
const maxCandidates = 10000

// ErrNoFreeName is returned when every candidate up to the search bound is
// taken.
var ErrNoFreeName = errors.New("no free output directory name")

// Allocator hands out output roots that neither exist on disk nor were
// already returned by this allocator. All methods are goroutine-safe.
type Allocator struct {
	mu       sync.Mutex
	claimed  map[string]bool // absolute paths already handed out
	counters map[string]int  // base path → next suffix to try

	// exists reports whether path is present on disk. Tests replace it.
	exists func(path string) (bool, error)
}

// NewAllocator creates a ready-to-use allocator backed by the real
// filesystem.
func NewAllocator() *Allocator {
	return &Allocator{
		claimed:  make(map[string]bool),
		counters: make(map[string]int),
		exists:   pathExists,
	}
}

// Allocate returns the output root for inputDir and limiter. The returned
// path is absolute and did not exist when it was checked; the caller
// creates it.
func (a *Allocator) Allocate(inputDir string, limiter int) (string, error) {
	parent, name, err := splitInput(inputDir)
	if err != nil {
		return "", err
	}
	base := filepath.Join(parent, BaseName(name, limiter))

	a.mu.Lock()
	defer a.mu.Unlock()

	for n := a.counters[base]; n < maxCandidates; n++ {
		path := candidate(base, n)
		if a.claimed[path] {
			continue
		}
		taken, err := a.exists(path)
		if err != nil {
			return "", fmt.Errorf("check %s: %w", path, err)
		}
		if taken {
			continue
		}
		a.claimed[path] = true
		a.counters[base] = n + 1
		return path, nil
	}
	return "", fmt.Errorf("%w for %s", ErrNoFreeName, base)
}

func pathExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
