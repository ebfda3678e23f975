package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Supported media file extensions (lowercase, with leading dot).
var mediaExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
	".mp4":  true,
	".mkv":  true,
	".mov":  true,
}

// IsMediaFile reports whether name has a supported extension. Matching is
// case-insensitive.
func IsMediaFile(name string) bool {
	return mediaExtensions[strings.ToLower(filepath.Ext(name))]
}

// Discover lists the files directly inside inputDir that have a media
// extension, sorted by name for deterministic processing order. Symlinks
// are followed and kept when they point at a regular file. Subdirectories
// are not descended into.
func Discover(inputDir string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if !IsMediaFile(e.Name()) {
			continue
		}
		path := filepath.Join(inputDir, e.Name())
		if !isRegularTarget(path, e) {
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)
	return files, nil
}

func isRegularTarget(path string, e fs.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
