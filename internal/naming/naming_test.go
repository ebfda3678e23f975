package naming

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestBaseName(t *testing.T) {
	tests := []struct {
		name    string
		limiter int
		want    string
	}{
		{"photos", 10, "photos_sorted_L10"},
		{"Holiday 2024", 100, "Holiday 2024_sorted_L100"},
		{"root", 1, "root_sorted_L1"},
	}
	for _, tt := range tests {
		if got := BaseName(tt.name, tt.limiter); got != tt.want {
			t.Errorf("BaseName(%q, %d) = %q, want %q", tt.name, tt.limiter, got, tt.want)
		}
	}
}

func TestRatioDir(t *testing.T) {
	if got, want := RatioDir("/out/photos_sorted_L10", "16X9"), filepath.Join("/out/photos_sorted_L10", "16X9"); got != want {
		t.Errorf("RatioDir = %q, want %q", got, want)
	}
}

func TestAllocate_Fresh(t *testing.T) {
	parent := t.TempDir()
	input := mkdir(t, parent, "photos")

	got, err := NewAllocator().Allocate(input, 10)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(parent, "photos_sorted_L10"); got != want {
		t.Errorf("Allocate = %q, want %q", got, want)
	}
}

func TestAllocate_ExistingGetsIncreasingSuffixes(t *testing.T) {
	parent := t.TempDir()
	input := mkdir(t, parent, "photos")
	mkdir(t, parent, "photos_sorted_L10")

	a := NewAllocator()
	first, err := a.Allocate(input, 10)
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.Allocate(input, 10)
	if err != nil {
		t.Fatal(err)
	}

	if want := filepath.Join(parent, "photos_sorted_L10 (1)"); first != want {
		t.Errorf("first = %q, want %q", first, want)
	}
	if want := filepath.Join(parent, "photos_sorted_L10 (2)"); second != want {
		t.Errorf("second = %q, want %q", second, want)
	}
	for _, p := range []string{first, second} {
		if _, err := os.Lstat(p); err == nil {
			t.Errorf("%q already exists", p)
		}
	}
}

func TestAllocate_SkipsTakenSuffixes(t *testing.T) {
	parent := t.TempDir()
	input := mkdir(t, parent, "clips")
	mkdir(t, parent, "clips_sorted_L16")
	mkdir(t, parent, "clips_sorted_L16 (1)")
	// A regular file also blocks the name.
	if err := os.WriteFile(filepath.Join(parent, "clips_sorted_L16 (2)"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NewAllocator().Allocate(input, 16)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(parent, "clips_sorted_L16 (3)"); got != want {
		t.Errorf("Allocate = %q, want %q", got, want)
	}
}

func TestAllocate_LimiterIsPartOfName(t *testing.T) {
	parent := t.TempDir()
	input := mkdir(t, parent, "photos")
	mkdir(t, parent, "photos_sorted_L10")

	got, err := NewAllocator().Allocate(input, 24)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(parent, "photos_sorted_L24"); got != want {
		t.Errorf("Allocate = %q, want %q", got, want)
	}
}

func TestAllocate_RelativeInput(t *testing.T) {
	parent := t.TempDir()
	input := mkdir(t, parent, "shots")
	t.Chdir(input)

	got, err := NewAllocator().Allocate(".", 10)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(got) != "shots_sorted_L10" || !filepath.IsAbs(got) {
		t.Errorf("Allocate(\".\") = %q, want absolute .../shots_sorted_L10", got)
	}
}

func TestAllocate_ExistsError(t *testing.T) {
	boom := errors.New("permission denied")
	a := NewAllocator()
	a.exists = func(string) (bool, error) { return false, boom }

	if _, err := a.Allocate(t.TempDir(), 10); !errors.Is(err, boom) {
		t.Errorf("error = %v, want %v", err, boom)
	}
}

func TestAllocate_Exhausted(t *testing.T) {
	a := NewAllocator()
	a.exists = func(string) (bool, error) { return true, nil }

	if _, err := a.Allocate(t.TempDir(), 10); !errors.Is(err, ErrNoFreeName) {
		t.Errorf("error = %v, want ErrNoFreeName", err)
	}
}

func mkdir(t *testing.T, parent, name string) string {
	t.Helper()
	p := filepath.Join(parent, name)
	if err := os.Mkdir(p, 0o755); err != nil {
		t.Fatal(err)
	}
	return p
}
