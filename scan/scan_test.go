package scan

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func makeTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range []string{"b.jpg", "a.jpg", "c.mp4"} {
		if err := os.WriteFile(filepath.Join(dir, f), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "d.jpg"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func names(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}

func TestCollectSingleFile(t *testing.T) {
	dir := makeTree(t)
	path := filepath.Join(dir, "a.jpg")

	files, err := Collect(path, false, false)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if !reflect.DeepEqual(files, []string{path}) {
		t.Errorf("Collect() = %v, want [%s]", files, path)
	}
}

func TestCollectDirectory(t *testing.T) {
	dir := makeTree(t)

	files, err := Collect(dir, false, false)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if got, want := names(files), []string{"a.jpg", "b.jpg", "c.mp4"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Collect() = %v, want %v (sorted, no subdir)", got, want)
	}
}

func TestCollectRecursive(t *testing.T) {
	dir := makeTree(t)

	files, err := Collect(dir, true, false)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if got, want := names(files), []string{"a.jpg", "b.jpg", "c.mp4", "d.jpg"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Collect() = %v, want %v", got, want)
	}
}

func TestCollectGlob(t *testing.T) {
	dir := makeTree(t)

	files, err := Collect(filepath.Join(dir, "*.jpg"), false, true)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if got, want := names(files), []string{"a.jpg", "b.jpg"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Collect() = %v, want %v", got, want)
	}
}

func TestCollectGlobSkipsDirectories(t *testing.T) {
	dir := makeTree(t)

	files, err := Collect(filepath.Join(dir, "*"), false, true)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	for _, f := range files {
		if filepath.Base(f) == "sub" {
			t.Errorf("Collect() included directory %s", f)
		}
	}
}

func TestCollectGlobRecursive(t *testing.T) {
	dir := t.TempDir()
	for _, d := range []string{"trip", filepath.Join("trip", "day1")} {
		if err := os.Mkdir(filepath.Join(dir, d), 0755); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range []string{
		"c.jpg",
		filepath.Join("trip", "b.jpg"),
		filepath.Join("trip", "day1", "a.jpg"),
		filepath.Join("trip", "day1", "notes.txt"),
	} {
		if err := os.WriteFile(filepath.Join(dir, f), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := Collect(filepath.Join(dir, "**", "*.jpg"), true, true)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	// Sorted by full path; ** also matches zero directories.
	if got, want := names(files), []string{"c.jpg", "b.jpg", "a.jpg"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Collect() = %v, want %v", got, want)
	}
}

func TestMatchSegments(t *testing.T) {
	tests := []struct {
		name    string
		pattern []string
		parts   []string
		want    bool
	}{
		{"exact", []string{"a.jpg"}, []string{"a.jpg"}, true},
		{"wildcard segment", []string{"*.jpg"}, []string{"a.jpg"}, true},
		{"doublestar zero dirs", []string{"**", "*.jpg"}, []string{"a.jpg"}, true},
		{"doublestar one dir", []string{"**", "*.jpg"}, []string{"sub", "a.jpg"}, true},
		{"doublestar many dirs", []string{"**", "*.jpg"}, []string{"x", "y", "z", "a.jpg"}, true},
		{"trailing doublestar", []string{"sub", "**"}, []string{"sub", "x", "a.jpg"}, true},
		{"extension mismatch", []string{"**", "*.jpg"}, []string{"sub", "a.txt"}, false},
		{"segment count mismatch", []string{"*.jpg"}, []string{"sub", "a.jpg"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchSegments(tt.pattern, tt.parts); got != tt.want {
				t.Errorf("matchSegments(%v, %v) = %v, want %v", tt.pattern, tt.parts, got, tt.want)
			}
		})
	}
}

func TestCollectMissingPath(t *testing.T) {
	if _, err := Collect(filepath.Join(t.TempDir(), "nope"), false, false); err == nil {
		t.Fatal("Collect() expected error for missing path")
	}
}
