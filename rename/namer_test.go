package rename

import (
	"testing"
	"time"
)

func TestFormatName(t *testing.T) {
	ts := time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		cfg      NamingConfig
		counter  int
		suffixes string
		want     string
	}{
		{
			name:     "prefix with original extension",
			cfg:      NamingConfig{Prefix: "IMG_", TimeFormat: "%Y%m%d_%H%M%S"},
			suffixes: ".JPG",
			want:     "IMG_20230501_100000.JPG",
		},
		{
			name:     "counter below two is omitted",
			cfg:      NamingConfig{Prefix: "IMG_", TimeFormat: "%Y%m%d_%H%M%S"},
			counter:  1,
			suffixes: ".jpg",
			want:     "IMG_20230501_100000.jpg",
		},
		{
			name:     "counter two is appended",
			cfg:      NamingConfig{Prefix: "IMG_", TimeFormat: "%Y%m%d_%H%M%S"},
			counter:  2,
			suffixes: ".jpg",
			want:     "IMG_20230501_100000_2.jpg",
		},
		{
			name:     "suffix after counter",
			cfg:      NamingConfig{Prefix: "VID_", Suffix: "_gopro", TimeFormat: "%Y%m%d_%H%M%S"},
			counter:  3,
			suffixes: ".mp4",
			want:     "VID_20230501_100000_3_gopro.mp4",
		},
		{
			name:     "fixed extensions replace the original",
			cfg:      NamingConfig{Prefix: "VID_", TimeFormat: "%Y%m%d_%H%M%S", Extensions: []string{".mp4"}},
			suffixes: ".MP4",
			want:     "VID_20230501_100000.mp4",
		},
		{
			name:     "empty time format falls back to default",
			cfg:      NamingConfig{Prefix: "IMG_"},
			suffixes: ".jpg",
			want:     "IMG_20230501_100000.jpg",
		},
		{
			name:     "custom time format",
			cfg:      NamingConfig{TimeFormat: "%Y-%m-%d"},
			suffixes: ".png",
			want:     "2023-05-01.png",
		},
		{
			name:     "multi part suffix chain survives",
			cfg:      NamingConfig{Prefix: "IMG_", TimeFormat: "%Y%m%d_%H%M%S"},
			suffixes: ".tar.gz",
			want:     "IMG_20230501_100000.tar.gz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatName(ts, tt.cfg, tt.counter, tt.suffixes)
			if got != tt.want {
				t.Errorf("FormatName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatNameDeterministic(t *testing.T) {
	ts := time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)
	cfg := NamingConfig{Prefix: "IMG_", TimeFormat: "%Y%m%d_%H%M%S"}

	first := FormatName(ts, cfg, 2, ".jpg")
	for i := 0; i < 10; i++ {
		if got := FormatName(ts, cfg, 2, ".jpg"); got != first {
			t.Fatalf("FormatName() = %q on repeat call, want %q", got, first)
		}
	}
}

func TestSuffixes(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"IMG_0001.JPG", ".JPG"},
		{"archive.tar.gz", ".tar.gz"},
		{"noext", ""},
		{".hidden", ""},
		{"a.b", ".b"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			if got := Suffixes(tt.base); got != tt.want {
				t.Errorf("Suffixes(%q) = %q, want %q", tt.base, got, tt.want)
			}
		})
	}
}
