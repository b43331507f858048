package metadata

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestTreeSetLookup(t *testing.T) {
	tree := make(Tree)
	tree.Set("Exif", "DateTimeOriginal", "2023:05:01 10:00:00")
	tree.Set("Exif", "Make", "ACME")
	tree.Set("IFD0", "Make", "OTHER")

	tests := []struct {
		name   string
		group  string
		key    string
		want   string
		wantOK bool
	}{
		{"existing key", "Exif", "DateTimeOriginal", "2023:05:01 10:00:00", true},
		{"group scoping", "IFD0", "Make", "OTHER", true},
		{"missing key", "Exif", "Model", "", false},
		{"missing group", "GPS", "GPSDateStamp", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tree.Lookup(tt.group, tt.key)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Lookup(%s, %s) = (%q, %v), want (%q, %v)", tt.group, tt.key, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTreeFind(t *testing.T) {
	tree := make(Tree)
	tree.Set("Exif", "Make", "FromExif")
	tree.Set("IFD0", "Make", "FromIFD0")
	tree.Set("IFD0", "Model", "Shooter")

	tests := []struct {
		name   string
		key    string
		want   string
		wantOK bool
	}{
		{"qualified key", "IFD0.Make", "FromIFD0", true},
		{"qualified key other group", "Exif.Make", "FromExif", true},
		{"bare key picks sorted first group", "Make", "FromExif", true},
		{"bare key single group", "Model", "Shooter", true},
		{"qualified miss", "GPS.Make", "", false},
		{"bare miss", "Serial", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tree.Find(tt.key)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Find(%q) = (%q, %v), want (%q, %v)", tt.key, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTreeGroupsAndKeysSorted(t *testing.T) {
	tree := make(Tree)
	tree.Set("IFD0", "Model", "x")
	tree.Set("Exif", "DateTimeOriginal", "x")
	tree.Set("IFD0", "Make", "x")
	tree.Set("GPS", "GPSDateStamp", "x")

	if got, want := tree.Groups(), []string{"Exif", "GPS", "IFD0"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Groups() = %v, want %v", got, want)
	}
	if got, want := tree.Keys("IFD0"), []string{"Make", "Model"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys(IFD0) = %v, want %v", got, want)
	}
}

func TestIfdGroup(t *testing.T) {
	tests := []struct {
		ifdPath string
		want    string
	}{
		{"IFD", "IFD0"},
		{"IFD0", "IFD0"},
		{"IFD1", "IFD1"},
		{"IFD/Exif", "Exif"},
		{"IFD/GPS", "GPS"},
		{"IFD/GPSInfo", "GPS"},
		{"IFD/Exif/Iop", "Iop"},
	}

	for _, tt := range tests {
		t.Run(tt.ifdPath, func(t *testing.T) {
			if got := ifdGroup(tt.ifdPath); got != tt.want {
				t.Errorf("ifdGroup(%q) = %q, want %q", tt.ifdPath, got, tt.want)
			}
		})
	}
}

func TestCleanTagValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"plain", "ACME", "ACME"},
		{"nul padded", "ACME\x00\x00", "ACME"},
		{"whitespace", "  ACME  ", "ACME"},
		{"empty after nul", "\x00", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanTagValue(tt.value); got != tt.want {
				t.Errorf("cleanTagValue(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestMP4Time(t *testing.T) {
	// 1904-01-01 + offset lands on the Unix epoch.
	if got := mp4Time(mp4Epoch); got.Unix() != 0 {
		t.Errorf("mp4Time(epoch offset) = %v, want Unix epoch", got)
	}
	// A known value: 2023-05-01 10:00:00 UTC.
	var want int64 = 1682935200
	if got := mp4Time(uint64(want + mp4Epoch)); got.Unix() != want {
		t.Errorf("mp4Time() = %v, want unix %d", got, want)
	}
}

func TestDecodeError(t *testing.T) {
	cause := errors.New("boom")
	err := &DecodeError{Path: "/x/y.jpg", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("DecodeError does not unwrap to its cause")
	}
	msg := err.Error()
	if !strings.Contains(msg, "/x/y.jpg") || !strings.Contains(msg, "boom") {
		t.Errorf("DecodeError message = %q, want path and cause", msg)
	}
}
