package metadata

import (
	"strings"

	exif "github.com/dsoprea/go-exif/v3"
)

// ExifSource decodes the EXIF block of still images. go-exif locates the
// TIFF structure inside JPEG, PNG and TIFF payloads by scanning, so no
// per-container plumbing is needed here.
type ExifSource struct{}

// Probe extracts all EXIF tags into a tree keyed by IFD group.
func (ExifSource) Probe(path string) (Tree, error) {
	rawExif, err := exif.SearchFileAndExtractExif(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	entries, _, err := exif.GetFlatExifData(rawExif, nil)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	tree := make(Tree)
	for _, entry := range entries {
		if entry.TagName == "" {
			continue
		}
		value := cleanTagValue(entry.FormattedFirst)
		if value == "" {
			continue
		}
		tree.Set(ifdGroup(entry.IfdPath), entry.TagName, value)
	}
	return tree, nil
}

// ifdGroup maps go-exif IFD paths onto the group names the resolver's
// key tables use: the root IFD and thumbnail IFD keep their index, the
// Exif and GPS sub-IFDs get their plain names.
func ifdGroup(ifdPath string) string {
	switch {
	case strings.Contains(ifdPath, "Iop"):
		return "Iop"
	case strings.Contains(ifdPath, "GPS"):
		return "GPS"
	case strings.Contains(ifdPath, "Exif"):
		return "Exif"
	case strings.HasSuffix(ifdPath, "1"):
		return "IFD1"
	default:
		return "IFD0"
	}
}

// cleanTagValue strips the NUL padding some writers leave in ASCII tags.
func cleanTagValue(v string) string {
	if i := strings.IndexByte(v, 0); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}
