package rename

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/dkarlovi/exifrename/metadata"
)

// Extractor binds a metadata source to the key tables and naming
// defaults of one media kind. Variants are plain data; dispatch is a
// fixed-priority scan over the engine's extractor slice.
type Extractor struct {
	Kind    string
	Source  metadata.Source
	Naming  NamingConfig
	Matches []string // claimed extensions, lowercase with dot

	DateKeys    []TagRef
	DateLayouts []string
	ZoneKeys    map[string][]string

	// PostRename runs against the file's new path after a successful
	// rename. A failure downgrades the outcome to Error; the rename is
	// not rolled back.
	PostRename func(path string) error
}

// Claims reports whether the extractor handles the file, by
// case-insensitive extension match.
func (x *Extractor) Claims(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, m := range x.Matches {
		if ext == m {
			return true
		}
	}
	return false
}

// CreationTime resolves the authoritative creation timestamp from a
// probed tree using the extractor's fallback tables.
func (x *Extractor) CreationTime(tree metadata.Tree) (Candidate, error) {
	return ResolveTimestamp(tree, x.DateKeys, x.DateLayouts, x.ZoneKeys)
}

// imageDateLayouts are the known EXIF date renderings, most common
// first. The RFC3339 form covers writers that store ISO strings.
var imageDateLayouts = []string{
	"2006:01:02 15:04:05",
	"2006-01-02 15:04:05",
	"20060102150405",
	"2006-01-02T15:04:05.999999Z07:00",
}

// videoDateLayouts cover the ISO renderings containers use for
// creation_time, with and without fractional seconds.
var videoDateLayouts = []string{
	"2006-01-02T15:04:05.999999Z07:00",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// NewImageExtractor returns the still-image variant: EXIF date tags in
// precedence order, with group-scoped timezone offset tags.
func NewImageExtractor(naming NamingConfig) *Extractor {
	if naming.Prefix == "" {
		naming.Prefix = "IMG_"
	}
	return &Extractor{
		Kind:    "image",
		Source:  metadata.ExifSource{},
		Naming:  naming,
		Matches: []string{".jpg", ".jpeg", ".png", ".tif", ".tiff"},
		DateKeys: []TagRef{
			{Group: "Exif", Key: "DateTimeOriginal"},
			{Group: "Exif", Key: "DateTimeDigitized"},
			{Group: "GPS", Key: "GPSDateStamp"},
			{Group: "IFD0", Key: "DateTime"},
			{Group: "IFD1", Key: "DateTime"},
		},
		DateLayouts: imageDateLayouts,
		ZoneKeys: map[string][]string{
			"IFD0": {"TimeZoneOffset"},
			"IFD1": {"TimeZoneOffset"},
			"Exif": {"OffsetTime", "OffsetTimeOriginal", "OffsetTimeDigitized"},
		},
	}
}

// NewVideoExtractor returns the video variant. postRename, when non-nil,
// typically embeds a thumbnail into the renamed container.
func NewVideoExtractor(naming NamingConfig, postRename func(path string) error) *Extractor {
	if naming.Prefix == "" {
		naming.Prefix = "VID_"
	}
	return &Extractor{
		Kind:    "video",
		Source:  metadata.VideoSource{},
		Naming:  naming,
		Matches: []string{".mp4", ".mov", ".m4v", ".mkv", ".webm"},
		DateKeys: []TagRef{
			{Group: "stream", Key: "creation_time"},
		},
		DateLayouts: videoDateLayouts,
		PostRename:  postRename,
	}
}
