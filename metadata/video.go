package metadata

import (
	"fmt"
	"path/filepath"
	"strings"
)

// VideoSource dispatches to the container-specific source by extension.
type VideoSource struct {
	mp4 MP4Source
	mkv MKVSource
}

func (s VideoSource) Probe(path string) (Tree, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".mov", ".m4v":
		return s.mp4.Probe(path)
	case ".mkv", ".webm":
		return s.mkv.Probe(path)
	default:
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("unsupported video container %q", filepath.Ext(path))}
	}
}
