package metadata

import (
	"os"
	"time"

	mkvparse "github.com/remko/go-mkvparse"
)

// MKVSource reads the Segment Info section of Matroska containers (mkv,
// webm). DateUTC carries the muxing date, which is the closest thing the
// format has to a creation time.
type MKVSource struct{}

func (MKVSource) Probe(path string) (Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	h := &infoHandler{}
	if err := mkvparse.ParseSections(f, h, mkvparse.InfoElement); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	tree := make(Tree)
	if h.found {
		tree.Set("stream", "creation_time", h.date.UTC().Format(streamTimeLayout))
		tree.Set("info", "date_utc", h.date.UTC().Format(streamTimeLayout))
	}
	if h.title != "" {
		tree.Set("info", "title", h.title)
	}
	if h.muxingApp != "" {
		tree.Set("info", "muxing_app", h.muxingApp)
	}
	if h.writingApp != "" {
		tree.Set("info", "writing_app", h.writingApp)
	}
	return tree, nil
}

// infoHandler collects the Segment Info elements we care about. Only the
// first DateUTC is kept.
type infoHandler struct {
	found      bool
	date       time.Time
	title      string
	muxingApp  string
	writingApp string
}

func (h *infoHandler) HandleMasterBegin(id mkvparse.ElementID, info mkvparse.ElementInfo) (bool, error) {
	return true, nil
}

func (h *infoHandler) HandleMasterEnd(id mkvparse.ElementID, info mkvparse.ElementInfo) error {
	return nil
}

func (h *infoHandler) HandleString(id mkvparse.ElementID, value string, info mkvparse.ElementInfo) error {
	switch id {
	case mkvparse.TitleElement:
		h.title = value
	case mkvparse.MuxingAppElement:
		h.muxingApp = value
	case mkvparse.WritingAppElement:
		h.writingApp = value
	}
	return nil
}

func (h *infoHandler) HandleInteger(id mkvparse.ElementID, value int64, info mkvparse.ElementInfo) error {
	return nil
}

func (h *infoHandler) HandleFloat(id mkvparse.ElementID, value float64, info mkvparse.ElementInfo) error {
	return nil
}

func (h *infoHandler) HandleDate(id mkvparse.ElementID, value time.Time, info mkvparse.ElementInfo) error {
	if id == mkvparse.DateUTCElement && !h.found {
		h.date = value
		h.found = true
	}
	return nil
}

func (h *infoHandler) HandleBinary(id mkvparse.ElementID, value []byte, info mkvparse.ElementInfo) error {
	return nil
}
