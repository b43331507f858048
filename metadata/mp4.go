package metadata

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	mp4 "github.com/abema/go-mp4"
)

// mp4Epoch is the offset between the ISO base media epoch (1904-01-01)
// and the Unix epoch, in seconds.
const mp4Epoch = 2082844800

// streamTimeLayout is the rendering used for creation times emitted into
// the tree, matching the ISO form camera firmware writes into containers.
const streamTimeLayout = "2006-01-02T15:04:05.000000Z07:00"

// MP4Source reads the movie header of MP4-family containers (mp4, mov,
// m4v) for the stream creation time and the ftyp box for brand info.
type MP4Source struct{}

func (MP4Source) Probe(path string) (Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	tree := make(Tree)

	boxes, err := mp4.ExtractBoxWithPayload(f, nil, mp4.BoxPath{mp4.BoxTypeMoov(), mp4.BoxTypeMvhd()})
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	if len(boxes) == 0 {
		return nil, &DecodeError{Path: path, Err: errors.New("no movie header box")}
	}
	mvhd, ok := boxes[0].Payload.(*mp4.Mvhd)
	if !ok {
		return nil, &DecodeError{Path: path, Err: errors.New("unexpected mvhd payload")}
	}

	var ct uint64
	if mvhd.Version > 0 {
		ct = mvhd.CreationTimeV1
	} else {
		ct = uint64(mvhd.CreationTimeV0)
	}
	// A zero creation time means the writer never set it; emitting it
	// would rename everything to 1904.
	if ct != 0 {
		tree.Set("stream", "creation_time", mp4Time(ct).Format(streamTimeLayout))
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	if ftyp, err := mp4.ExtractBoxWithPayload(f, nil, mp4.BoxPath{mp4.BoxTypeFtyp()}); err == nil && len(ftyp) > 0 {
		if payload, ok := ftyp[0].Payload.(*mp4.Ftyp); ok {
			tree.Set("format", "major_brand", string(payload.MajorBrand[:]))
			tree.Set("format", "minor_version", fmt.Sprintf("%d", payload.MinorVersion))
			brands := ""
			for i, b := range payload.CompatibleBrands {
				if i > 0 {
					brands += ","
				}
				brands += string(b.CompatibleBrand[:])
			}
			if brands != "" {
				tree.Set("format", "compatible_brands", brands)
			}
		}
	}

	return tree, nil
}

// mp4Time converts a media-header timestamp to UTC wall time.
func mp4Time(ct uint64) time.Time {
	return time.Unix(int64(ct)-mp4Epoch, 0).UTC()
}
