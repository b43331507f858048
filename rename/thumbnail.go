package rename

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Thumbnailer embeds a first-frame thumbnail into a renamed video via
// ffmpeg: extract one frame as jpg, then remux it as an attached_pic
// mjpeg stream. The remuxed file only replaces the original when it is
// at least as large, which guards against a truncated mux output.
type Thumbnailer struct {
	Width int
	log   zerolog.Logger
	run   func(args ...string) error
}

// NewThumbnailer builds a thumbnailer with the given frame width.
func NewThumbnailer(width int, log zerolog.Logger) *Thumbnailer {
	if width <= 0 {
		width = 320
	}
	return &Thumbnailer{Width: width, log: log, run: runFfmpeg}
}

// Embed attaches a thumbnail to the video at path, in place.
func (t *Thumbnailer) Embed(path string) error {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	thumbPath := stem + ".jpg"
	tmpPath := stem + ".output" + ext

	t.log.Debug().Str("file", path).Msg("creating thumbnail")
	if err := t.run(
		"-y", "-ss", "0.1", "-i", path,
		"-vf", fmt.Sprintf("thumbnail,scale=%d:-1", t.Width),
		"-frames:v", "1", thumbPath,
	); err != nil {
		os.Remove(thumbPath)
		return fmt.Errorf("extracting thumbnail frame: %w", err)
	}

	if err := t.run(
		"-y", "-i", path, "-i", thumbPath,
		"-map", "0", "-map", "1",
		"-c", "copy", "-c:v:1", "mjpeg",
		"-disposition:v:1", "attached_pic",
		"-map_metadata", "0",
		tmpPath,
	); err != nil {
		os.Remove(thumbPath)
		os.Remove(tmpPath)
		return fmt.Errorf("muxing thumbnail stream: %w", err)
	}
	os.Remove(thumbPath)

	tmpInfo, err := os.Stat(tmpPath)
	if err != nil {
		return fmt.Errorf("muxed output missing: %w", err)
	}
	origInfo, err := os.Stat(path)
	if err != nil {
		os.Remove(tmpPath)
		return err
	}
	if tmpInfo.Size() < origInfo.Size() {
		t.log.Warn().
			Str("file", path).
			Int64("muxed", tmpInfo.Size()).
			Int64("original", origInfo.Size()).
			Msg("muxed output smaller than original, keeping original")
		os.Remove(tmpPath)
		return nil
	}
	if err := os.Remove(path); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// runFfmpeg executes ffmpeg with captured stderr so failures carry the
// tool's diagnostics.
func runFfmpeg(args ...string) error {
	cmd := exec.Command("ffmpeg", args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg %s: %w: %s", strconv.Quote(strings.Join(args, " ")), err, lastLine(stderr.String()))
	}
	return nil
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
