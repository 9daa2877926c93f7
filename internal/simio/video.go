package simio

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// VideoRecorder accumulates snapshot frames into an MJPEG AVI, one frame per
// output interval.
type VideoRecorder struct {
	aw  mjpeg.AviWriter
	buf bytes.Buffer
}

// NewVideoRecorder opens an AVI file for frames of the given pixel size.
func NewVideoRecorder(path string, width, height, fps int) (*VideoRecorder, error) {
	if fps <= 0 {
		fps = 10
	}
	aw, err := mjpeg.New(path, int32(width), int32(height), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("video: %w", err)
	}
	return &VideoRecorder{aw: aw}, nil
}

// AddFrame JPEG-encodes the image and appends it to the AVI.
func (v *VideoRecorder) AddFrame(img image.Image) error {
	v.buf.Reset()
	if err := jpeg.Encode(&v.buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return fmt.Errorf("video: %w", err)
	}
	if err := v.aw.AddFrame(v.buf.Bytes()); err != nil {
		return fmt.Errorf("video: %w", err)
	}
	return nil
}

// Close finalizes the AVI index and closes the file.
func (v *VideoRecorder) Close() error {
	if err := v.aw.Close(); err != nil {
		return fmt.Errorf("video: %w", err)
	}
	return nil
}
