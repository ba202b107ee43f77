// Package codec converts canvases to and from encoded bytes and writes them
// out as still or animated images.
package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for file extensions without an encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// ErrNoFrames is returned when an animation would contain no frames.
var ErrNoFrames = errors.New("no frames to encode")

// Format identifies an output encoding.
type Format byte

const (
	PNG Format = iota
	APNG
	GIF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case APNG:
		return "apng"
	case GIF:
		return "gif"
	}
	return ""
}

// FormatFor picks the format from the filename extension.
func FormatFor(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return PNG, nil
	case ".apng":
		return APNG, nil
	case ".gif":
		return GIF, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filename)
}
