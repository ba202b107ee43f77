package visual

import (
	"image"
	"io"
	"log"

	"gridreel/internal/codec"
)

// Stream yields the decoded frames of a sequence of visuals in order,
// numbering them globally. It is finite and cannot be restarted.
type Stream struct {
	visuals []*Visual
	hold    int
	resize  image.Point
	opt     Options

	total     int
	processed int
	vi, fi    int
}

// NewStream prepares the frames of visuals for output. The last hold frames
// of the whole sequence are counted as hold frames and show a frozen
// counter. A non-zero resize scales every frame to that size.
func NewStream(visuals []*Visual, hold int, resize image.Point, opt Options) *Stream {
	s := &Stream{visuals: visuals, hold: hold, resize: resize, opt: opt}
	for _, v := range visuals {
		s.total += v.Len()
	}
	return s
}

// Total returns the number of frames the stream yields.
func (s *Stream) Total() int { return s.total }

// Processed returns the number of frames yielded so far.
func (s *Stream) Processed() int { return s.processed }

// Next decodes, annotates and resizes the next frame. It returns io.EOF once
// every frame was yielded.
func (s *Stream) Next() (image.Image, error) {
	for s.vi < len(s.visuals) && s.fi >= s.visuals[s.vi].Len() {
		s.vi++
		s.fi = 0
	}
	if s.vi >= len(s.visuals) {
		return nil, io.EOF
	}
	v := s.visuals[s.vi]
	img, err := v.Frame(s.fi)
	if err != nil {
		return nil, &FrameError{Visual: s.vi, Frame: s.fi, Err: err}
	}
	s.processed++
	s.fi++
	if s.opt.Verbose {
		log.Printf("processing frame %d / %d", s.processed, s.total)
	}
	if v.cfg.Counter {
		pos, total := CounterPosition(s.processed, s.total, s.hold)
		v.Annotate(img, CounterLabel, pos, total)
	}
	if s.resize != (image.Point{}) {
		return codec.Resize(img, s.resize), nil
	}
	return img, nil
}
