package visual

import (
	"fmt"
	"image"
	"io"
	"log"
	"time"

	"gridreel/internal/codec"
)

// Export writes every recorded frame to filename as an animation looping
// loop times (0 loops forever), holding the final state for the visual's
// hold duration. The file extension selects APNG (.apng, .png) or GIF
// (.gif). The file is only replaced when encoding succeeds, and a failed
// export leaves the recorded frames as they were.
func (v *Visual) Export(filename string, loop int, frameDuration time.Duration) error {
	f, err := codec.FormatFor(filename)
	if err != nil {
		return err
	}
	if v.frames.Len() == 0 {
		return fmt.Errorf("export %q: %w", filename, ErrNoFrames)
	}
	recorded := v.frames.Len()
	hold := HoldFrameCount(v.hold, frameDuration)
	if err := v.ExpandHold(hold); err != nil {
		v.frames.Truncate(recorded)
		return fmt.Errorf("ExpandHold failed: %w", err)
	}
	s := NewStream([]*Visual{v}, hold, image.Point{}, v.opt)
	if err := WriteStream(filename, f, s, codec.Options{LoopCount: loop, FrameDuration: frameDuration}, v.opt); err != nil {
		v.frames.Truncate(recorded)
		return err
	}
	return nil
}

// WriteStream encodes s into filename with format f.
func WriteStream(filename string, f codec.Format, s *Stream, copt codec.Options, opt Options) error {
	err := codec.WriteFileAtomic(filename, func(w io.Writer) error {
		n, err := codec.WriteAnimation(w, f, s, copt)
		if err != nil {
			return fmt.Errorf("WriteAnimation %s failed after %d frames: %w", f, n, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("export %q failed: %w", filename, err)
	}
	if !opt.Quiet {
		log.Printf("wrote %d frames to %q", s.Processed(), filename)
	}
	return nil
}
