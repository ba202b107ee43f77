package visual

// FrameBuffer is a list of encoded frames in recording order.
// Stored frames are never modified, so identical frames may share bytes.
type FrameBuffer struct {
	frames [][]byte
}

// Append adds an encoded frame. The buffer takes ownership of frame.
func (b *FrameBuffer) Append(frame []byte) {
	b.frames = append(b.frames, frame)
}

// Len returns the number of buffered frames.
func (b *FrameBuffer) Len() int { return len(b.frames) }

// Truncate drops every frame after the first n.
func (b *FrameBuffer) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(b.frames) {
		clear(b.frames[n:])
		b.frames = b.frames[:n]
	}
}

// At returns the encoded frame i. The slice must not be modified.
func (b *FrameBuffer) At(i int) []byte { return b.frames[i] }
