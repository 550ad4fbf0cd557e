package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
)

// bytesPerFrame is one stereo float32 frame in the device format.
const bytesPerFrame = 8

// Tap streams a Track to the playback device and keeps the most recent
// mono mix of what it handed out for analysis. The device reads from its
// own goroutine, so every field is guarded by mu.
type Tap struct {
	mu    sync.Mutex
	track *Track
	frame int
	ring  []float64
	pos   int
}

// NewTap wraps track with a ring buffer of ringSize mono samples.
func NewTap(track *Track, ringSize int) *Tap {
	if ringSize <= 0 {
		ringSize = 1
	}
	return &Tap{track: track, ring: make([]float64, ringSize)}
}

// Read encodes float32 LE stereo frames into p.
func (t *Tap) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	remaining := t.track.Frames() - t.frame
	if remaining <= 0 {
		return 0, io.EOF
	}
	if frames > remaining {
		frames = remaining
	}
	size := len(t.ring)
	for i := 0; i < frames; i++ {
		l := t.track.Samples[(t.frame+i)*2]
		r := t.track.Samples[(t.frame+i)*2+1]
		putStereoF32LR(p, i, l, r)
		t.ring[t.pos] = (float64(l) + float64(r)) / 2
		t.pos = (t.pos + 1) % size
	}
	t.frame += frames
	return frames * bytesPerFrame, nil
}

// Latest fills dst with the newest samples, oldest first, leaving out the
// skip most recent frames. Slots older than the ring, or never written,
// read as zero.
func (t *Tap) Latest(dst []float64, skip int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if skip < 0 {
		skip = 0
	}
	size := len(t.ring)
	for i := range dst {
		back := len(dst) - i + skip
		if back > size {
			dst[i] = 0
			continue
		}
		dst[i] = t.ring[(t.pos-back+size)%size]
	}
}

// Seek moves the read position to a byte offset in the encoded stream,
// rounded down to a whole frame, and forgets the analysis history.
func (t *Tap) Seek(offset int64, whence int) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	total := int64(t.track.Frames()) * bytesPerFrame
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(t.frame)*bytesPerFrame + offset
	case io.SeekEnd:
		abs = total + offset
	default:
		return 0, fmt.Errorf("tap seek: invalid whence %d", whence)
	}
	if abs < 0 {
		return 0, errors.New("tap seek: negative position")
	}
	if abs > total {
		abs = total
	}
	t.frame = int(abs / bytesPerFrame)
	clear(t.ring)
	t.pos = 0
	return int64(t.frame) * bytesPerFrame, nil
}

// Done reports whether every frame has been handed to the device.
func (t *Tap) Done() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frame >= t.track.Frames()
}

// putStereoF32LR writes independent left/right samples in [-1,1] at frame i.
func putStereoF32LR(buf []byte, i int, left, right float32) {
	l := math.Float32bits(left)
	r := math.Float32bits(right)
	buf[i*8] = byte(l)
	buf[i*8+1] = byte(l >> 8)
	buf[i*8+2] = byte(l >> 16)
	buf[i*8+3] = byte(l >> 24)
	buf[i*8+4] = byte(r)
	buf[i*8+5] = byte(r >> 8)
	buf[i*8+6] = byte(r >> 16)
	buf[i*8+7] = byte(r >> 24)
}
