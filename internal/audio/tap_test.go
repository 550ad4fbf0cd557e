package audio

import (
	"encoding/binary"
	"io"
	"math"
	"testing"
)

func testTrack(frames int) *Track {
	samples := make([]float32, 0, frames*2)
	for i := 0; i < frames; i++ {
		v := float32(i+1) / float32(frames)
		samples = append(samples, v, -v/2)
	}
	return &Track{Name: "test", SampleRate: SampleRate, Samples: samples}
}

// impulseTrack is silent except for a full-scale frame at index at.
func impulseTrack(frames, at int) *Track {
	samples := make([]float32, frames*2)
	samples[at*2] = 1
	samples[at*2+1] = 1
	return &Track{Name: "impulse", SampleRate: SampleRate, Samples: samples}
}

func readFrames(t *testing.T, tap *Tap, frames int) {
	t.Helper()
	n, err := tap.Read(make([]byte, frames*bytesPerFrame))
	if err != nil || n != frames*bytesPerFrame {
		t.Fatalf("Expected %d frames, got %d bytes (%v)", frames, n, err)
	}
}

func hasImpulse(samples []float64) bool {
	for _, v := range samples {
		if v != 0 {
			return true
		}
	}
	return false
}

func TestTapReadEncodesFloat32Stereo(t *testing.T) {
	tap := NewTap(testTrack(4), 16)
	buf := make([]byte, 2*bytesPerFrame)
	n, err := tap.Read(buf)
	if err != nil || n != 16 {
		t.Fatalf("Expected 16 bytes, got %d (%v)", n, err)
	}
	left := math.Float32frombits(binary.LittleEndian.Uint32(buf[0:]))
	right := math.Float32frombits(binary.LittleEndian.Uint32(buf[4:]))
	if left != 0.25 || right != -0.125 {
		t.Errorf("Expected first frame (0.25, -0.125), got (%v, %v)", left, right)
	}
}

func TestTapReadEOF(t *testing.T) {
	tap := NewTap(testTrack(3), 16)
	buf := make([]byte, 10*bytesPerFrame)
	n, err := tap.Read(buf)
	if err != nil || n != 3*bytesPerFrame {
		t.Fatalf("Expected short read of 3 frames, got %d (%v)", n, err)
	}
	if !tap.Done() {
		t.Errorf("Expected tap to be done")
	}
	if _, err := tap.Read(buf); err != io.EOF {
		t.Errorf("Expected io.EOF, got %v", err)
	}
}

func TestTapPartialFrameBufferIsNoop(t *testing.T) {
	tap := NewTap(testTrack(3), 16)
	n, err := tap.Read(make([]byte, bytesPerFrame-1))
	if n != 0 || err != nil {
		t.Errorf("Expected (0, nil), got (%d, %v)", n, err)
	}
}

func TestTapLatest(t *testing.T) {
	tap := NewTap(testTrack(8), 4)
	dst := make([]float64, 6)

	tap.Latest(dst, 0)
	for i, v := range dst {
		if v != 0 {
			t.Fatalf("Expected silence before playback, got %v at %d", v, i)
		}
	}

	if _, err := tap.Read(make([]byte, 6*bytesPerFrame)); err != nil {
		t.Fatal(err)
	}
	tap.Latest(dst, 0)

	// Mono mix of (v, -v/2) is v/4; the ring only holds the last 4 frames.
	expected := []float64{0, 0, 3.0 / 8 / 4, 4.0 / 8 / 4, 5.0 / 8 / 4, 6.0 / 8 / 4}
	for i := range expected {
		if math.Abs(dst[i]-expected[i]) > 1e-6 {
			t.Errorf("index %d: expected %v, got %v", i, expected[i], dst[i])
		}
	}
}

func TestTapLatestSkipsUnplayedFrames(t *testing.T) {
	const at = 20000
	tap := NewTap(impulseTrack(30000, at), TapSize+PlayerBufferFrames)
	dst := make([]float64, 2*DefaultBins)

	// The player has read up to and including the impulse, but its buffer
	// still holds the newest PlayerBufferFrames.
	readFrames(t, tap, at+1)
	tap.Latest(dst, 0)
	if dst[len(dst)-1] != 1 {
		t.Fatalf("Expected impulse at the newest slot without skipping, got %v", dst[len(dst)-1])
	}
	tap.Latest(dst, PlayerBufferFrames)
	if hasImpulse(dst) {
		t.Errorf("Expected unplayed impulse to stay out of the analysis window")
	}

	// Once a buffer's worth more has been read, the impulse has reached the speaker.
	readFrames(t, tap, PlayerBufferFrames)
	tap.Latest(dst, PlayerBufferFrames)
	if dst[len(dst)-1] != 1 {
		t.Errorf("Expected impulse at the newest played slot, got %v", dst[len(dst)-1])
	}
}

func TestTapSeek(t *testing.T) {
	tap := NewTap(testTrack(4), 16)
	readFrames(t, tap, 4)
	if !tap.Done() {
		t.Fatalf("Expected tap to be done")
	}

	pos, err := tap.Seek(0, io.SeekStart)
	if err != nil || pos != 0 {
		t.Fatalf("Expected rewind to 0, got %d (%v)", pos, err)
	}
	if tap.Done() {
		t.Errorf("Expected rewound tap to have frames left")
	}
	dst := make([]float64, 4)
	tap.Latest(dst, 0)
	if hasImpulse(dst) {
		t.Errorf("Expected history to be cleared by seek, got %v", dst)
	}

	buf := make([]byte, bytesPerFrame)
	if _, err := tap.Read(buf); err != nil {
		t.Fatal(err)
	}
	if left := math.Float32frombits(binary.LittleEndian.Uint32(buf)); left != 0.25 {
		t.Errorf("Expected first frame after rewind, got %v", left)
	}
}

func TestTapSeekPositions(t *testing.T) {
	tests := []struct {
		name    string
		offset  int64
		whence  int
		want    int64
		wantErr bool
	}{
		{"rounds down to a frame", 2*bytesPerFrame + 3, io.SeekStart, 2 * bytesPerFrame, false},
		{"from end", -bytesPerFrame, io.SeekEnd, 3 * bytesPerFrame, false},
		{"past end clamps", 100 * bytesPerFrame, io.SeekStart, 4 * bytesPerFrame, false},
		{"negative", -1, io.SeekStart, 0, true},
		{"bad whence", 0, 42, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tap := NewTap(testTrack(4), 16)
			got, err := tap.Seek(tt.offset, tt.whence)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Expected position %d, got %d", tt.want, got)
			}
		})
	}
}
