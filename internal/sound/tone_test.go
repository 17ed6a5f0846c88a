package sound

import (
	"encoding/binary"
	"testing"
	"time"
)

func sample(buf []byte, i, ch int) int16 {
	return int16(binary.LittleEndian.Uint16(buf[i*4+ch*2:]))
}

func TestBeepLayout(t *testing.T) {
	buf := Beep(SampleRate, 880, 100*time.Millisecond, 4000)
	frames := SampleRate / 10
	if len(buf) != frames*4 {
		t.Fatalf("len = %d, want %d", len(buf), frames*4)
	}
	if sample(buf, 0, 0) != 0 {
		t.Fatal("tone must start at zero crossing")
	}
	for i := 0; i < frames; i++ {
		l, r := sample(buf, i, 0), sample(buf, i, 1)
		if l != r {
			t.Fatalf("frame %d: channels differ (%d vs %d)", i, l, r)
		}
		if l > 4000 || l < -4000 {
			t.Fatalf("frame %d exceeds amplitude: %d", i, l)
		}
	}
}

func TestBeepDecays(t *testing.T) {
	buf := Beep(SampleRate, 220, time.Second, 8000)
	frames := len(buf) / 4
	peak := func(from, to int) int16 {
		var p int16
		for i := from; i < to; i++ {
			v := sample(buf, i, 0)
			if v < 0 {
				v = -v
			}
			if v > p {
				p = v
			}
		}
		return p
	}
	head := peak(0, frames/10)
	tail := peak(frames-frames/10, frames)
	if tail >= head {
		t.Fatalf("tail peak %d not below head peak %d", tail, head)
	}
}

func TestBeepEmpty(t *testing.T) {
	if Beep(SampleRate, 440, 0, 1000) != nil {
		t.Fatal("zero duration must produce no samples")
	}
}
