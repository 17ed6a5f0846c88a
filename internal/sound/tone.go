package sound

import (
	"math"
	"time"
)

// SampleRate is the rate used for the audio context and all generated tones.
const SampleRate = 44100

// Beep renders a sine tone with an exponential decay as 16-bit little-endian
// stereo PCM, the format ebiten's audio players consume.
func Beep(sampleRate int, freq float64, dur time.Duration, amp float64) []byte {
	if sampleRate <= 0 || dur <= 0 {
		return nil
	}
	if amp > math.MaxInt16 {
		amp = math.MaxInt16
	}
	n := int(float64(sampleRate) * dur.Seconds())
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		v := int16(math.Sin(2*math.Pi*freq*t) * amp * math.Exp(-3*t))
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return buf
}
