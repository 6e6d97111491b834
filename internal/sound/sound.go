// Package sound plays the hit sample.
package sound

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

var ErrFormat = errors.New("sound: unsupported audio format")

// Format is the speaker format every sample is resampled to.
var Format = beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}

type Player interface {
	Hit()
}

type Nop struct{}

func (Nop) Hit() {}

// Beep mixes a fresh copy of the sample for every hit, so rapid hits overlap.
type Beep struct {
	sample  *beep.Buffer
	mixer   *beep.Mixer
	speaker bool
}

func NewBeep(sample *beep.Buffer) *Beep {
	return &Beep{sample: sample, mixer: &beep.Mixer{}}
}

// Init opens the speaker. Without it hits are only mixed.
func (b *Beep) Init() error {
	err := speaker.Init(Format.SampleRate, Format.SampleRate.N(time.Second/30))
	if nil != err {
		return fmt.Errorf("unable to open speaker: %w", err)
	}
	speaker.Play(b.mixer)
	b.speaker = true
	return nil
}

func (b *Beep) Hit() {
	s := b.sample.Streamer(0, b.sample.Len())
	if !b.speaker {
		b.mixer.Add(s)
		return
	}
	speaker.Lock()
	b.mixer.Add(s)
	speaker.Unlock()
}

// Load decodes an mp3 or wav file into memory.
func Load(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if nil != err {
		return nil, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrFormat, path)
	}
	if nil != err {
		f.Close()
		return nil, fmt.Errorf("unable to decode %s: %w", path, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(Format)
	if format.SampleRate == Format.SampleRate {
		buffer.Append(streamer)
	} else {
		buffer.Append(beep.Resample(4, format.SampleRate, Format.SampleRate, streamer))
	}
	return buffer, nil
}

// Click generates a short decaying tone.
func Click(freq float64, d time.Duration) *beep.Buffer {
	rate := float64(Format.SampleRate)
	pos := 0
	tone := beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			t := float64(pos) / rate
			v := 0.3 * math.Sin(2*math.Pi*freq*t) * math.Exp(-t*60)
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
	buffer := beep.NewBuffer(Format)
	buffer.Append(beep.Take(Format.SampleRate.N(d), tone))
	return buffer
}
