// Package audio plays the looping ambient soundtrack.
package audio

import (
	"fmt"
	"io/fs"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"go.uber.org/zap"

	"github.com/Faultbox/hauntedhouse/internal/logger"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Ambient plays one WAV track on an endless loop.
type Ambient struct {
	mu  sync.Mutex
	log *zap.Logger

	initialized bool
	sampleRate  beep.SampleRate

	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	track    string

	// Volume settings (0.0 to 1.0)
	level float64
	muted bool
}

// New creates a player with the given volume. Nothing is opened until Play.
func New(volume float64, muted bool) *Ambient {
	return &Ambient{
		log:        logger.Named("audio"),
		sampleRate: DefaultSampleRate,
		level:      clamp(volume, 0, 1),
		muted:      muted,
	}
}

// init opens the speaker. Callers hold a.mu.
func (a *Ambient) init() error {
	if a.initialized {
		return nil
	}
	if err := speaker.Init(a.sampleRate, a.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	a.initialized = true
	return nil
}

// Play decodes path from fsys and loops it until Close. A second Play replaces the
// current track.
func (a *Ambient) Play(fsys fs.FS, path string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	f, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode %s: %w", path, err)
	}

	if err := a.init(); err != nil {
		streamer.Close()
		return err
	}
	a.stop()

	a.streamer = streamer
	a.ctrl = &beep.Ctrl{Streamer: loopChain(streamer, format.SampleRate, a.sampleRate)}
	a.volume = &effects.Volume{Streamer: a.ctrl, Base: 10}
	a.track = path
	a.applyVolume()

	speaker.Play(a.volume)
	a.log.Info("ambient track playing",
		zap.String("track", path),
		zap.Int("sample_rate", int(format.SampleRate)),
		zap.Int("channels", format.NumChannels),
	)
	return nil
}

// loopChain loops streamer forever and converts it to the output rate.
func loopChain(streamer beep.StreamSeeker, from, to beep.SampleRate) beep.Streamer {
	var s beep.Streamer = &loopStreamer{streamer: streamer}
	if from != to {
		s = beep.Resample(4, from, to, s)
	}
	return s
}

func (a *Ambient) stop() {
	if a.initialized {
		speaker.Clear()
	}
	if a.streamer != nil {
		a.streamer.Close()
		a.streamer = nil
	}
	a.ctrl = nil
	a.volume = nil
	a.track = ""
}

// Close stops playback and releases the speaker.
func (a *Ambient) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stop()
	if a.initialized {
		speaker.Close()
		a.initialized = false
	}
}

// Volume returns the volume.
func (a *Ambient) Volume() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.level
}

// SetMuted silences or restores playback without losing the position.
func (a *Ambient) SetMuted(muted bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.muted = muted
	a.applyVolume()
}

// ToggleMute flips the mute state and returns the new one.
func (a *Ambient) ToggleMute() bool {
	muted := !a.Muted()
	a.SetMuted(muted)
	return muted
}

// Muted reports whether playback is muted.
func (a *Ambient) Muted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.muted
}

// Track returns the path of the playing track, empty when nothing plays.
func (a *Ambient) Track() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.track
}

// applyVolume pushes the volume settings to the playing stream. Callers
// hold a.mu; the speaker lock is always taken after it.
func (a *Ambient) applyVolume() {
	if a.volume == nil {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	gain := a.level
	if a.muted {
		gain = 0
	}
	a.volume.Silent = gain <= 0
	a.volume.Volume = gainExponent(gain)
}

// gainExponent converts a linear 0-1 gain into the exponent of a base 10
// volume effect, so that 10^exponent equals the gain.
func gainExponent(gain float64) float64 {
	if gain <= 0 {
		return -10
	}
	return math.Log10(gain)
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

// loopStreamer rewinds its source whenever it runs dry.
type loopStreamer struct {
	streamer beep.StreamSeeker
}

func (l *loopStreamer) Stream(samples [][2]float64) (int, bool) {
	filled := 0
	for filled < len(samples) {
		n, ok := l.streamer.Stream(samples[filled:])
		filled += n
		if ok && n > 0 {
			continue
		}
		// An empty source would spin forever.
		if l.streamer.Len() == 0 {
			return filled, filled > 0
		}
		if err := l.streamer.Seek(0); err != nil {
			return filled, filled > 0
		}
	}
	return filled, true
}

func (l *loopStreamer) Err() error {
	return l.streamer.Err()
}
