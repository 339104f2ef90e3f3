// Package audio plays the maze game's sound cues through the system speaker.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	chompLength = 70 * time.Millisecond
	deathLength = 900 * time.Millisecond
)

// SoundManager mixes short generated cues onto the speaker. Every method is
// a no-op until Initialize succeeds, so a machine without an audio device
// simply plays nothing.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	chomps int // Alternates the chomp pitch
}

// NewSoundManager creates a sound manager. Call Initialize before use.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Open creates and initializes a sound manager. If the speaker cannot be
// opened it logs a single warning and returns a manager that stays silent.
func Open(logger *log.Logger) *SoundManager {
	sm := NewSoundManager()
	if err := sm.Initialize(); err != nil && logger != nil {
		logger.Warn("audio disabled", "error", err)
	}
	return sm
}

// Initialize sets up the audio system.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether cues will reach the speaker.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted
}

// SetMuted silences or restores cues without closing the speaker.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Collect plays the short chomp for an eaten dot.
func (sm *SoundManager) Collect() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	high := sm.chomps%2 == 0
	sm.chomps++
	sm.add(beep.Take(sampleRate.N(chompLength), NewChompGenerator(sampleRate, high)))
}

// Defeat plays the falling death tune.
func (sm *SoundManager) Defeat() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	sm.add(beep.Take(sampleRate.N(deathLength), NewDeathGenerator(sampleRate)))
}

// add must be called with sm.mu held.
func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
