package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/folio-arcade/constants"
	"github.com/lixenwraith/folio-arcade/game"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// SoundManager plays game cues through a shared mixer
// Every method is a no-op until Initialize succeeds, so the game runs without a sound device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	log         *zap.Logger
}

// NewSoundManager creates a new sound manager
func NewSoundManager(log *zap.Logger) *SoundManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &SoundManager{
		mixer: &beep.Mixer{},
		log:   log.Named("audio"),
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker close that is safe to re-init; clearing the mixer silences output
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play queues a cue; dropped while muted or uninitialized
func (sm *SoundManager) Play(cue game.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := CreateCueSound(cue, sampleRate, constants.AudioMasterVolume)
	if s == nil {
		sm.log.Debug("unknown cue", zap.Stringer("cue", cue))
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// SetMuted silences future cues; playing cues finish
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// ToggleMuted flips the mute flag and returns the new value
func (sm *SoundManager) ToggleMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Available reports whether a speaker is open
func (sm *SoundManager) Available() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}
