package audio

import (
	"testing"

	"github.com/lixenwraith/folio-arcade/game"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	for c := game.CuePickup; c <= game.CueLevelUp; c++ {
		sm.Play(c)
	}
	sm.SetMuted(true)
	sm.Cleanup()

	if sm.Available() {
		t.Error("Available() = true without initialization")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker initialization may fail in CI/test environments without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}
	sm.Play(game.CueHit)
	sm.Cleanup()
	sm.Play(game.CueHit)
}

// TestSoundManagerMute verifies the mute toggle
func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager(nil)

	if sm.Muted() {
		t.Fatal("muted by default")
	}
	if !sm.ToggleMuted() || !sm.Muted() {
		t.Error("toggle did not mute")
	}
	if sm.ToggleMuted() {
		t.Error("toggle did not unmute")
	}
	sm.SetMuted(true)
	if !sm.Muted() {
		t.Error("SetMuted(true) ignored")
	}
}
