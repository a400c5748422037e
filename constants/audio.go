package constants

import "time"

// Audio Constants
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// Cue durations
	PickupSoundDuration   = 60 * time.Millisecond
	HitSoundDuration      = 40 * time.Millisecond
	MatchSoundDuration    = 120 * time.Millisecond
	MissSoundDuration     = 150 * time.Millisecond
	GameOverSoundDuration = 400 * time.Millisecond
	WinSoundDuration      = 500 * time.Millisecond
	LevelUpSoundDuration  = 600 * time.Millisecond

	// AudioMasterVolume scales every cue
	AudioMasterVolume = 0.25
)
