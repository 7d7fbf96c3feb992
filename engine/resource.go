package engine

import (
	"time"

	"github.com/lixenwraith/embergaze/core"
)

// Resource holds singleton app resources, initialized at startup and handed
// to the state orchestrator and renderer
type Resource struct {
	Time   *TimeResource
	Config *ConfigResource

	// Bridged collaborators (nil when unavailable)
	Audio   *AudioResource
	Network *NetworkResource
}

// TimeResource wraps frame timing, updated at the start of every frame
type TimeResource struct {
	// Now is the wall-clock time of the current frame
	Now time.Time

	// Delta is the duration since the last frame
	Delta time.Duration

	// Frame is the current frame count
	Frame int64
}

// Update modifies fields in place (zero allocation per frame)
func (tr *TimeResource) Update(now time.Time, delta time.Duration, frame int64) {
	tr.Now = now
	tr.Delta = delta
	tr.Frame = frame
}

// ConfigResource holds static or semi-static configuration data
type ConfigResource struct {
	Width  int
	Height int
	FPS    int
}

// AudioPlayer is the minimal audio interface the orchestrator triggers.
// Play returns false when the backend is unavailable or muted.
type AudioPlayer interface {
	Play(core.Sound) bool
	ToggleMute() bool
	IsMuted() bool
}

// AudioResource wraps the audio player interface
type AudioResource struct {
	Player AudioPlayer
}

// NetworkProvider exposes the cosmetic online status.
// A failed or absent probe reads as offline; nothing downstream depends on
// the value beyond presentation.
type NetworkProvider interface {
	IsOnline() bool
	IsRunning() bool
}

// NetworkResource wraps the network provider
type NetworkResource struct {
	Provider NetworkProvider
}

// Online resolves the cosmetic status with the offline default
func (r *Resource) Online() bool {
	if r.Network == nil || r.Network.Provider == nil {
		return false
	}
	return r.Network.Provider.IsOnline()
}

// PlaySound triggers a cosmetic sound if an audio backend is bridged
func (r *Resource) PlaySound(s core.Sound) {
	if r.Audio == nil || r.Audio.Player == nil {
		return
	}
	r.Audio.Player.Play(s)
}
