package core

// Sound identifies a cosmetic sound effect
type Sound uint8

const (
	// SoundTouch plays when either eye transitions into the touched state
	SoundTouch Sound = iota
	// SoundSpark plays on spark bursts (throttled by the caller)
	SoundSpark
)
