package render

import "github.com/lixenwraith/embergaze/core"

// Scene palette. Touched variants are blended in by eye fade.
var (
	Background = core.RGB{R: 10, G: 9, B: 12}

	ScleraColor   = core.RGB{R: 226, G: 222, B: 210}
	ScleraTouched = core.RGB{R: 255, G: 206, B: 140}

	IrisColor   = core.RGB{R: 66, G: 108, B: 158}
	IrisTouched = core.RGB{R: 168, G: 96, B: 42}

	PupilColor = core.RGB{R: 14, G: 13, B: 16}

	GlintColor = core.RGB{R: 255, G: 252, B: 230}

	StatusOnline  = core.RGB{R: 92, G: 200, B: 120}
	StatusOffline = core.RGB{R: 110, G: 110, B: 110}
)
