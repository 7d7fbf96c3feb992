package sprite

import (
	"github.com/lixenwraith/embergaze/parameter"
)

// Manager owns the two shared fire sprites with reference counting.
// Images are created only on the 0->1 acquire transition and destroyed only
// when the count returns to 0, so multiple fire-effect or eye instances
// share one generation pass.
//
// Single-threaded by contract: touched only from the frame loop.
type Manager struct {
	gen    Generator
	refs   int
	images map[string]*Image
}

// NewManager creates a manager around the given generator
// A nil generator falls back to the procedural default
func NewManager(gen Generator) *Manager {
	if gen == nil {
		gen = ProcGenerator{}
	}
	return &Manager{gen: gen}
}

// Acquire increments the reference count, generating the sprites on the
// first acquisition. Returns the flame and spark images.
func (m *Manager) Acquire() (flame, spark *Image) {
	if m.refs == 0 {
		m.images = map[string]*Image{
			parameter.SpriteFlame: m.gen.Teardrop(parameter.SpriteFlame,
				parameter.FlameSpriteWidth, parameter.FlameSpriteHeight),
			parameter.SpriteSpark: m.gen.Disc(parameter.SpriteSpark,
				parameter.SparkSpriteSize),
		}
	}
	m.refs++
	return m.images[parameter.SpriteFlame], m.images[parameter.SpriteSpark]
}

// Release decrements the reference count and destroys the images when it
// reaches 0. Extra releases are a no-op.
func (m *Manager) Release() {
	if m.refs == 0 {
		return
	}
	m.refs--
	if m.refs == 0 {
		m.images = nil
	}
}

// Refs returns the current reference count
func (m *Manager) Refs() int {
	return m.refs
}

// Image returns the named sprite, or nil when no references are held
func (m *Manager) Image(name string) *Image {
	if m.images == nil {
		return nil
	}
	return m.images[name]
}
