// Package scene loads the imported model drawn at the centre of the frame.
package scene

import "errors"

// ErrNotLoaded is returned when a provider is used before Load succeeded.
var ErrNotLoaded = errors.New("scene not loaded")

// Provider is an imported model that can draw itself into the graphics
// context it was created with. Load and Initialize run once, in that order;
// Draw runs every frame; Dispose releases everything and may be called
// more than once.
type Provider interface {
	Load() error
	Initialize() error
	Draw()
	Dispose()
}
