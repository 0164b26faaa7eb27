package graphics

import (
	"errors"
	"fmt"

	"igloo/internal/graphics/gfx"
)

// ErrInvalidLight is returned by Light.Validate.
var ErrInvalidLight = errors.New("invalid light")

// Light is one of the fixed-function positional lights.
type Light struct {
	Name   string
	Params gfx.Light
}

// lightCapability returns the Enable switch for light index i.
func lightCapability(i int) (gfx.Capability, bool) {
	switch i {
	case 0:
		return gfx.Light0, true
	case 1:
		return gfx.Light1, true
	}
	return 0, false
}

// DefaultLights returns the scene lights: a yellow omnidirectional key light
// and a red spot aimed down at the igloo.
func DefaultLights() []Light {
	return []Light{
		{
			Name: "key",
			Params: gfx.Light{
				Position:   [4]float32{60, 30, -30, 1},
				Ambient:    [4]float32{0.4, 0.4, 0.4, 1},
				Diffuse:    [4]float32{1, 1, 0.2, 1},
				SpotCutoff: 180,
			},
		},
		{
			Name: "spot",
			Params: gfx.Light{
				Position:         [4]float32{20, 30, -20, 1},
				Ambient:          [4]float32{0.4, 0.4, 0.4, 1},
				Diffuse:          [4]float32{1, 0, 0, 1},
				SpotCutoff:       40,
				SpotDirection:    [3]float32{20, -30, -20},
				HasSpotDirection: true,
			},
		},
	}
}

// Validate checks the values GL would otherwise reject or clamp silently.
func (l Light) Validate() error {
	p := l.Params
	if c := p.SpotCutoff; c != 180 && (c < 0 || c > 90) {
		return fmt.Errorf("%w %q: spot cutoff %v outside [0,90] and not 180", ErrInvalidLight, l.Name, c)
	}
	if w := p.Position[3]; w != 0 && w != 1 {
		return fmt.Errorf("%w %q: position w must be 0 or 1, got %v", ErrInvalidLight, l.Name, w)
	}
	for i := 0; i < 4; i++ {
		if p.Ambient[i] < 0 || p.Diffuse[i] < 0 {
			return fmt.Errorf("%w %q: negative color component", ErrInvalidLight, l.Name)
		}
	}
	if p.HasSpotDirection && p.SpotDirection == [3]float32{} {
		return fmt.Errorf("%w %q: zero spot direction", ErrInvalidLight, l.Name)
	}
	return nil
}

// SetupLighting validates and configures lights, then enables lighting and
// normal renormalization. At most two lights are supported.
func SetupLighting(cmds gfx.Commands, lights []Light) error {
	for i, l := range lights {
		if _, ok := lightCapability(i); !ok {
			return fmt.Errorf("%w %q: only two lights are supported", ErrInvalidLight, l.Name)
		}
		if err := l.Validate(); err != nil {
			return err
		}
	}
	for i, l := range lights {
		cp, _ := lightCapability(i)
		cmds.Light(i, l.Params)
		cmds.Enable(cp)
	}
	cmds.Enable(gfx.Lighting)
	cmds.Enable(gfx.Normalize)
	return nil
}
