package render

import (
	"github.com/lixenwraith/neon-highway/engine"
	"github.com/lixenwraith/neon-highway/parameter"
	"github.com/lixenwraith/neon-highway/status"
)

// Context provides frame state for layer renderers, passed by value
type Context struct {
	Frame *engine.Frame

	// Surface dimensions in pixels
	Width  float64
	Height float64

	// Scale converts sizes authored at parameter.ReferenceHeight to this surface
	Scale float64

	// Time in seconds, drives cosmetic pulses
	Time float64

	Registry *status.Registry
}

// NewContext derives a render context for a frame drawn onto a surface of the given size
func NewContext(f *engine.Frame, width, height int, reg *status.Registry) Context {
	return Context{
		Frame:    f,
		Width:    float64(width),
		Height:   float64(height),
		Scale:    float64(height) / parameter.ReferenceHeight,
		Time:     f.Elapsed,
		Registry: reg,
	}
}

// Px scales an authored reference size, never below floor
func (c *Context) Px(v, floor float64) float64 {
	return max(v*c.Scale, floor)
}

// InViewportY reports whether y lies strictly between the horizon and the bottom edge
func (c *Context) InViewportY(y float64) bool {
	return y > c.Frame.Horizon && y < c.Height
}
