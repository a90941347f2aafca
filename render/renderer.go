package render

import (
	"github.com/lixenwraith/neon-highway/engine"
	"github.com/lixenwraith/neon-highway/status"
)

// Renderer is the complete frame pipeline:
// sky, stars, sun, props, road, sprites, player, then the screen-fixed HUD and menu/crash screens
type Renderer struct {
	orchestrator *Orchestrator
	debug        *debugRenderer
}

// NewRenderer registers every layer; reg feeds the debug overlay and may be nil
func NewRenderer(reg *status.Registry) *Renderer {
	o := NewOrchestrator(reg)
	debug := &debugRenderer{}

	o.Register(&skyRenderer{}, LayerSky)
	o.Register(&starRenderer{}, LayerStars)
	o.Register(&sunRenderer{}, LayerSun)
	o.Register(&propRenderer{}, LayerProps)
	o.Register(&roadRenderer{}, LayerRoad)
	o.Register(&spriteRenderer{}, LayerSprites)
	o.Register(&playerRenderer{}, LayerPlayer)
	o.Register(&screenRenderer{}, LayerOverlay)
	o.Register(debug, LayerHUD)
	o.Register(&hudRenderer{}, LayerHUD)

	return &Renderer{orchestrator: o, debug: debug}
}

// Draw renders f onto s
func (r *Renderer) Draw(s Surface, f *engine.Frame) {
	r.orchestrator.Render(s, f)
}

// SetDebug shows or hides the metrics overlay
func (r *Renderer) SetDebug(on bool) {
	r.debug.visible.Store(on)
}

// Debug reports whether the metrics overlay is shown
func (r *Renderer) Debug() bool {
	return r.debug.visible.Load()
}
