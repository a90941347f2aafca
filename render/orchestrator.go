package render

import (
	"github.com/lixenwraith/neon-highway/engine"
	"github.com/lixenwraith/neon-highway/status"
)

type rendererEntry struct {
	renderer LayerRenderer
	layer    Layer
	index    int // registration order for stable sort
}

// Orchestrator coordinates the layer pipeline for one frame
// World layers are drawn inside the camera-shake translation; sky, HUD and overlays are not
type Orchestrator struct {
	renderers []rendererEntry
	regCount  int
	registry  *status.Registry
}

// NewOrchestrator creates an empty pipeline
func NewOrchestrator(reg *status.Registry) *Orchestrator {
	return &Orchestrator{
		renderers: make([]rendererEntry, 0, 16),
		registry:  reg,
	}
}

// Register adds a renderer at the specified layer. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r LayerRenderer, layer Layer) {
	entry := rendererEntry{
		renderer: r,
		layer:    layer,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if layer < e.layer || (layer == e.layer && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Render draws f onto s through every visible renderer in layer order
func (o *Orchestrator) Render(s Surface, f *engine.Frame) {
	w, h := s.Size()
	ctx := NewContext(f, w, h, o.registry)
	observer, _ := s.(LayerObserver)
	shake := f.ShakeX != 0 || f.ShakeY != 0

	shaking := false
	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}

		if shake && entry.layer.World() != shaking {
			if shaking {
				s.Restore()
			} else {
				s.Save()
				s.Translate(f.ShakeX*ctx.Scale, f.ShakeY*ctx.Scale)
			}
			shaking = !shaking
		}

		if observer != nil {
			observer.BeginLayer(entry.layer)
		}
		entry.renderer.Render(ctx, s)
	}
	if shaking {
		s.Restore()
	}
}
