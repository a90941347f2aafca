package render

// Point is a surface coordinate in pixels
type Point struct {
	X, Y float64
}

// Surface is a 2D drawing target with canvas-like primitives
// Coordinates are pixels with the origin top-left; Translate offsets all later drawing until Restore
type Surface interface {
	Size() (width, height int)
	Save()
	Restore()
	Translate(dx, dy float64)

	FillRect(x, y, w, h float64, p Paint)
	FillPolygon(pts []Point, p Paint)
	StrokePolyline(pts []Point, closed bool, width float64, p Paint)
	FillEllipse(cx, cy, rx, ry float64, p Paint)
	FillText(x, y float64, text string, style TextStyle, p Paint)
}

// LayerRenderer draws one layer of a frame
type LayerRenderer interface {
	Render(ctx Context, s Surface)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// LayerObserver is optionally implemented by surfaces that track which layer is drawing
type LayerObserver interface {
	BeginLayer(l Layer)
}
