package vmath

// Projection is a projected world point in screen space
type Projection struct {
	X, Y  float64 // Screen position in viewport pixels
	Scale float64 // Perspective scale at the point depth
	Width float64 // Projected road width at the point depth
}

// Projector maps world-space points onto a viewport through a single vanishing point camera
// Zero-allocation value type; copy freely
type Projector struct {
	CameraDepth  float64
	CameraHeight float64
	RoadWidth    float64
	ViewWidth    float64
	ViewHeight   float64
}

// Project maps (worldX, worldY, worldZ) seen from (cameraX, cameraY, cameraZ)
// worldZ must be strictly greater than cameraZ; equality divides by zero
func (p Projector) Project(worldX, worldY, worldZ, cameraX, cameraY, cameraZ float64) Projection {
	scale := p.CameraDepth / (worldZ - cameraZ)
	return Projection{
		X:     (worldX-cameraX)*scale + p.ViewWidth/2,
		Y:     (p.CameraHeight-worldY-cameraY)*scale + p.ViewHeight/2,
		Scale: scale,
		Width: scale * p.RoadWidth,
	}
}

// ProjectRelative projects a point at depth ahead of a camera sitting at depth 0
func (p Projector) ProjectRelative(worldX, worldY, depth, cameraX float64) Projection {
	return p.Project(worldX, worldY, depth, cameraX, 0, 0)
}

// Horizon returns the screen Y of points at infinite depth
func (p Projector) Horizon() float64 {
	return p.ViewHeight / 2
}
