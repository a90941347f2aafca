package parameter

// Viewport defaults, in raster pixels (two pixels per terminal row)
const (
	DefaultViewWidth  = 160
	DefaultViewHeight = 96

	// HorizonRatio places the horizon at this fraction of viewport height
	HorizonRatio = 0.5

	// SkyGradientRatio is the fraction of viewport height covered by the sky gradient
	SkyGradientRatio = 0.6

	// StarCount and StarFieldRatio control the starfield above the horizon
	StarCount      = 100
	StarFieldRatio = 0.5

	// SunHeightRatio positions the sun vertically; SunRadiusRatio sizes it relative to viewport height
	SunHeightRatio = 0.3
	SunRadiusRatio = 0.1
)

// Sprite scaling for screen-space-only decorations
const (
	// ReferenceHeight is the viewport height at which screen-space sizes are authored
	ReferenceHeight = 1080.0

	// HeadlightBeamAlpha is the opacity of the player headlight cone
	HeadlightBeamAlpha = 0.1

	// TireMarkLength is the authored tire mark length at ReferenceHeight
	TireMarkLength = 80.0
)

// HUD layout in terminal cells
const (
	HUDMarginX = 2
	HUDMarginY = 1
)

// InputQueueSize is the capacity of the terminal event channel
const InputQueueSize = 64
