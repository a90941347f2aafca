package render

// Layer determines render order. Lower values render first
type Layer int

const (
	LayerSky Layer = iota
	LayerStars
	LayerSun
	LayerProps
	LayerRoad
	LayerSprites
	LayerPlayer
	LayerHUD
	LayerOverlay
)

// World layers move with camera shake; everything else is screen-fixed
func (l Layer) World() bool {
	return l >= LayerStars && l <= LayerPlayer
}

func (l Layer) String() string {
	switch l {
	case LayerSky:
		return "sky"
	case LayerStars:
		return "stars"
	case LayerSun:
		return "sun"
	case LayerProps:
		return "props"
	case LayerRoad:
		return "road"
	case LayerSprites:
		return "sprites"
	case LayerPlayer:
		return "player"
	case LayerHUD:
		return "hud"
	case LayerOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}
