package render

// Neon synthwave palette
var (
	SkyStops = [...]RGB{Hex("#1a0033"), Hex("#2d1b4e"), Hex("#4a2472"), Hex("#6b3fa0")}

	SunCore  = RGBWhite
	SunInner = Hex("#ff006e")
	SunMid   = Hex("#ff4d9e")

	PalmTrunk = RGB{64, 32, 80}
	PalmFrond = RGB{128, 0, 128}

	// RoadColors is indexed by engine.Segment.Color
	RoadColors = [...]RGB{Hex("#1a1a2e"), Hex("#16161f")}
	LaneMarker = RGB{0, 255, 255}
	EdgeGlow   = RGB{255, 0, 200}

	PotholeFill   = RGBBlack
	PotholeStroke = Hex("#ff0080")
	DebrisFill    = Hex("#ff4400")
	DebrisStroke  = Hex("#ffaa00")
	CarEdge       = Hex("#00ffff")
	CarCenter     = Hex("#0088ff")
	CarWindow     = Hex("#001133")
	TailLight     = Hex("#ff0040")

	ShieldCyan = Hex("#00ffff")

	PlayerEdge   = Hex("#ff00ff")
	PlayerCenter = Hex("#ff0080")
	Windshield   = Hex("#000033")
	Headlight    = RGBWhite

	HUDText   = RGBWhite
	HUDShield = ShieldCyan
	HUDSpeed  = Hex("#ff00ff")
	HUDMuted  = Hex("#8a6bb8")

	MenuTop    = Hex("#1a0033")
	MenuBottom = Hex("#4a2472")
	Magenta    = Hex("#ff00ff")
	Cyan       = ShieldCyan
	ButtonEnd  = Hex("#ff0080")
	CrashTitle = Hex("#ff0040")
)
