package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the frame callback interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MinFrameRate and MaxFrameRate bound the configurable frame rate
	MinFrameRate = 10
	MaxFrameRate = 144

	// CommandQueueSize is the capacity of the loop command channel
	// Posting blocks only when this many commands are pending between frames
	CommandQueueSize = 32

	// FrameStatsLogInterval is the minimum interval between debug frame statistics log lines
	FrameStatsLogInterval = 2 * time.Second
)

// Arena sizing
const (
	// ObstacleCapacity is the initial slot count of the obstacle arena
	ObstacleCapacity = 64

	// PickupCapacity is the initial slot count of the pickup arena
	PickupCapacity = 8
)

// Logging
const (
	// DefaultLogFile is relative to the working directory
	DefaultLogFile = "logs/neon-highway.log"

	// MaxLogSize triggers rotation to a single .old file at startup
	MaxLogSize = 10 * 1024 * 1024
)
