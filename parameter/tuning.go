package parameter

import "time"

// Tuning carries every gameplay number the simulation reads
// Defaults mirror the package constants; config files override individual fields
type Tuning struct {
	SegmentLength float64 `yaml:"segment_length"`
	SegmentCount  int     `yaml:"segment_count"`
	RoadWidth     float64 `yaml:"road_width"`
	CameraHeight  float64 `yaml:"camera_height"`
	CameraDepth   float64 `yaml:"camera_depth"`

	BaseSpeed          float64 `yaml:"base_speed"`
	SpeedStepDistance  float64 `yaml:"speed_step_distance"`
	SpeedStepIncrement float64 `yaml:"speed_step_increment"`

	ObstacleBaseInterval time.Duration `yaml:"obstacle_base_interval"`
	ObstacleScoreCap     int           `yaml:"obstacle_score_cap"`
	MinObstacleInterval  time.Duration `yaml:"min_obstacle_interval"`
	PickupInterval       time.Duration `yaml:"pickup_interval"`
	SpawnLateralRatio    float64       `yaml:"spawn_lateral_ratio"`
	SpawnLookAheadRatio  float64       `yaml:"spawn_look_ahead_ratio"`
	SlowCarClosingSpeed  float64       `yaml:"slow_car_closing_speed"`

	SteeringRangeRatio float64 `yaml:"steering_range_ratio"`
	SteeringDamping    float64 `yaml:"steering_damping"`
	OversteerThreshold float64 `yaml:"oversteer_threshold"`

	CollisionWindow           float64 `yaml:"collision_window"`
	CollisionLateralTolerance float64 `yaml:"collision_lateral_tolerance"`
	PotholeSafeTolerance      float64 `yaml:"pothole_safe_tolerance"`
	ShieldHitShake            float64 `yaml:"shield_hit_shake"`
	ShakeDecay                float64 `yaml:"shake_decay"`
}

// DefaultTuning returns the compiled-in gameplay values
func DefaultTuning() Tuning {
	return Tuning{
		SegmentLength: SegmentLength,
		SegmentCount:  SegmentCount,
		RoadWidth:     RoadWidth,
		CameraHeight:  CameraHeight,
		CameraDepth:   CameraDepth,

		BaseSpeed:          BaseSpeed,
		SpeedStepDistance:  SpeedStepDistance,
		SpeedStepIncrement: SpeedStepIncrement,

		ObstacleBaseInterval: ObstacleBaseInterval,
		ObstacleScoreCap:     ObstacleScoreCap,
		MinObstacleInterval:  MinObstacleInterval,
		PickupInterval:       PickupInterval,
		SpawnLateralRatio:    SpawnLateralRatio,
		SpawnLookAheadRatio:  SpawnLookAheadRatio,
		SlowCarClosingSpeed:  SlowCarClosingSpeed,

		SteeringRangeRatio: SteeringRangeRatio,
		SteeringDamping:    SteeringDamping,
		OversteerThreshold: OversteerThreshold,

		CollisionWindow:           CollisionWindow,
		CollisionLateralTolerance: CollisionLateralTolerance,
		PotholeSafeTolerance:      PotholeSafeTolerance,
		ShieldHitShake:            ShieldHitShake,
		ShakeDecay:                ShakeDecay,
	}
}

// DrawDistance returns the full depth covered by the segment ring
func (t *Tuning) DrawDistance() float64 {
	return t.SegmentLength * float64(t.SegmentCount)
}
