package engine

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/lixenwraith/neon-highway/parameter"
	"github.com/lixenwraith/neon-highway/vmath"
)

// TickInput is everything a tick reads from outside the simulation
// Sampled once at the tick boundary; later writes apply to the next tick
type TickInput struct {
	Now        time.Time // Game time from a monotonic, pause-aware clock
	Pointer    float64   // Normalized lateral pointer in [-1, 1]
	ViewWidth  int
	ViewHeight int
}

// CameraPose is the camera placement for the current tick
type CameraPose struct {
	TrackDepth float64
	LateralX   float64
	Height     float64
}

// Simulation owns all mutable game state and advances it one tick at a time
// Not safe for concurrent use; the frame loop goroutine is the only caller
type Simulation struct {
	tuning parameter.Tuning
	rng    *rand.Rand

	track    *Track
	spawner  *Spawner
	steering *Steering
	collider *Collider

	obstacles *Arena
	pickups   *Arena

	state      SessionState
	trackDepth float64
	distance   float64
	speed      float64
	score      int64
	shield     bool
	shake      float64
	startTime  time.Time
	ticks      uint64

	viewWidth  int
	viewHeight int

	frame Frame
}

// NewSimulation creates a simulation in the Menu state
func NewSimulation(tuning parameter.Tuning, seed uint64) *Simulation {
	s := &Simulation{
		tuning:     tuning,
		rng:        rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
		obstacles:  NewArena(parameter.ObstacleCapacity),
		pickups:    NewArena(parameter.PickupCapacity),
		state:      StateMenu,
		viewWidth:  parameter.DefaultViewWidth,
		viewHeight: parameter.DefaultViewHeight,
	}
	s.track = NewTrack(&s.tuning)
	s.spawner = NewSpawner(&s.tuning, s.rng)
	s.steering = NewSteering(&s.tuning)
	s.collider = NewCollider(&s.tuning)

	s.frame.Quads = make([]RoadQuad, 0, tuning.SegmentCount)
	s.frame.Props = make([]Prop, 0, 2*parameter.PropCount)
	s.frame.Sprites = make([]Sprite, 0, parameter.ObstacleCapacity+parameter.PickupCapacity)
	s.frame.Events = make([]Event, 0, 8)
	s.syncFrame()
	return s
}

// Reset enters Playing with zeroed counters and empty entity sets
// Valid from every state; the resulting state is identical regardless of session history
func (s *Simulation) Reset(now time.Time) error {
	if err := checkTransition(s.state, StatePlaying); err != nil {
		return err
	}
	s.state = StatePlaying
	s.trackDepth = 0
	s.distance = 0
	s.speed = 0
	s.score = 0
	s.shield = false
	s.shake = 0
	s.ticks = 0
	s.startTime = now
	s.obstacles.Clear()
	s.pickups.Clear()
	s.steering.Reset()
	s.spawner.Reset()

	s.frame.reset()
	s.frame.Number = 0
	s.frame.Elapsed = 0
	s.syncFrame()
	return nil
}

// ReturnToMenu leaves Playing or GameOver for the Menu
func (s *Simulation) ReturnToMenu() error {
	if err := checkTransition(s.state, StateMenu); err != nil {
		return err
	}
	s.state = StateMenu
	s.frame.reset()
	s.syncFrame()
	return nil
}

// State returns the current session state
func (s *Simulation) State() SessionState {
	return s.state
}

// Snapshot returns the observable session summary
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{State: s.state, Score: s.score, Distance: s.distance, Shield: s.shield}
}

// Camera returns the current camera pose
func (s *Simulation) Camera() CameraPose {
	return CameraPose{
		TrackDepth: s.trackDepth,
		LateralX:   s.steering.Position,
		Height:     s.tuning.CameraHeight,
	}
}

// Frame returns the most recent frame without advancing
func (s *Simulation) Frame() *Frame {
	return &s.frame
}

// Resize applies a viewport size outside a tick, used for idle redraws
func (s *Simulation) Resize(width, height int) {
	s.applyViewport(width, height)
	s.syncFrame()
}

// Obstacles and Pickups expose the live arenas read-only for inspection
func (s *Simulation) Obstacles() *Arena { return s.obstacles }
func (s *Simulation) Pickups() *Arena   { return s.pickups }

func (s *Simulation) applyViewport(width, height int) {
	if width > 0 && height > 0 {
		s.viewWidth, s.viewHeight = width, height
	}
}

func (s *Simulation) projector() vmath.Projector {
	return vmath.Projector{
		CameraDepth:  s.tuning.CameraDepth,
		CameraHeight: s.tuning.CameraHeight,
		RoadWidth:    s.tuning.RoadWidth,
		ViewWidth:    float64(s.viewWidth),
		ViewHeight:   float64(s.viewHeight),
	}
}

// syncFrame copies non-geometry state into the frame
func (s *Simulation) syncFrame() {
	f := &s.frame
	f.State = s.state
	f.ViewWidth, f.ViewHeight = s.viewWidth, s.viewHeight
	f.Horizon = float64(s.viewHeight) * parameter.HorizonRatio
	f.Camera = s.Camera()
	f.HUD = HUD{Score: s.score, Distance: s.distance, Speed: s.speed, Shield: s.shield}
	f.Entities = s.obstacles.Len() + s.pickups.Len()
}

// Tick advances one logical step and returns the derived frame geometry
// Outside Playing the simulation is frozen and the previous frame is returned unchanged
func (s *Simulation) Tick(in TickInput) *Frame {
	if s.state != StatePlaying {
		return &s.frame
	}

	s.applyViewport(in.ViewWidth, in.ViewHeight)
	f := &s.frame
	f.reset()
	s.ticks++
	f.Number = s.ticks
	f.Elapsed = in.Now.Sub(s.startTime).Seconds()

	// Steering from the latest pointer sample
	wasOversteer := s.steering.Oversteer
	s.steering.Update(in.Pointer)
	if s.steering.Oversteer && !wasOversteer {
		f.Events = append(f.Events, Event{Type: EventOversteer})
	}

	// Camera advance; score derives from distance only
	s.speed = s.track.SpeedAt(s.distance)
	s.trackDepth += s.speed
	s.distance += s.speed
	s.score = vmath.FloorInt64(s.distance / parameter.ScoreDistanceDivisor)

	s.spawner.Update(in.Now, s.score, s.shield, s.trackDepth, s.obstacles, s.pickups)

	proj := s.projector()
	cameraX := s.steering.Position
	f.Quads = s.track.Build(f.Quads, proj, cameraX, s.trackDepth)
	f.Props = s.track.BuildProps(f.Props, proj, cameraX, s.trackDepth)

	fatal := false
	s.obstacles.Retain(func(e *Entity) bool {
		return s.updateObstacle(e, proj, &fatal)
	})
	s.pickups.Retain(func(e *Entity) bool {
		return s.updatePickup(e, proj, fatal)
	})
	slices.SortFunc(f.Sprites, func(a, b Sprite) int {
		switch {
		case a.Depth > b.Depth:
			return -1
		case a.Depth < b.Depth:
			return 1
		}
		return 0
	})

	if fatal {
		s.state = StateGameOver
	}

	s.updateShake()

	f.Player = PlayerSprite{
		P:         proj.ProjectRelative(cameraX, 0, parameter.PlayerDrawDistance, cameraX),
		Velocity:  s.steering.Velocity,
		Shield:    s.shield,
		Oversteer: s.steering.Oversteer,
	}
	s.syncFrame()
	return f
}

// retire reports whether e has passed behind the camera by more than one segment
func (s *Simulation) retire(e *Entity) bool {
	return e.Z < s.trackDepth-s.tuning.SegmentLength
}

// beyond reports whether e is farther than the draw distance
func (s *Simulation) beyond(e *Entity) bool {
	return e.Z > s.trackDepth+s.tuning.DrawDistance()
}

// updateObstacle moves, tests and projects one obstacle; returns retention
// Evaluation stops for the rest of the tick once a fatal hit is recorded
func (s *Simulation) updateObstacle(e *Entity, proj vmath.Projector, fatal *bool) bool {
	e.Z -= e.Speed
	if s.retire(e) {
		return false
	}
	if s.beyond(e) {
		return true
	}

	if !*fatal {
		switch s.collider.ResolveObstacle(e, s.steering.Position, s.trackDepth, s.shield) {
		case OutcomeShieldHit:
			s.shield = false
			s.shake = s.tuning.ShieldHitShake
			s.frame.Events = append(s.frame.Events, Event{Type: EventShieldConsumed, Kind: e.Kind})
		case OutcomeFatal:
			*fatal = true
			s.frame.Events = append(s.frame.Events, Event{Type: EventCrash, Kind: e.Kind})
		}
	}
	if e.Consumed {
		return false
	}

	s.appendSprite(e, 0, proj)
	return true
}

// updatePickup tests and projects one pickup; returns retention
func (s *Simulation) updatePickup(e *Entity, proj vmath.Projector, fatal bool) bool {
	e.Z -= e.Speed
	if s.retire(e) {
		return false
	}
	if s.beyond(e) {
		return true
	}

	if !fatal && s.collider.ResolvePickup(e, s.steering.Position, s.trackDepth) == OutcomePickup {
		s.shield = true
		s.frame.Events = append(s.frame.Events, Event{Type: EventShieldCollected, Kind: e.Kind})
		return false
	}

	s.appendSprite(e, parameter.PickupHoverHeight, proj)
	return true
}

// appendSprite projects e if it is strictly ahead of the camera
func (s *Simulation) appendSprite(e *Entity, height float64, proj vmath.Projector) {
	depth := e.Z - s.trackDepth
	if depth <= 0 {
		return
	}
	s.frame.Sprites = append(s.frame.Sprites, Sprite{
		Kind:  e.Kind,
		P:     proj.Project(e.X, height, e.Z, s.steering.Position, 0, s.trackDepth),
		Depth: depth,
	})
}

// updateShake writes this tick's shake offset and decays the magnitude
func (s *Simulation) updateShake() {
	if s.shake <= 0 {
		return
	}
	s.frame.ShakeX = (s.rng.Float64() - 0.5) * s.shake
	s.frame.ShakeY = (s.rng.Float64() - 0.5) * s.shake
	s.shake *= s.tuning.ShakeDecay
	if s.shake < parameter.ShakeCutoff {
		s.shake = 0
	}
}
