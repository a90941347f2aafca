package engine

// Kind discriminates obstacles and pickups
type Kind uint8

const (
	KindPothole Kind = iota
	KindDebris
	KindCar
	KindSlowCar
	KindShield
)

// obstacleKinds is the uniform spawn table for obstacles
var obstacleKinds = [...]Kind{KindPothole, KindDebris, KindCar, KindSlowCar}

func (k Kind) String() string {
	switch k {
	case KindPothole:
		return "pothole"
	case KindDebris:
		return "debris"
	case KindCar:
		return "car"
	case KindSlowCar:
		return "slowcar"
	case KindShield:
		return "shield"
	default:
		return "unknown"
	}
}

// IsPickup reports whether the kind is collected rather than avoided
func (k Kind) IsPickup() bool {
	return k == KindShield
}

// Entity is a live obstacle or pickup on the track
type Entity struct {
	ID       uint64
	Kind     Kind
	X        float64 // Lateral offset from road center
	Z        float64 // World depth
	Speed    float64 // Closing speed per tick, subtracted from Z
	Consumed bool
}
