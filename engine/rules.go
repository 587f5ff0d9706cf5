package engine

import "github.com/lixenwraith/bulletsinair/constants"

// Rules holds the fixed geometry and combat values of a match
type Rules struct {
	SurfaceWidth  float64
	SurfaceHeight float64

	ActorWidth           float64
	ActorHeight          float64
	ActorSpeed           float64
	LeftActorStartX      float64
	RightActorStartInset float64

	MaxHealth int
	Damage    int

	ProjectileSpeed float64
	ProjectileSize  float64
}

// DefaultRules returns the stock match rules
func DefaultRules() Rules {
	return Rules{
		SurfaceWidth:         constants.SurfaceWidth,
		SurfaceHeight:        constants.SurfaceHeight,
		ActorWidth:           constants.ActorWidth,
		ActorHeight:          constants.ActorHeight,
		ActorSpeed:           constants.ActorSpeed,
		LeftActorStartX:      constants.LeftActorStartX,
		RightActorStartInset: constants.RightActorStartInset,
		MaxHealth:            constants.MaxHealth,
		Damage:               constants.ProjectileDamage,
		ProjectileSpeed:      constants.ProjectileSpeed,
		ProjectileSize:       constants.ProjectileSize,
	}
}

// MaxActorY is the lowest y an actor's top edge may reach
func (r Rules) MaxActorY() float64 {
	return r.SurfaceHeight - r.ActorHeight
}
