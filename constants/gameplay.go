package constants

// Actor Constants
const (
	// ActorWidth is the width of both player rectangles
	ActorWidth = 30.0

	// ActorHeight is the height of both player rectangles
	ActorHeight = 50.0

	// ActorSpeed is the vertical distance an actor travels per frame while moving
	ActorSpeed = 5.0

	// LeftActorStartX is the start x of the left (Player 1) actor
	LeftActorStartX = 50.0

	// RightActorStartInset is the distance from the right edge to the start x of the right (Player 2) actor
	RightActorStartInset = 80.0

	// MaxHealth is the health each actor starts a match with
	MaxHealth = 100
)

// Combat Constants
const (
	// ProjectileSpeed is the horizontal distance a projectile travels per frame
	ProjectileSpeed = 15.0

	// ProjectileSize is the side length of a projectile square
	ProjectileSize = 8.0

	// ProjectileDamage is the health removed from an actor per hit
	ProjectileDamage = 10
)
