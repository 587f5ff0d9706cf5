package engine

// Side identifies one of the two actors
type Side uint8

const (
	SideLeft  Side = iota // Player 1
	SideRight             // Player 2
)

// Sides lists both sides in simulation order
var Sides = [2]Side{SideLeft, SideRight}

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// String returns the player label used in banners and logs
func (s Side) String() string {
	if s == SideLeft {
		return "Player 1"
	}
	return "Player 2"
}

// Projectile is a square moving horizontally away from the actor that fired it
type Projectile struct {
	X, Y      float64 // Leading point used for hit tests
	Size      float64
	Direction int // +1 moves right, -1 moves left
}

// Actor is one player-controlled rectangle
type Actor struct {
	Side          Side
	X, Y          float64
	Width, Height float64
	Speed         float64
	Health        int
	Projectiles   []Projectile
}

// newActor places an actor of the given side at its start position
func newActor(side Side, r Rules) *Actor {
	x := r.LeftActorStartX
	if side == SideRight {
		x = r.SurfaceWidth - r.RightActorStartInset
	}
	return &Actor{
		Side:        side,
		X:           x,
		Y:           r.SurfaceHeight / 2,
		Width:       r.ActorWidth,
		Height:      r.ActorHeight,
		Speed:       r.ActorSpeed,
		Health:      r.MaxHealth,
		Projectiles: make([]Projectile, 0, 16),
	}
}

// Bounds returns the actor rectangle
func (a *Actor) Bounds() Rect {
	return Rect{X: a.X, Y: a.Y, W: a.Width, H: a.Height}
}

// Alive reports whether the actor still has health left
func (a *Actor) Alive() bool {
	return a.Health > 0
}

// muzzle returns the spawn point and direction of the actor's next projectile
// Left actor fires from its right edge, right actor from its left edge, both at mid height
func (a *Actor) muzzle() (x, y float64, direction int) {
	y = a.Y + a.Height/2
	if a.Side == SideLeft {
		return a.X + a.Width, y, 1
	}
	return a.X, y, -1
}

// fire appends one projectile at the muzzle
func (a *Actor) fire(size float64) Projectile {
	x, y, dir := a.muzzle()
	p := Projectile{X: x, Y: y, Size: size, Direction: dir}
	a.Projectiles = append(a.Projectiles, p)
	return p
}
