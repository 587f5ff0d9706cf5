package engine

// Intent is the per-frame request of one actor
type Intent struct {
	Up    bool // Level: move up while set
	Down  bool // Level: move down while set
	Shoot bool // Edge: fire one projectile this frame
}

// Intents holds one Intent per actor, indexed by Side
type Intents [2]Intent

// StepResult is the outcome of advancing a session by one frame
type StepResult struct {
	Advanced bool // False when the session was not running
	Events   []Event
}

// Step advances a running session by one frame
// Order: spawn shots, move actors, advance Player 1 projectiles then Player 2, check for game over
func Step(s *Session, in Intents) StepResult {
	if s.Phase != PhaseRunning {
		return StepResult{}
	}

	s.Frame++
	var events []Event

	// Shots spawn from the pre-move position
	for _, side := range Sides {
		if !in[side].Shoot {
			continue
		}
		p := s.Actors[side].fire(s.Rules.ProjectileSize)
		events = append(events, Event{Type: EventShotFired, Side: side, X: p.X, Y: p.Y})
	}

	for _, side := range Sides {
		moveActor(s.Actors[side], in[side], s.Rules)
	}

	for _, side := range Sides {
		events = advanceProjectiles(s.Actors[side], s.Actors[side.Opponent()], s.Rules, events)
	}

	// Left is checked first: a same-frame double knockout goes to Player 2
	left, right := s.Left(), s.Right()
	if !left.Alive() || !right.Alive() {
		winner := SideLeft
		if !left.Alive() {
			winner = SideRight
		}
		s.finish(winner)
		events = append(events, Event{Type: EventGameOver, Side: winner, Health: s.Actors[winner].Health})
	}

	return StepResult{Advanced: true, Events: events}
}

// moveActor applies vertical intent and keeps the actor inside the playfield
func moveActor(a *Actor, in Intent, r Rules) {
	if in.Up {
		a.Y -= a.Speed
	}
	if in.Down {
		a.Y += a.Speed
	}
	a.Y = Clamp(a.Y, 0, r.MaxActorY())
}

// advanceProjectiles moves the shooter's projectiles, resolving hits on target and off-screen removal
// Survivors keep their relative order
func advanceProjectiles(shooter, target *Actor, r Rules, events []Event) []Event {
	bounds := target.Bounds()
	kept := shooter.Projectiles[:0]

	for _, p := range shooter.Projectiles {
		p.X += r.ProjectileSpeed * float64(p.Direction)

		if bounds.ContainsClosed(p.X, p.Y) {
			// A knocked-out actor absorbs further hits without losing health
			if target.Alive() {
				target.Health -= r.Damage
			}
			events = append(events, Event{Type: EventHit, Side: target.Side, X: p.X, Y: p.Y, Health: target.Health})
			continue
		}

		if p.X > r.SurfaceWidth || p.X < 0 {
			continue
		}

		kept = append(kept, p)
	}

	shooter.Projectiles = kept
	return events
}
