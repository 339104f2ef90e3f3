package engine

// Player is the user-controlled actor.
type Player struct {
	motion     *Motion
	spawn      Pos
	mouthTicks int
	animCount  int
	mouthOpen  bool
}

// NewPlayer places a player at rest on spawn.
func NewPlayer(spawn Pos, speed, cellSize, mouthTicks int) *Player {
	p := &Player{
		motion:     NewMotion(spawn, speed, cellSize),
		spawn:      spawn,
		mouthTicks: mouthTicks,
	}
	p.reset()
	return p
}

// Motion exposes the player's movement state.
func (p *Player) Motion() *Motion { return p.motion }

// MouthOpen reports the current animation phase.
func (p *Player) MouthOpen() bool { return p.mouthOpen }

// SetIntent buffers the next heading, replacing any earlier unconsumed one.
// The turn happens at the next cell center where it is possible.
func (p *Player) SetIntent(d Direction) {
	p.motion.SetPending(d)
}

// Tick moves the player, collects the dot under it on arrival and advances
// the mouth animation.
func (p *Player) Tick(g *Grid, s *Session) {
	p.motion.Tick(g, func(at Pos) {
		if g.Consume(at) {
			s.collectDot()
		}
	})

	p.animCount++
	if p.animCount >= p.mouthTicks {
		p.mouthOpen = !p.mouthOpen
		p.animCount = 0
	}
}

func (p *Player) reset() {
	p.motion.Place(p.spawn)
	p.animCount = 0
	p.mouthOpen = true
}
