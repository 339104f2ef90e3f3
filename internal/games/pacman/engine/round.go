package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// Deps are the collaborators a round talks to. Nil fields get silent defaults.
type Deps struct {
	Rand        *rand.Rand
	HighScores  HighScoreStore
	Audio       AudioSink
	OnSaveError func(error) // Called when persisting a new high score fails
}

// Round runs one maze: the grid, the player, the ghosts and the session
// bookkeeping. It is not safe for concurrent use; one goroutine drives it.
type Round struct {
	settings  Settings
	grid      *Grid
	player    *Player
	ghosts    []*Ghost
	session   *Session
	rng       *rand.Rand
	threshold int
	tick      uint64
}

// NewRound parses the maze, validates the settings and places every actor
// on its spawn cell.
func NewRound(s Settings, deps Deps) (*Round, error) {
	cells, err := ParseLayout(s.Layout)
	if err != nil {
		return nil, err
	}
	grid, err := NewGrid(cells)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(grid); err != nil {
		return nil, err
	}

	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	r := &Round{
		settings:  s,
		grid:      grid,
		player:    NewPlayer(s.PlayerSpawn, s.PlayerSpeed, s.CellSize, s.MouthTicks),
		session:   newSession(s.DotReward, deps),
		rng:       rng,
		threshold: s.CollisionThreshold(),
	}
	for _, spec := range s.Ghosts {
		r.ghosts = append(r.ghosts, NewGhost(spec, s.GhostSpeed, s.CellSize, s.StraightChance))
	}
	return r, nil
}

// MustNewRound is NewRound for settings known to be valid, such as the defaults.
func MustNewRound(s Settings, deps Deps) *Round {
	r, err := NewRound(s, deps)
	if err != nil {
		panic(fmt.Sprintf("engine: %v", err))
	}
	return r
}

// Grid returns the maze.
func (r *Round) Grid() *Grid { return r.grid }

// Player returns the player actor.
func (r *Round) Player() *Player { return r.player }

// Ghosts returns the ghost actors.
func (r *Round) Ghosts() []*Ghost { return r.ghosts }

// Session returns the scoring state.
func (r *Round) Session() *Session { return r.session }

// Settings returns the rules this round was built with.
func (r *Round) Settings() Settings { return r.settings }

// SetIntent forwards a steering request to the player.
func (r *Round) SetIntent(d Direction) {
	if d == DirNone {
		return
	}
	r.player.SetIntent(d)
}

// Step advances one frame: the player moves and eats, every ghost moves,
// then each ghost is checked against the player. A terminal round is frozen.
// It reports whether the round ended during this frame.
func (r *Round) Step() bool {
	if r.session.GameOver() {
		return false
	}
	r.tick++

	r.player.Tick(r.grid, r.session)
	for _, gh := range r.ghosts {
		gh.Tick(r.grid, r.rng)
	}

	if r.Caught() != nil {
		return r.session.end()
	}
	return false
}

// Caught returns the first ghost touching the player, or nil.
func (r *Round) Caught() *Ghost {
	px, py := r.player.motion.Pixel()
	for _, gh := range r.ghosts {
		gx, gy := gh.motion.Pixel()
		if Collides(px, py, gx, gy, r.threshold) {
			return gh
		}
	}
	return nil
}

// Restart restores the maze, zeroes the score, clears the terminal flag and
// puts every actor back on its spawn cell at rest.
func (r *Round) Restart() {
	r.grid.Reset()
	r.session.restart()
	r.player.reset()
	for _, gh := range r.ghosts {
		gh.reset()
	}
	r.tick = 0
}

// Collides reports whether two pixel positions are strictly closer than
// threshold. Integer squares keep the comparison exact.
func Collides(ax, ay, bx, by, threshold int) bool {
	dx := ax - bx
	dy := ay - by
	return dx*dx+dy*dy < threshold*threshold
}
