package engine

// ActorView is a read-only picture of one actor for renderers.
type ActorView struct {
	Name      string
	Color     string
	X, Y      int // Pixel position
	Cell      Pos
	Dir       Direction
	MouthOpen bool // Player only
}

// Snapshot captures everything a renderer needs for one frame. It is also
// used to compare runs for determinism.
type Snapshot struct {
	Tick     uint64
	CellSize int
	Cells    [][]Cell
	DotsLeft int
	Player   ActorView
	Ghosts   []ActorView
	Score    int
	High     int
	GameOver bool
}

// Snapshot returns a copy of the current round state.
func (r *Round) Snapshot() Snapshot {
	px, py := r.player.motion.Pixel()
	snap := Snapshot{
		Tick:     r.tick,
		CellSize: r.settings.CellSize,
		Cells:    r.grid.Cells(),
		DotsLeft: r.grid.Remaining(),
		Player: ActorView{
			Name:      "player",
			X:         px,
			Y:         py,
			Cell:      r.player.motion.Pos(),
			Dir:       r.player.motion.Direction(),
			MouthOpen: r.player.mouthOpen,
		},
		Ghosts:   make([]ActorView, len(r.ghosts)),
		Score:    r.session.Score(),
		High:     r.session.High(),
		GameOver: r.session.GameOver(),
	}
	for i, gh := range r.ghosts {
		gx, gy := gh.motion.Pixel()
		snap.Ghosts[i] = ActorView{
			Name:  gh.name,
			Color: gh.color,
			X:     gx,
			Y:     gy,
			Cell:  gh.motion.Pos(),
			Dir:   gh.motion.Direction(),
		}
	}
	return snap
}
