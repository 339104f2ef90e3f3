package engine

// AudioSink plays the game's sound cues. Calls are fire-and-forget; a sink
// that cannot play simply does nothing.
type AudioSink interface {
	Collect()
	Defeat()
}

// HighScoreStore persists the best score between runs.
// Load is called once when a round is built; Save on every new high score.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// NopAudio is a silent AudioSink.
type NopAudio struct{}

func (NopAudio) Collect() {}
func (NopAudio) Defeat()  {}

// MemoryHighScores keeps the high score in memory only.
type MemoryHighScores struct {
	Score int
}

func (m *MemoryHighScores) Load() (int, error) { return m.Score, nil }

func (m *MemoryHighScores) Save(score int) error {
	m.Score = score
	return nil
}

var (
	_ AudioSink      = NopAudio{}
	_ HighScoreStore = (*MemoryHighScores)(nil)
)
