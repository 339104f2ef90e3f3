package engine

// Session is the mutable bookkeeping of one round: score, best score and the
// terminal flag, plus the services that react to them. Actors get it by
// pointer; nothing else holds scoring state.
type Session struct {
	score    int
	high     int
	gameOver bool

	reward      int
	scores      HighScoreStore
	audio       AudioSink
	onSaveError func(error)
}

func newSession(reward int, deps Deps) *Session {
	s := &Session{
		reward:      reward,
		scores:      deps.HighScores,
		audio:       deps.Audio,
		onSaveError: deps.OnSaveError,
	}
	if s.scores == nil {
		s.scores = &MemoryHighScores{}
	}
	if s.audio == nil {
		s.audio = NopAudio{}
	}

	// A missing or unreadable store starts from zero.
	if high, err := s.scores.Load(); err == nil && high > 0 {
		s.high = high
	}
	return s
}

// Score returns the points earned this round.
func (s *Session) Score() int { return s.score }

// High returns the best score seen, including this round.
func (s *Session) High() int { return s.high }

// GameOver reports whether the round has ended.
func (s *Session) GameOver() bool { return s.gameOver }

// collectDot awards the dot reward and writes a new best score through to
// the store straight away.
func (s *Session) collectDot() {
	s.score += s.reward
	if s.score > s.high {
		s.high = s.score
		if err := s.scores.Save(s.high); err != nil && s.onSaveError != nil {
			s.onSaveError(err)
		}
	}
	s.audio.Collect()
}

// end marks the round terminal. It returns false if it already was.
func (s *Session) end() bool {
	if s.gameOver {
		return false
	}
	s.gameOver = true
	s.audio.Defeat()
	return true
}

// restart zeroes the round score. The best score is kept.
func (s *Session) restart() {
	s.score = 0
	s.gameOver = false
}
