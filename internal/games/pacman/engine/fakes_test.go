package engine

import "errors"

type recordingAudio struct {
	collects int
	defeats  int
}

func (a *recordingAudio) Collect() { a.collects++ }
func (a *recordingAudio) Defeat()  { a.defeats++ }

type recordingScores struct {
	initial int
	loadErr error
	saveErr error
	saved   []int
}

func (s *recordingScores) Load() (int, error) { return s.initial, s.loadErr }

func (s *recordingScores) Save(score int) error {
	s.saved = append(s.saved, score)
	return s.saveErr
}

var errDiskFull = errors.New("disk full")
