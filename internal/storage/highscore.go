package storage

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// HighScoreFile keeps a single best score as a decimal integer in a text file.
// It is shared by every game session of a process, so Save never lowers the
// stored value.
type HighScoreFile struct {
	path string

	mu     sync.Mutex
	best   int
	loaded bool
}

// NewHighScoreFile returns a store backed by path. "~" is expanded; nothing
// is read or created until Load or Save.
func NewHighScoreFile(path string) (*HighScoreFile, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &HighScoreFile{path: expanded}, nil
}

// Path returns the expanded file path.
func (f *HighScoreFile) Path() string { return f.path }

// Load returns the stored score. A missing file reads as 0 with no error;
// unreadable or malformed content reads as 0 with an error.
func (f *HighScoreFile) Load() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	score, err := f.read()
	if err != nil {
		return 0, err
	}
	f.best = max(f.best, score)
	f.loaded = true
	return f.best, nil
}

// Save writes score if it beats the stored value.
func (f *HighScoreFile) Save(score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.loaded {
		//nolint:errcheck // A corrupt file is overwritten
		onDisk, _ := f.read()
		f.best = max(f.best, onDisk)
		f.loaded = true
	}
	if score <= f.best {
		return nil
	}

	path, err := ensureDir(f.path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(strconv.Itoa(score)+"\n"), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	f.best = score
	return nil
}

func (f *HighScoreFile) read() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score: %w", err)
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		return 0, fmt.Errorf("storage: malformed high score file %s", f.path)
	}
	return score, nil
}
