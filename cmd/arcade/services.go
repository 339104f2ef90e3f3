package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-arcade/internal/storage"
)

// openLogger builds the process logger. With a path, logs are appended to
// that file so they do not tear the alternate screen; when the file cannot
// be opened they are discarded. An empty path logs to stderr.
func openLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	var (
		w       io.Writer = os.Stderr
		closeFn           = func() {}
	)
	if path != "" {
		w = io.Discard
		if f, openErr := openLogFile(path); openErr == nil {
			w = f
			closeFn = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           lvl,
	})
	return logger, closeFn, nil
}

func openLogFile(path string) (*os.File, error) {
	path, err := storage.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// openStore opens the round history. Failure is reported and play goes on
// without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// openHighScores returns the best score file named by --highscore-file.
func openHighScores() (*storage.HighScoreFile, error) {
	hs, err := storage.NewHighScoreFile(flagHighScoreFile)
	if err != nil {
		return nil, fmt.Errorf("invalid --highscore-file: %w", err)
	}
	return hs, nil
}
