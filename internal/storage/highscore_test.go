package storage

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestHighScoreFileMissingIsZero(t *testing.T) {
	f, err := NewHighScoreFile(filepath.Join(t.TempDir(), "none", "highscore.txt"))
	if err != nil {
		t.Fatal(err)
	}

	score, err := f.Load()
	if err != nil || score != 0 {
		t.Errorf("Load() = %d, %v; expected 0, nil", score, err)
	}
}

func TestHighScoreFileMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"text", "lots"},
		{"negative", "-40"},
		{"float", "12.5"},
		{"empty", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "highscore.txt")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			f, _ := NewHighScoreFile(path)

			score, err := f.Load()
			if score != 0 {
				t.Errorf("Load() = %d, expected 0", score)
			}
			if err == nil {
				t.Error("Load() should report malformed content")
			}

			// A corrupt file gets replaced by the next high score.
			if err := f.Save(30); err != nil {
				t.Fatalf("Save() failed: %v", err)
			}
			if got, err := f.Load(); err != nil || got != 30 {
				t.Errorf("Load() after Save = %d, %v; expected 30", got, err)
			}
		})
	}
}

func TestHighScoreFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "highscore.txt")
	f, _ := NewHighScoreFile(path)

	if err := f.Save(120); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("file not written: %v", err)
	}
	if strings.TrimSpace(string(data)) != "120" {
		t.Errorf("file content = %q, expected a plain integer", data)
	}

	again, _ := NewHighScoreFile(path)
	if score, err := again.Load(); err != nil || score != 120 {
		t.Errorf("fresh Load() = %d, %v; expected 120", score, err)
	}
}

func TestHighScoreFileNeverLowers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	if err := os.WriteFile(path, []byte("500\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, _ := NewHighScoreFile(path)

	// Save without Load still respects the stored value.
	if err := f.Save(200); err != nil {
		t.Fatal(err)
	}
	if score, _ := f.Load(); score != 500 {
		t.Errorf("Load() = %d, expected 500 to survive a lower save", score)
	}
}

func TestHighScoreFileConcurrentSessions(t *testing.T) {
	f, _ := NewHighScoreFile(filepath.Join(t.TempDir(), "highscore.txt"))

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := 10; s <= 100+i*10; s += 10 {
				f.Save(s)
			}
		}()
	}
	wg.Wait()

	if score, err := f.Load(); err != nil || score != 190 {
		t.Errorf("Load() = %d, %v; expected 190", score, err)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in, want string
	}{
		{"~/.arcade/x.txt", filepath.Join(home, ".arcade", "x.txt")},
		{"~", home},
		{"/abs/path", "/abs/path"},
		{"rel/path", "rel/path"},
		{"~bob/x", "~bob/x"},
	}
	for _, tc := range tests {
		got, err := ExpandHome(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ExpandHome(%q) = %q, %v; expected %q", tc.in, got, err, tc.want)
		}
	}
}
