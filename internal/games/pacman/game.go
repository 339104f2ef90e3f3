// Package pacman implements the maze chase game on top of the engine
// package: input mapping, configuration, and drawing into the platform screen.
package pacman

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman/engine"
	"github.com/vovakirdan/maze-arcade/internal/registry"
)

// ID is the registry identifier.
const ID = "pacman"

// Services are the process-wide collaborators shared by every game instance.
// Nil fields fall back to silent in-memory defaults.
type Services struct {
	HighScores engine.HighScoreStore
	Audio      engine.AudioSink
	Logger     *log.Logger
}

// Options configure a single game instance.
type Options struct {
	Services

	// Settings overrides configuration loading when set.
	Settings *engine.Settings

	// ConfigPath and Difficulty are used when Settings is nil.
	ConfigPath string
	Difficulty string
}

// Package-level options used by the registry factory, set by the CLI.
var (
	configPath       string
	difficultyPreset string
	services         Services
)

// SetConfigPath sets the config file path for new games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for new games.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetServices sets the shared stores used by new games.
func SetServices(s Services) {
	services = s
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game is the registry adapter around an engine round.
type Game struct {
	opts   Options
	logger *log.Logger

	round     *engine.Round
	seed      int64
	totalDots int

	paused bool
	facing engine.Direction // Last non-idle player heading, for the mouth

	view view // Layout from the latest Render, used for hit tests
}

// New creates a game using the package-level options.
func New() *Game {
	return NewWithOptions(Options{
		Services:   services,
		ConfigPath: configPath,
		Difficulty: difficultyPreset,
	})
}

// NewWithOptions creates a game. Nothing is loaded until the first Reset.
func NewWithOptions(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{opts: opts, logger: logger, facing: engine.DirLeft}
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Pac-Man" }

// Reset starts a round. The first call builds the maze and reads the best
// score; later calls restart the same maze and keep the best score.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.paused = false
	g.facing = engine.DirLeft

	if g.round != nil {
		g.round.Restart()
		return
	}

	g.seed = cfg.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	g.round = g.build(rand.New(rand.NewSource(g.seed)))
	g.totalDots = g.round.Grid().Remaining()
}

func (g *Game) build(rng *rand.Rand) *engine.Round {
	deps := engine.Deps{
		Rand:       rng,
		HighScores: g.opts.HighScores,
		Audio:      g.opts.Audio,
		OnSaveError: func(err error) {
			g.logger.Debug("high score not saved", "err", err)
		},
	}

	var settings engine.Settings
	if g.opts.Settings != nil {
		settings = *g.opts.Settings
	} else {
		var err error
		settings, err = loadSettings(g.opts.ConfigPath, g.opts.Difficulty)
		if err != nil {
			g.logger.Error("config rejected, using defaults", "err", err)
		}
	}

	round, err := engine.NewRound(settings, deps)
	if err != nil {
		g.logger.Error("settings rejected, using defaults", "err", err)
		round = engine.MustNewRound(engine.DefaultSettings(), deps)
	}
	g.logger.Debug("round ready",
		"rows", round.Grid().Rows(),
		"cols", round.Grid().Cols(),
		"ghosts", len(round.Ghosts()),
		"seed", g.seed,
	)
	return round
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.round == nil {
		g.Reset(core.DefaultConfig())
	}

	if g.round.Session().GameOver() {
		if in.Has(core.ActionRestart) || g.clickedRestart(in) {
			g.Reset(core.RuntimeConfig{})
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.view.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.round.SetIntent(intent(in))
	ended := g.round.Step()

	if d := g.round.Player().Motion().Direction(); d != engine.DirNone {
		g.facing = d
	}
	if ended {
		s := g.round.Session()
		g.logger.Info("round over", "score", s.Score(), "high", s.High(), "tick", g.round.Snapshot().Tick)
	}
	return core.StepResult{State: g.State(), Ended: ended}
}

// intent maps one frame of input to a steering request. When several
// directions arrive in one frame, Up wins over Down over Left over Right.
func intent(in core.InputFrame) engine.Direction {
	switch {
	case in.Has(core.ActionUp):
		return engine.DirUp
	case in.Has(core.ActionDown):
		return engine.DirDown
	case in.Has(core.ActionLeft):
		return engine.DirLeft
	case in.Has(core.ActionRight):
		return engine.DirRight
	default:
		return engine.DirNone
	}
}

func (g *Game) clickedRestart(in core.InputFrame) bool {
	x, y, ok := in.Click()
	return ok && g.view.restart.Contains(x, y)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.round == nil {
		return core.GameState{}
	}
	s := g.round.Session()
	return core.GameState{
		Score:     s.Score(),
		HighScore: s.High(),
		GameOver:  s.GameOver(),
		Paused:    g.paused,
	}
}

// RoundStats describes the current round for score history.
func (g *Game) RoundStats() core.RoundStats {
	if g.round == nil {
		return core.RoundStats{}
	}
	snap := g.round.Snapshot()
	return core.RoundStats{
		Score:     snap.Score,
		DotsEaten: g.totalDots - snap.DotsLeft,
		Ticks:     int(snap.Tick),
		Seed:      g.seed,
	}
}

// Snapshot returns the engine state, or the zero value before Reset.
func (g *Game) Snapshot() engine.Snapshot {
	if g.round == nil {
		return engine.Snapshot{}
	}
	return g.round.Snapshot()
}

var (
	_ registry.Game          = (*Game)(nil)
	_ registry.RoundReporter = (*Game)(nil)
)
