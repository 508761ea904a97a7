// Package t2048 implements a 2048 game session on top of the engine: opening
// tiles, the follow-up after each move (win check, tile spawn, loss check),
// board variants, animations and rendering.
package t2048

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/santa2048/internal/config"
	"github.com/vovakirdan/santa2048/internal/core"
	"github.com/vovakirdan/santa2048/internal/engine"
	"github.com/vovakirdan/santa2048/internal/registry"
)

// Status is the lifecycle state of a session.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Settings are the tunables of a session that do not depend on the variant.
type Settings struct {
	Debounce             time.Duration
	QueueCapacity        int
	SpawnFourProbability float64
	OpeningTiles         int
}

// DefaultSettings returns the classic rules: two opening tiles, one in ten
// spawned tiles is a 4.
func DefaultSettings() Settings {
	return Settings{
		Debounce:             engine.DefaultDebounce,
		QueueCapacity:        engine.DefaultQueueCapacity,
		SpawnFourProbability: 0.10,
		OpeningTiles:         2,
	}
}

// SettingsFromConfig extracts session settings from the loaded configuration.
func SettingsFromConfig(cfg config.Config) Settings {
	return Settings{
		Debounce:             cfg.Debounce,
		QueueCapacity:        cfg.QueueCapacity,
		SpawnFourProbability: cfg.SpawnFourProbability,
		OpeningTiles:         cfg.OpeningTiles,
	}
}

// Option configures a Game.
type Option func(*Game)

// WithSettings replaces DefaultSettings.
func WithSettings(s Settings) Option {
	return func(g *Game) {
		g.settings = s
	}
}

// WithSeed makes tile placement reproducible. Zero seeds from the clock.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.seed = seed
	}
}

// WithLogger enables debug logging for the session and its engine.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithObserver receives engine notifications alongside the animation tracker.
func WithObserver(o engine.Observer) Option {
	return func(g *Game) {
		g.observer = o
	}
}

// Game is one single-player session. It is not safe for concurrent use; the
// front-end drives it from its update loop.
type Game struct {
	variant  registry.Variant
	settings Settings
	seed     int64
	rng      *rand.Rand
	logger   *log.Logger
	observer engine.Observer

	clock   *engine.ManualScheduler
	engine  *engine.Engine
	tracker *Tracker

	status Status
	winAt  engine.Position
	moves  int

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a session for the variant. Call Start before submitting moves.
func New(variant registry.Variant, opts ...Option) *Game {
	g := &Game{
		variant:  variant,
		settings: DefaultSettings(),
		status:   StatusPlaying,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}

	g.rng = rand.New(rand.NewSource(g.seed))
	g.clock = engine.NewManualScheduler()
	g.tracker = NewTracker(g.settings.Debounce)

	engineOpts := []engine.Option{engine.WithRand(g.rng)}
	if g.logger != nil {
		engineOpts = append(engineOpts, engine.WithLogger(g.logger))
	}
	g.engine = engine.New(engine.Config{
		Dimension:     variant.Dimension,
		WinThreshold:  variant.WinThreshold,
		Debounce:      g.settings.Debounce,
		QueueCapacity: g.settings.QueueCapacity,
	}, engine.Observers(g.tracker, g.observer), g.clock, engineOpts...)

	screen := core.DefaultConfig()
	g.Resize(screen.ScreenW, screen.ScreenH)
	return g
}

// Start clears the board and places the opening tiles.
func (g *Game) Start() {
	g.engine.Reset()
	g.tracker.Clear()
	g.status = StatusPlaying
	g.winAt = engine.Position{}
	g.moves = 0

	c := g.engine.Controller()
	for range g.settings.OpeningTiles {
		c.InsertTileAtRandomLocation(2)
	}
	g.debug("game started", "variant", g.variant.ID, "seed", g.seed)
}

// Restart abandons the current game and starts a new one.
func (g *Game) Restart() {
	g.Start()
}

// Move queues a move. It returns false, ignoring the move, once the game is
// over.
func (g *Game) Move(dir engine.Direction) bool {
	if g.status != StatusPlaying {
		return false
	}
	g.engine.SubmitMove(dir, g.followUp)
	return true
}

// followUp runs after every processed move.
func (g *Game) followUp(changed bool) {
	if !changed || g.status != StatusPlaying {
		return
	}
	g.moves++

	c := g.engine.Controller()
	if pos, won := c.HasWon(); won {
		g.winAt = pos
		g.finish(StatusWon)
		return
	}

	value := 2
	if g.rng.Float64() < g.settings.SpawnFourProbability {
		value = 4
	}
	c.InsertTileAtRandomLocation(value)

	if c.HasLost() {
		g.finish(StatusLost)
	}
}

func (g *Game) finish(status Status) {
	g.status = status
	g.engine.CancelPending()
	g.debug("game over", "status", status, "score", g.Score(), "moves", g.moves)
}

// Advance moves the session clock forward, releasing debounced moves and
// progressing animations.
func (g *Game) Advance(d time.Duration) {
	g.clock.Advance(d)
	g.tracker.Advance(d)
}

// Settle applies every queued move without waiting and drops animations.
func (g *Game) Settle() {
	g.clock.Flush()
	g.tracker.Clear()
}

// Variant returns the board preset.
func (g *Game) Variant() registry.Variant {
	return g.variant
}

// Status returns the lifecycle state.
func (g *Game) Status() Status {
	return g.status
}

// Over reports whether the game has been won or lost.
func (g *Game) Over() bool {
	return g.status != StatusPlaying
}

// Score returns the running score.
func (g *Game) Score() int {
	return g.engine.Controller().Score()
}

// Moves returns the number of moves that changed the board.
func (g *Game) Moves() int {
	return g.moves
}

// Seed returns the seed tile placement was derived from.
func (g *Game) Seed() int64 {
	return g.seed
}

// Tracker exposes the running animations.
func (g *Game) Tracker() *Tracker {
	return g.tracker
}

func (g *Game) debug(msg string, keyvals ...any) {
	if g.logger != nil {
		g.logger.Debug(msg, keyvals...)
	}
}
