package forest

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Status is the lifecycle state of a session.
type Status int

const (
	StatusRunning  Status = iota
	StatusCleared         // last mushroom collected, clock stopped
	StatusGameOver        // out of lives, clock stopped
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusCleared:
		return "cleared"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EventKind identifies what a Tick or MovePlayer call caused.
type EventKind int

const (
	EventNone EventKind = iota
	EventCaught
	EventGameOver
	EventLevelCleared
)

func (k EventKind) String() string {
	switch k {
	case EventCaught:
		return "caught"
	case EventGameOver:
		return "game_over"
	case EventLevelCleared:
		return "level_cleared"
	default:
		return "none"
	}
}

// Event reports a notable transition to the caller.
type Event struct {
	Kind   EventKind
	Lives  int        // lives left after the event
	Result *RunResult // set for EventGameOver and EventLevelCleared
}

// NeedsRestart reports whether the caller should start the level again.
// Clearing a level restarts it fresh; a game over waits for the user.
func (e Event) NeedsRestart() bool {
	return e.Kind == EventLevelCleared
}

// Options configures a new session.
type Options struct {
	PlayerName string
	Rules      Rules
	Seed       int64      // used when Rand is nil; 0 seeds from the clock
	Rand       *rand.Rand // source for wolf turns
	Recorder   Recorder   // may be nil
	Logger     *log.Logger
}

// Session is the mutable state of one run of a level. It is not safe for
// concurrent use: one goroutine drives both Tick and MovePlayer.
type Session struct {
	level      *Level
	rules      Rules
	rng        *rand.Rand
	recorder   Recorder
	logger     *log.Logger
	playerName string

	grid         *Map
	player       *Player
	wolves       []*Wolf
	elapsed      int
	lastWolfMove int
	status       Status
}

// Load parses level text and starts a session on it.
func Load(text, path string, opts Options) (*Session, error) {
	level, err := ParseLevel(text, path)
	if err != nil {
		return nil, err
	}
	return NewSession(level, opts), nil
}

// NewSession starts a run of level.
func NewSession(level *Level, opts Options) *Session {
	rng := opts.Rand
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Session{
		level:      level,
		rules:      opts.Rules.withDefaults(),
		rng:        rng,
		recorder:   opts.Recorder,
		logger:     logger,
		playerName: opts.PlayerName,
	}
	s.reset()
	return s
}

// Restart begins the same level again with a fresh map, player and wolves.
func (s *Session) Restart() {
	s.reset()
}

func (s *Session) reset() {
	s.grid = s.level.Map()
	s.player = NewPlayer(s.level.PlayerStart, s.rules.StartLives, s.rules.MaxLives)
	s.wolves = make([]*Wolf, len(s.level.WolfStarts))
	for i, p := range s.level.WolfStarts {
		s.wolves[i] = NewWolf(p)
	}
	s.elapsed = 0
	s.lastWolfMove = 0
	s.status = StatusRunning
}

// Tick advances the simulation by one tick: effects expire, wolves move
// when their interval has elapsed, then collisions are resolved.
// It does nothing once the run has ended.
func (s *Session) Tick() Event {
	if s.status != StatusRunning {
		return Event{}
	}

	s.elapsed++
	s.player.Expire(s.elapsed)
	s.moveWolves()
	return s.checkCollision()
}

// MovePlayer tries to move the player one cell. Entering a cell with an
// item collects it; a collision check follows every successful move.
func (s *Session) MovePlayer(d Direction) (moved bool, ev Event) {
	if s.status != StatusRunning || !d.Valid() {
		return false, Event{}
	}
	if !s.player.MoveBy(d, s.grid) {
		return false, Event{}
	}

	switch s.grid.consume(s.player.Pos()) {
	case Mushroom:
		s.player.CollectMushroom()
		if !s.grid.HasMushrooms() {
			return true, s.finish(StatusCleared, OutcomeCleared, EventLevelCleared)
		}
	case SpeedPowerUp:
		s.player.Activate(EffectSpeed, s.elapsed, s.rules.PowerUpDuration)
	case InvisPowerUp:
		s.player.Activate(EffectInvisibility, s.elapsed, s.rules.PowerUpDuration)
	case ExtraLife:
		s.player.GainLife()
	}

	return true, s.checkCollision()
}

// WolfInterval returns the current number of ticks between wolf moves.
func (s *Session) WolfInterval() int {
	if s.player.SpeedActive() {
		return s.rules.SlowedWolfInterval
	}
	return s.rules.WolfInterval
}

func (s *Session) moveWolves() {
	if s.elapsed-s.lastWolfMove < s.WolfInterval() {
		return
	}
	for _, w := range s.wolves {
		w.Step(s.grid, s.rng)
	}
	s.lastWolfMove = s.elapsed
}

// checkCollision resolves a wolf standing on or orthogonally next to the
// player. Diagonal neighbours do not count.
func (s *Session) checkCollision() Event {
	if s.player.Invisible() {
		return Event{}
	}

	pos := s.player.Pos()
	hit := false
	for _, w := range s.wolves {
		if w.Pos().Manhattan(pos) <= 1 {
			hit = true
			break
		}
	}
	if !hit {
		return Event{}
	}

	s.player.LoseLife()
	if s.player.Lives() > 0 {
		s.player.Respawn(s.grid.Campfire())
		return Event{Kind: EventCaught, Lives: s.player.Lives()}
	}
	return s.finish(StatusGameOver, OutcomeGameOver, EventGameOver)
}

// finish stops the clock, records the run and reports the terminal event.
func (s *Session) finish(status Status, outcome Outcome, kind EventKind) Event {
	s.status = status
	result := s.Result(outcome)
	s.record(result)
	return Event{Kind: kind, Lives: s.player.Lives(), Result: &result}
}

func (s *Session) record(result RunResult) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(result); err != nil {
		s.logger.Warn("could not record score",
			"player", result.PlayerName,
			"level", result.LevelName,
			"error", err,
		)
	}
}

// Result summarises the run so far with the given outcome.
func (s *Session) Result(outcome Outcome) RunResult {
	return RunResult{
		PlayerName:   s.playerName,
		LevelName:    s.level.Name,
		Mushrooms:    s.player.Mushrooms(),
		ElapsedTicks: s.elapsed,
		Outcome:      outcome,
	}
}

// Map returns the live map. Callers must treat it as read-only.
func (s *Session) Map() *Map { return s.grid }

// Player returns a copy of the player state.
func (s *Session) Player() Player { return *s.player }

// Wolves returns copies of the wolves.
func (s *Session) Wolves() []Wolf {
	out := make([]Wolf, len(s.wolves))
	for i, w := range s.wolves {
		out[i] = *w
	}
	return out
}

// Level returns the level definition being played.
func (s *Session) Level() *Level { return s.level }

// LevelName returns the level display name.
func (s *Session) LevelName() string { return s.level.Name }

// PlayerName returns the name results are recorded under.
func (s *Session) PlayerName() string { return s.playerName }

// Elapsed returns the ticks since the run started.
func (s *Session) Elapsed() int { return s.elapsed }

// Status returns the lifecycle state.
func (s *Session) Status() Status { return s.status }

// Rules returns the rules in effect.
func (s *Session) Rules() Rules { return s.rules }
