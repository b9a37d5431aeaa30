package maze

// Status is the lifecycle state of a Session.
type Status int

const (
	StatusIdle Status = iota
	StatusActive
	StatusWon
	// StatusLost is part of the lifecycle but no move or timer produces it.
	StatusLost
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusActive:
		return "active"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Ended reports whether the status is terminal (Won or Lost).
func (s Status) Ended() bool {
	return s == StatusWon || s == StatusLost
}

// SessionConfig fixes the board size and density policy of a Session.
type SessionConfig struct {
	Width   int
	Height  int
	Density DensityPolicy
}

// DefaultSessionConfig is the classic 15x15 board with the default policy.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Width:   15,
		Height:  15,
		Density: DefaultDensityPolicy(),
	}
}

// Entry returns the fixed start cell (1,1).
func (c SessionConfig) Entry() Point {
	return Point{X: 1, Y: 1}
}

// Exit returns the fixed goal cell (width-2, height-2).
func (c SessionConfig) Exit() Point {
	return Point{X: c.Width - 2, Y: c.Height - 2}
}

// Snapshot is a read-only view of a Session.
type Snapshot struct {
	Grid     *Grid // nil until the first successful Start
	Position Point
	Goal     Point
	Level    int
	Moves    int
	Status   Status
	Density  float64 // Wall probability the current grid was drawn with
}

// Session holds the authoritative state of one play-through.
// It is not safe for concurrent use; each player owns their own Session.
type Session struct {
	cfg     SessionConfig
	gen     *Generator
	grid    *Grid
	pos     Point
	goal    Point
	level   int
	moves   int
	status  Status
	density float64
	visited []bool
	stats   GenerationStats
}

// NewSession creates an Idle session. Moves are ignored until Start.
func NewSession(gen *Generator, cfg SessionConfig) *Session {
	return &Session{
		cfg:    cfg,
		gen:    gen,
		level:  1,
		status: StatusIdle,
	}
}

// Start begins a play-through of level on a freshly generated maze.
// The player is placed on the entry cell with zero moves.
//
// If generation fails the session is left Idle without a grid and the
// generator error is returned.
func (s *Session) Start(level int) (Snapshot, error) {
	if level < 1 {
		level = 1
	}

	s.level = level
	s.pos = s.cfg.Entry()
	s.goal = s.cfg.Exit()
	s.moves = 0
	s.density = s.cfg.Density.For(level)

	grid, stats, err := s.gen.Generate(GenParams{
		Width:   s.cfg.Width,
		Height:  s.cfg.Height,
		Start:   s.pos,
		Goal:    s.goal,
		Density: s.density,
	})
	s.stats = stats
	if err != nil {
		s.grid = nil
		s.visited = nil
		s.status = StatusIdle
		return s.Snapshot(), err
	}

	s.grid = grid
	s.visited = make([]bool, grid.width*grid.height)
	s.visited[grid.index(s.pos)] = true
	s.status = StatusActive
	return s.Snapshot(), nil
}

// Move tries to step the player one cell in direction d.
//
// The move is rejected, leaving every field untouched, when the session is
// not Active or the target is out of bounds or a Wall. An accepted move
// increments the move count and, on reaching the goal, ends the session as
// Won and advances the level by one.
func (s *Session) Move(d Direction) (Snapshot, bool) {
	if s.status != StatusActive || s.grid == nil {
		return s.Snapshot(), false
	}

	next := s.pos.Step(d)
	if !s.grid.IsPath(next) {
		return s.Snapshot(), false
	}

	s.pos = next
	s.moves++
	s.visited[s.grid.index(next)] = true

	if s.pos == s.goal {
		s.status = StatusWon
		s.level++
	}

	return s.Snapshot(), true
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Grid:     s.grid,
		Position: s.pos,
		Goal:     s.goal,
		Level:    s.level,
		Moves:    s.moves,
		Status:   s.status,
		Density:  s.density,
	}
}

// Visited reports whether the player has stood on p since the last Start.
func (s *Session) Visited(p Point) bool {
	if s.grid == nil || !s.grid.InBounds(p) {
		return false
	}
	return s.visited[s.grid.index(p)]
}

// LastGeneration returns the stats of the most recent Start.
func (s *Session) LastGeneration() GenerationStats {
	return s.stats
}

// Config returns the session's board configuration.
func (s *Session) Config() SessionConfig {
	return s.cfg
}
