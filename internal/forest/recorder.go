package forest

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeCleared  Outcome = "cleared"
	OutcomeGameOver Outcome = "game_over"
)

// RunResult is the record of a finished run handed to the score recorder.
type RunResult struct {
	PlayerName   string
	LevelName    string
	Mushrooms    int
	ElapsedTicks int
	Outcome      Outcome
}

// Recorder persists finished runs. The session calls Record synchronously
// from its own goroutine; a returned error is logged and otherwise ignored.
type Recorder interface {
	Record(result RunResult) error
}

// RecorderFunc adapts a plain function to the Recorder interface.
type RecorderFunc func(RunResult) error

// Record calls f(result).
func (f RecorderFunc) Record(result RunResult) error {
	return f(result)
}
