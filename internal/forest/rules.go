package forest

// Grid dimensions every level file must have.
const (
	Rows = 20
	Cols = 20
)

// Rules holds the tunable constants of the simulation.
type Rules struct {
	MaxLives           int // lives cap
	StartLives         int // lives at the start of a run
	PowerUpDuration    int // ticks a speed or invisibility pickup lasts
	WolfInterval       int // ticks between wolf moves
	SlowedWolfInterval int // ticks between wolf moves while speed is active
	VisionRadius       int // fog-of-war radius around the player
}

// DefaultRules returns the standard game constants.
func DefaultRules() Rules {
	return Rules{
		MaxLives:           5,
		StartLives:         3,
		PowerUpDuration:    5,
		WolfInterval:       1,
		SlowedWolfInterval: 2,
		VisionRadius:       3,
	}
}

// withDefaults fills zero fields from DefaultRules.
func (r Rules) withDefaults() Rules {
	d := DefaultRules()
	if r.MaxLives <= 0 {
		r.MaxLives = d.MaxLives
	}
	if r.StartLives <= 0 {
		r.StartLives = d.StartLives
	}
	if r.PowerUpDuration <= 0 {
		r.PowerUpDuration = d.PowerUpDuration
	}
	if r.WolfInterval <= 0 {
		r.WolfInterval = d.WolfInterval
	}
	if r.SlowedWolfInterval <= 0 {
		r.SlowedWolfInterval = d.SlowedWolfInterval
	}
	if r.VisionRadius <= 0 {
		r.VisionRadius = d.VisionRadius
	}
	return r
}
