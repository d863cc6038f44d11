package forest

import "github.com/vovakirdan/forest-escape/internal/core"

// Effect is a timed status effect. It does not expire on its own: the
// session deactivates it once the elapsed tick reaches ExpiresAt.
type Effect struct {
	Active    bool
	ExpiresAt int
}

// EffectKind selects one of the player's status effects.
type EffectKind int

const (
	EffectSpeed EffectKind = iota
	EffectInvisibility
)

func (k EffectKind) String() string {
	if k == EffectSpeed {
		return "speed"
	}
	return "invisibility"
}

// Player is the entity controlled by the user.
type Player struct {
	pos       Pos
	lives     int
	maxLives  int
	mushrooms int
	speed     Effect
	invis     Effect
}

// NewPlayer creates a player at start with the given lives, clamped to [0, maxLives].
func NewPlayer(start Pos, lives, maxLives int) *Player {
	return &Player{
		pos:      start,
		lives:    core.Clamp(lives, 0, maxLives),
		maxLives: maxLives,
	}
}

// Pos returns the player's cell.
func (p Player) Pos() Pos { return p.pos }

// Lives returns the remaining lives.
func (p Player) Lives() int { return p.lives }

// MaxLives returns the lives cap.
func (p Player) MaxLives() int { return p.maxLives }

// Mushrooms returns the number of mushrooms collected this run.
func (p Player) Mushrooms() int { return p.mushrooms }

// Speed returns the speed effect state.
func (p Player) Speed() Effect { return p.speed }

// Invisibility returns the invisibility effect state.
func (p Player) Invisibility() Effect { return p.invis }

// SpeedActive reports whether wolves are currently slowed.
func (p Player) SpeedActive() bool { return p.speed.Active }

// Invisible reports whether collisions are currently ignored.
func (p Player) Invisible() bool { return p.invis.Active }

// MoveBy moves the player one cell in direction d if the target is walkable.
// Returns false and leaves the player in place otherwise.
func (p *Player) MoveBy(d Direction, m *Map) bool {
	next := p.pos.Add(d)
	if !m.WalkableForPlayer(next) {
		return false
	}
	p.pos = next
	return true
}

// Respawn puts the player at pos.
func (p *Player) Respawn(pos Pos) {
	p.pos = pos
}

// LoseLife removes one life, never going below zero.
func (p *Player) LoseLife() {
	p.lives = core.Max(0, p.lives-1)
}

// GainLife adds one life unless already at the cap.
func (p *Player) GainLife() {
	if p.lives < p.maxLives {
		p.lives++
	}
}

// CollectMushroom increments the mushroom counter.
func (p *Player) CollectMushroom() {
	p.mushrooms++
}

// Activate turns an effect on until tick now+duration. Picking up the same
// power-up again while active extends it from now.
func (p *Player) Activate(k EffectKind, now, duration int) {
	e := Effect{Active: true, ExpiresAt: now + duration}
	switch k {
	case EffectSpeed:
		p.speed = e
	case EffectInvisibility:
		p.invis = e
	}
}

// Expire deactivates every effect whose expiry tick has been reached.
func (p *Player) Expire(now int) {
	if p.speed.Active && now >= p.speed.ExpiresAt {
		p.speed.Active = false
	}
	if p.invis.Active && now >= p.invis.ExpiresAt {
		p.invis.Active = false
	}
}
