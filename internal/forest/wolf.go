package forest

import "math/rand"

// Wolf is a wandering enemy. It keeps walking in its facing direction and
// turns randomly when blocked.
type Wolf struct {
	pos    Pos
	facing Direction
}

// NewWolf creates a wolf at pos facing left.
func NewWolf(pos Pos) *Wolf {
	return &Wolf{pos: pos, facing: Left}
}

// Pos returns the wolf's cell.
func (w *Wolf) Pos() Pos { return w.pos }

// Facing returns the direction the wolf is walking in.
func (w *Wolf) Facing() Direction { return w.facing }

// SetFacing changes the walking direction.
func (w *Wolf) SetFacing(d Direction) { w.facing = d }

// Step moves the wolf one cell. It continues straight when possible;
// otherwise it picks uniformly among the open directions and turns to it.
// A wolf with no open neighbour stays put and keeps its facing.
func (w *Wolf) Step(m *Map, rng *rand.Rand) {
	if next := w.pos.Add(w.facing); m.WalkableForEnemy(next) {
		w.pos = next
		return
	}

	options := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if m.WalkableForEnemy(w.pos.Add(d)) {
			options = append(options, d)
		}
	}
	if len(options) == 0 {
		return
	}

	w.facing = options[rng.Intn(len(options))]
	w.pos = w.pos.Add(w.facing)
}
