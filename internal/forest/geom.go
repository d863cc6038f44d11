package forest

import "github.com/vovakirdan/forest-escape/internal/core"

// Pos is a cell coordinate on the map.
type Pos struct {
	Row, Col int
}

// Add returns the position one step away in direction d.
func (p Pos) Add(d Direction) Pos {
	dr, dc := d.Delta()
	return Pos{Row: p.Row + dr, Col: p.Col + dc}
}

// Manhattan returns |Δrow| + |Δcol| between two positions.
func (p Pos) Manhattan(o Pos) int {
	return core.Abs(p.Row-o.Row) + core.Abs(p.Col-o.Col)
}

// Chebyshev returns max(|Δrow|, |Δcol|) between two positions.
func (p Pos) Chebyshev(o Pos) int {
	return core.Max(core.Abs(p.Row-o.Row), core.Abs(p.Col-o.Col))
}

// Direction is one of the four cardinal directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all cardinal directions in a fixed order.
// Random direction picks index into this slice, so the order is part of
// seeded determinism.
var Directions = [4]Direction{Up, Down, Left, Right}

// Delta returns the row and column unit offsets for the direction.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}
