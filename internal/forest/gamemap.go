package forest

// Map is the tile grid of a level. Dimensions are fixed at construction;
// individual cells change only when the player consumes an item.
type Map struct {
	rows     int
	cols     int
	tiles    [][]TileKind
	campfire Pos
}

// NewMap builds a map from a rectangular tile grid and the campfire position.
// The grid is copied. Rows shorter than the first row are padded with Ground.
func NewMap(tiles [][]TileKind, campfire Pos) *Map {
	m := &Map{
		rows:     len(tiles),
		campfire: campfire,
	}
	if m.rows > 0 {
		m.cols = len(tiles[0])
	}

	m.tiles = make([][]TileKind, m.rows)
	for r := range m.tiles {
		m.tiles[r] = make([]TileKind, m.cols)
		copy(m.tiles[r], tiles[r])
	}
	return m
}

// Rows returns the number of rows.
func (m *Map) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Map) Cols() int { return m.cols }

// Campfire returns the campfire (respawn) position.
func (m *Map) Campfire() Pos { return m.campfire }

// InBounds reports whether p lies inside the grid.
func (m *Map) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < m.rows && p.Col >= 0 && p.Col < m.cols
}

// Tile returns the tile at p. Out-of-bounds positions read as Tree so that
// callers treating the edge as a wall need no special case.
func (m *Map) Tile(p Pos) TileKind {
	if !m.InBounds(p) {
		return Tree
	}
	return m.tiles[p.Row][p.Col]
}

// WalkableForPlayer reports whether the player may stand on p.
func (m *Map) WalkableForPlayer(p Pos) bool {
	return m.InBounds(p) && !m.tiles[p.Row][p.Col].BlocksPlayer()
}

// WalkableForEnemy reports whether a wolf may stand on p.
func (m *Map) WalkableForEnemy(p Pos) bool {
	return m.InBounds(p) && !m.tiles[p.Row][p.Col].BlocksEnemy()
}

// consume reverts a consumable tile at p to Ground and returns what was there.
// Non-consumable tiles are left unchanged.
func (m *Map) consume(p Pos) TileKind {
	t := m.Tile(p)
	if !m.InBounds(p) || !t.Consumable() {
		return t
	}
	m.tiles[p.Row][p.Col] = Ground
	return t
}

// Mushrooms returns the number of uncollected mushrooms.
func (m *Map) Mushrooms() int {
	n := 0
	for _, row := range m.tiles {
		for _, t := range row {
			if t == Mushroom {
				n++
			}
		}
	}
	return n
}

// HasMushrooms reports whether any mushroom is left on the map.
func (m *Map) HasMushrooms() bool {
	for _, row := range m.tiles {
		for _, t := range row {
			if t == Mushroom {
				return true
			}
		}
	}
	return false
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	return NewMap(m.tiles, m.campfire)
}
