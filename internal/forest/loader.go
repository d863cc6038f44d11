package forest

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Level is an immutable level definition produced by the loader.
// Every run of the level starts from a fresh copy of it.
type Level struct {
	Name        string // display name, e.g. "Level 1"
	Path        string // source path, empty for in-memory levels
	PlayerStart Pos
	WolfStarts  []Pos

	grid *Map
}

// NewLevel builds a level definition from an existing map. The map is
// copied; wolves may be empty, in which case the level has no enemies.
func NewLevel(name string, m *Map, player Pos, wolves []Pos) *Level {
	return &Level{
		Name:        name,
		PlayerStart: player,
		WolfStarts:  append([]Pos(nil), wolves...),
		grid:        m.Clone(),
	}
}

// Map returns a fresh copy of the level's initial map.
func (l *Level) Map() *Map {
	return l.grid.Clone()
}

// Mushrooms returns the number of mushrooms the level starts with.
func (l *Level) Mushrooms() int {
	return l.grid.Mushrooms()
}

// LoadLevelFile reads and parses a level file. The display name is
// derived from the file name.
func LoadLevelFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return ParseLevel(string(data), path)
}

// ReadLevel parses a level from r. path is only used for the display name.
func ReadLevel(r io.Reader, path string) (*Level, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return ParseLevel(string(data), path)
}

// ParseLevel parses level source text: exactly Rows lines of exactly Cols
// characters each.
func ParseLevel(text, path string) (*Level, error) {
	lines := splitLines(text)
	if len(lines) != Rows {
		return nil, &FormatError{Want: Rows, Got: len(lines)}
	}

	tiles := make([][]TileKind, Rows)
	player, campfire := Pos{Row: -1, Col: -1}, Pos{Row: -1, Col: -1}
	var wolves []Pos

	for r, line := range lines {
		chars := []rune(line)
		if len(chars) != Cols {
			return nil, &FormatError{Line: r + 1, Want: Cols, Got: len(chars)}
		}

		tiles[r] = make([]TileKind, Cols)
		for c, ch := range chars {
			var tile TileKind
			switch ch {
			case 'C':
				// A single campfire per map: a later marker replaces an earlier one.
				if campfire.Row >= 0 {
					tiles[campfire.Row][campfire.Col] = Ground
				}
				tile = Campfire
				campfire = Pos{Row: r, Col: c}
			case 'P':
				tile = Ground
				player = Pos{Row: r, Col: c}
			case 'W':
				tile = Ground
				wolves = append(wolves, Pos{Row: r, Col: c})
			default:
				tile = TileFor(ch)
			}
			tiles[r][c] = tile
		}
	}

	if player.Row < 0 {
		return nil, &MissingEntityError{Marker: 'P', Entity: "player"}
	}
	if campfire.Row < 0 {
		return nil, &MissingEntityError{Marker: 'C', Entity: "campfire"}
	}

	if len(wolves) == 0 {
		wolves = append(wolves, Pos{Row: campfire.Row, Col: min(campfire.Col+1, Cols-2)})
	}

	return &Level{
		Name:        DisplayName(path),
		Path:        path,
		PlayerStart: player,
		WolfStarts:  wolves,
		grid:        NewMap(tiles, campfire),
	}, nil
}

// TileFor maps a level character to its tile kind. Entity markers and
// unknown characters are Ground; 'C' is Campfire.
func TileFor(ch rune) TileKind {
	switch ch {
	case '#', 'T':
		return Tree
	case 'R':
		return Rock
	case 'B':
		return Bush
	case 'M':
		return Mushroom
	case 'C':
		return Campfire
	case 'S':
		return SpeedPowerUp
	case 'I':
		return InvisPowerUp
	case 'L':
		return ExtraLife
	default:
		return Ground
	}
}

// DisplayName turns a level file path into its display name:
// "levels/level1.txt" becomes "Level 1", "forest.map.txt" becomes "forest".
func DisplayName(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	if len(base) >= 5 && strings.EqualFold(base[:5], "level") {
		return "Level " + base[5:]
	}
	return base
}

// splitLines splits text into lines the way a line reader does: \n, \r\n
// and \r all end a line and a final terminator does not start a new one.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
