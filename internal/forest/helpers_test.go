package forest

import (
	"io"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"
)

// gridOf builds a small map from rows of level characters.
func gridOf(rows ...string) *Map {
	tiles := make([][]TileKind, len(rows))
	var campfire Pos
	for r, row := range rows {
		for c, ch := range row {
			t := TileFor(ch)
			if t == Campfire {
				campfire = Pos{Row: r, Col: c}
			}
			tiles[r] = append(tiles[r], t)
		}
	}
	return NewMap(tiles, campfire)
}

// levelText returns a 20x20 level of ground with the given markers placed.
func levelText(marks map[Pos]rune) string {
	rows := make([][]rune, Rows)
	for r := range rows {
		rows[r] = []rune(strings.Repeat(".", Cols))
	}
	for p, ch := range marks {
		rows[p.Row][p.Col] = ch
	}
	lines := make([]string, Rows)
	for r, row := range rows {
		lines[r] = string(row)
	}
	return strings.Join(lines, "\n") + "\n"
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// testSession starts a session on a hand-built map with a fixed seed.
func testSession(m *Map, player Pos, wolves []Pos, opts Options) *Session {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}
	if opts.Logger == nil {
		opts.Logger = quietLogger()
	}
	if opts.PlayerName == "" {
		opts.PlayerName = "tester"
	}
	return NewSession(NewLevel("Test", m, player, wolves), opts)
}

// recorderSpy collects every recorded result.
type recorderSpy struct {
	results []RunResult
	err     error
}

func (r *recorderSpy) Record(result RunResult) error {
	r.results = append(r.results, result)
	return r.err
}
