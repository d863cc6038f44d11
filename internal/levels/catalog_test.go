package levels

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/forest-escape/internal/forest"
)

// smallLevel is a valid level with one mushroom and a synthesized wolf.
func smallLevel() string {
	rows := make([]string, forest.Rows)
	for r := range rows {
		rows[r] = strings.Repeat(".", forest.Cols)
	}
	rows[0] = "P" + rows[0][1:]
	rows[5] = ".....C" + rows[5][6:]
	rows[9] = "M" + rows[9][1:]
	return strings.Join(rows, "\n") + "\n"
}

func writeLevel(t *testing.T, dir, name, text string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(text), 0o644))
	return p
}

func quiet() *log.Logger { return log.New(io.Discard) }

func TestEmbeddedLevelsAreValid(t *testing.T) {
	infos, err := New("", quiet()).List()
	require.NoError(t, err)

	ids := make([]string, len(infos))
	for i, info := range infos {
		ids[i] = info.ID
		assert.Equal(t, SourceEmbedded, info.Source)
		assert.Positive(t, info.Mushrooms, info.ID)
		assert.Positive(t, info.Wolves, info.ID)
	}
	assert.Equal(t, []string{"level1", "level2", "level3"}, ids)
	assert.Equal(t, "Level 1", infos[0].Name)
}

func TestListMergesDirectory(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "level1.txt", smallLevel())
	writeLevel(t, dir, "meadow.txt", smallLevel())
	writeLevel(t, dir, "broken.txt", "not a level\n")
	writeLevel(t, dir, "notes.md", "ignored")

	infos, err := New(dir, quiet()).List()
	require.NoError(t, err)

	got := make(map[string]Info)
	var ids []string
	for _, info := range infos {
		got[info.ID] = info
		ids = append(ids, info.ID)
	}
	assert.Equal(t, []string{"level1", "level2", "level3", "meadow"}, ids)
	assert.Equal(t, SourceDir, got["level1"].Source, "directory overrides embedded")
	assert.Equal(t, 1, got["level1"].Mushrooms)
	assert.Equal(t, SourceEmbedded, got["level2"].Source)
	assert.Equal(t, "meadow", got["meadow"].Name)
}

func TestListMissingDirectory(t *testing.T) {
	infos, err := New(filepath.Join(t.TempDir(), "absent"), quiet()).List()
	require.NoError(t, err)
	assert.Len(t, infos, 3)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "level2.txt", smallLevel())
	file := writeLevel(t, t.TempDir(), "custom.txt", smallLevel())
	c := New(dir, quiet())

	tests := []struct {
		name      string
		id        string
		wantName  string
		mushrooms int
	}{
		{"embedded", "level1", "Level 1", 10},
		{"embedded with extension", "level3.txt", "Level 3", 16},
		{"directory override", "level2", "Level 2", 1},
		{"file path", file, "custom", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			level, err := c.Load(tc.id)
			require.NoError(t, err)
			assert.Equal(t, tc.wantName, level.Name)
			assert.Equal(t, tc.mushrooms, level.Mushrooms())
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "broken.txt", "too short\n")
	c := New(dir, quiet())

	_, err := c.Load("nowhere")
	assert.ErrorIs(t, err, ErrUnknownLevel)

	_, err = c.Load("broken")
	assert.ErrorIs(t, err, forest.ErrFormat)
}
