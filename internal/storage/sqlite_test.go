package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/forest-escape/internal/forest"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func run(player, level string, mushrooms, ticks int, outcome forest.Outcome) forest.RunResult {
	return forest.RunResult{
		PlayerName:   player,
		LevelName:    level,
		Mushrooms:    mushrooms,
		ElapsedTicks: ticks,
		Outcome:      outcome,
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.forest/scores.db")
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, filepath.Join(home, ".forest", "scores.db"))
}

func TestStoreRecordAndRank(t *testing.T) {
	store := openTestStore(t)

	results := []forest.RunResult{
		run("ana", "Level 1", 5, 80, forest.OutcomeGameOver),
		run("bo", "Level 1", 10, 120, forest.OutcomeCleared),
		run("cy", "Level 1", 10, 90, forest.OutcomeCleared),
		run("di", "Level 1", 10, 90, forest.OutcomeCleared),
		run("ed", "Level 2", 11, 60, forest.OutcomeCleared),
	}
	for _, r := range results {
		require.NoError(t, store.Record(r))
	}

	scores, err := store.TopScores("Level 1", 10)
	require.NoError(t, err)
	require.Len(t, scores, 4)

	var players []string
	for _, s := range scores {
		players = append(players, s.PlayerName)
		assert.Equal(t, "Level 1", s.LevelName)
		assert.NotEmpty(t, s.RunID)
		assert.False(t, s.CreatedAt.IsZero())
	}
	// Most mushrooms, then fewest ticks, then whoever finished first.
	assert.Equal(t, []string{"cy", "di", "bo", "ana"}, players)
	assert.Equal(t, forest.OutcomeGameOver, scores[3].Outcome)
	assert.NotEqual(t, scores[0].RunID, scores[1].RunID)
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		require.NoError(t, store.Record(run("p", "Level 1", i, 100, forest.OutcomeGameOver)))
	}

	scores, err := store.TopScores("Level 1", 5)
	require.NoError(t, err)
	assert.Len(t, scores, 5)
	assert.Equal(t, 14, scores[0].Mushrooms)

	scores, err = store.TopScores("Level 1", 0)
	require.NoError(t, err)
	assert.Len(t, scores, DefaultLimit)
}

func TestStoreSaveScoreRunID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveScore("run-1", run("ana", "Level 1", 3, 40, forest.OutcomeCleared))
	require.NoError(t, err)
	assert.Positive(t, id)

	_, err = store.SaveScore("run-1", run("ana", "Level 1", 4, 40, forest.OutcomeCleared))
	assert.Error(t, err, "run IDs are unique")

	entry, err := store.ScoreByRunID("run-1")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, id, entry.ID)
	assert.Equal(t, 3, entry.Mushrooms)

	missing, err := store.ScoreByRunID("run-2")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.LevelStats("Level 1")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Runs)
	assert.Equal(t, 0, empty.FastestClear)
	assert.True(t, empty.LastPlayed.IsZero())

	require.NoError(t, store.Record(run("ana", "Level 1", 4, 30, forest.OutcomeGameOver)))
	require.NoError(t, store.Record(run("bo", "Level 1", 10, 150, forest.OutcomeCleared)))
	require.NoError(t, store.Record(run("cy", "Level 1", 10, 110, forest.OutcomeCleared)))

	stats, err := store.LevelStats("Level 1")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Runs)
	assert.Equal(t, 2, stats.Clears)
	assert.Equal(t, 10, stats.BestMushrooms)
	assert.Equal(t, 110, stats.FastestClear)
	assert.False(t, stats.LastPlayed.IsZero())
}

func TestStoreLevelsAndClear(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Record(run("ana", "Level 2", 1, 10, forest.OutcomeGameOver)))
	require.NoError(t, store.Record(run("ana", "Level 1", 1, 10, forest.OutcomeGameOver)))
	require.NoError(t, store.Record(run("bo", "Level 1", 2, 10, forest.OutcomeGameOver)))

	levels, err := store.Levels()
	require.NoError(t, err)
	assert.Equal(t, []string{"Level 1", "Level 2"}, levels)

	require.NoError(t, store.ClearScores("Level 1"))

	scores, err := store.TopScores("Level 1", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)

	levels, err = store.Levels()
	require.NoError(t, err)
	assert.Equal(t, []string{"Level 2"}, levels)
}

func TestStoreAsSessionRecorder(t *testing.T) {
	store := openTestStore(t)
	level, err := forest.ParseLevel(testLevel, "level1.txt")
	require.NoError(t, err)

	s := forest.NewSession(level, forest.Options{PlayerName: "ana", Seed: 1, Recorder: store})
	moved, ev := s.MovePlayer(forest.Right)
	require.True(t, moved)
	require.Equal(t, forest.EventLevelCleared, ev.Kind)

	scores, err := store.TopScores("Level 1", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, "ana", scores[0].PlayerName)
	assert.Equal(t, 1, scores[0].Mushrooms)
	assert.Equal(t, forest.OutcomeCleared, scores[0].Outcome)
}

// testLevel has a single mushroom right of the player and no walls.
const testLevel = `PM..................
....................
....................
....................
....................
....................
....................
....................
....................
....................
..........C.........
....................
....................
....................
....................
....................
....................
....................
....................
....................
`
