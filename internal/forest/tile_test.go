package forest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTileBlockingRules(t *testing.T) {
	tests := []struct {
		kind         TileKind
		blocksPlayer bool
		blocksEnemy  bool
		consumable   bool
	}{
		{Ground, false, false, false},
		{Tree, true, true, false},
		{Rock, true, true, false},
		{Bush, true, true, false},
		{Campfire, false, true, false},
		{Mushroom, false, false, true},
		{SpeedPowerUp, false, false, true},
		{InvisPowerUp, false, false, true},
		{ExtraLife, false, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.blocksPlayer, tc.kind.BlocksPlayer(), "blocks player")
			assert.Equal(t, tc.blocksEnemy, tc.kind.BlocksEnemy(), "blocks enemy")
			assert.Equal(t, tc.consumable, tc.kind.Consumable(), "consumable")
		})
	}
}

func TestMapConsume(t *testing.T) {
	m := gridOf("MST", "C..")

	assert.Equal(t, 1, m.Mushrooms())
	assert.Equal(t, Mushroom, m.consume(Pos{0, 0}))
	assert.Equal(t, Ground, m.Tile(Pos{0, 0}))
	assert.False(t, m.HasMushrooms())

	// Collecting the same cell again finds only ground.
	assert.Equal(t, Ground, m.consume(Pos{0, 0}))

	// Non-consumable tiles are untouched.
	assert.Equal(t, Tree, m.consume(Pos{0, 2}))
	assert.Equal(t, Tree, m.Tile(Pos{0, 2}))
	assert.Equal(t, Campfire, m.consume(Pos{1, 0}))
	assert.Equal(t, Campfire, m.Tile(Pos{1, 0}))
}

func TestMapCloneIsIndependent(t *testing.T) {
	m := gridOf("M.", "C.")
	clone := m.Clone()

	clone.consume(Pos{0, 0})

	assert.Equal(t, Mushroom, m.Tile(Pos{0, 0}))
	assert.Equal(t, Ground, clone.Tile(Pos{0, 0}))
	assert.Equal(t, m.Campfire(), clone.Campfire())
}

func TestMapBounds(t *testing.T) {
	m := gridOf("..", "C.")

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.True(t, m.InBounds(Pos{1, 1}))
	assert.False(t, m.InBounds(Pos{-1, 0}))
	assert.False(t, m.InBounds(Pos{0, 2}))
	assert.False(t, m.WalkableForPlayer(Pos{2, 0}))
	assert.True(t, m.WalkableForPlayer(Pos{1, 0}), "player may stand on the campfire")
	assert.False(t, m.WalkableForEnemy(Pos{1, 0}), "wolves may not enter the campfire")
}

func TestPosDistances(t *testing.T) {
	a := Pos{Row: 2, Col: 3}

	assert.Equal(t, 0, a.Manhattan(a))
	assert.Equal(t, 1, a.Manhattan(Pos{2, 4}))
	assert.Equal(t, 2, a.Manhattan(Pos{3, 4}))
	assert.Equal(t, 1, a.Chebyshev(Pos{3, 4}))
	assert.Equal(t, 3, a.Chebyshev(Pos{5, 1}))
}
