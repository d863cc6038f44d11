// Package forest implements the Forest Escape simulation: the tile map,
// the player and wolves, the level loader and the per-tick update.
// It has no terminal or storage dependencies; the platform drives it by
// calling Tick at a fixed cadence and MovePlayer on input.
package forest

// TileKind classifies a single map cell.
type TileKind uint8

const (
	Ground TileKind = iota
	Tree
	Rock
	Bush
	Campfire
	Mushroom
	SpeedPowerUp
	InvisPowerUp
	ExtraLife
)

// tileFacts holds the fixed movement and pickup rules of a tile kind.
type tileFacts struct {
	name         string
	blocksPlayer bool
	blocksEnemy  bool
	consumable   bool
}

var tileTable = [...]tileFacts{
	Ground:       {name: "ground"},
	Tree:         {name: "tree", blocksPlayer: true, blocksEnemy: true},
	Rock:         {name: "rock", blocksPlayer: true, blocksEnemy: true},
	Bush:         {name: "bush", blocksPlayer: true, blocksEnemy: true},
	Campfire:     {name: "campfire", blocksEnemy: true},
	Mushroom:     {name: "mushroom", consumable: true},
	SpeedPowerUp: {name: "speed", consumable: true},
	InvisPowerUp: {name: "invisibility", consumable: true},
	ExtraLife:    {name: "extra-life", consumable: true},
}

func (k TileKind) facts() tileFacts {
	if int(k) < len(tileTable) {
		return tileTable[k]
	}
	return tileTable[Ground]
}

// BlocksPlayer reports whether the player may not enter this tile.
func (k TileKind) BlocksPlayer() bool { return k.facts().blocksPlayer }

// BlocksEnemy reports whether wolves may not enter this tile.
// The campfire blocks wolves but not the player.
func (k TileKind) BlocksEnemy() bool { return k.facts().blocksEnemy }

// Consumable reports whether the tile reverts to Ground once the player enters it.
func (k TileKind) Consumable() bool { return k.facts().consumable }

// IsPowerUp reports whether the tile is one of the three power-ups.
func (k TileKind) IsPowerUp() bool {
	return k == SpeedPowerUp || k == InvisPowerUp || k == ExtraLife
}

func (k TileKind) String() string {
	return k.facts().name
}
