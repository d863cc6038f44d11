package forest

// Snapshot captures the complete run state for determinism testing and replay.
type Snapshot struct {
	Tick          int
	LastWolfMove  int
	Status        Status
	Player        Pos
	Lives         int
	Mushrooms     int
	MushroomsLeft int
	Speed         Effect
	Invisibility  Effect
	Wolves        []Pos
	Facing        []Direction
}

// Snapshot returns the current run snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          s.elapsed,
		LastWolfMove:  s.lastWolfMove,
		Status:        s.status,
		Player:        s.player.Pos(),
		Lives:         s.player.Lives(),
		Mushrooms:     s.player.Mushrooms(),
		MushroomsLeft: s.grid.Mushrooms(),
		Speed:         s.player.Speed(),
		Invisibility:  s.player.Invisibility(),
		Wolves:        make([]Pos, len(s.wolves)),
		Facing:        make([]Direction, len(s.wolves)),
	}
	for i, w := range s.wolves {
		snap.Wolves[i] = w.Pos()
		snap.Facing[i] = w.Facing()
	}
	return snap
}
