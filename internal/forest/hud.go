package forest

import (
	"fmt"
	"strings"
)

// Visible reports whether p is inside the player's view. The view is a
// square of VisionRadius cells around the player; everything else is fog.
func (s *Session) Visible(p Pos) bool {
	return s.player.Pos().Chebyshev(p) <= s.rules.VisionRadius
}

// StatusLine returns the one-line HUD text for the run.
func (s *Session) StatusLine() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s | Player: %s | Lives: %d | Mushrooms: %d | Time: %d",
		s.level.Name, s.playerName, s.player.Lives(), s.player.Mushrooms(), s.elapsed)
	if s.player.SpeedActive() {
		b.WriteString(" | SPEED")
	}
	if s.player.Invisible() {
		b.WriteString(" | INVISIBLE")
	}
	return b.String()
}
