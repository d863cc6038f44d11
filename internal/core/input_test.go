package core

import "testing"

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionRestart, "Restart"},
		{ActionScoreboard, "Scoreboard"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}

func TestActionIsMove(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsMove() {
			t.Errorf("%s should be a move action", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionConfirm, ActionPause, ActionQuit} {
		if a.IsMove() {
			t.Errorf("%s should not be a move action", a)
		}
	}
}
