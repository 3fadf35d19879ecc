package chess

// WinState is the outcome of a position under the king-capture rules.
type WinState int

const (
	Playing WinState = iota
	WhiteWins
	BlackWins
	Draw
)

// String returns the string representation of a win state.
func (w WinState) String() string {
	switch w {
	case Playing:
		return "Playing"
	case WhiteWins:
		return "White wins"
	case BlackWins:
		return "Black wins"
	case Draw:
		return "Draw"
	default:
		return "Unknown"
	}
}

// WinnerState returns the win state for a victory by the given colour.
func WinnerState(c Colour) WinState {
	if c == White {
		return WhiteWins
	}
	return BlackWins
}

// Winner returns the winning colour, if the state is a win.
func (w WinState) Winner() (Colour, bool) {
	switch w {
	case WhiteWins:
		return White, true
	case BlackWins:
		return Black, true
	default:
		return White, false
	}
}

// IsOver returns true for any state other than Playing.
func (w WinState) IsOver() bool {
	return w != Playing
}

// Result returns the PGN-style result string for a finished game,
// or "*" while the game is still in progress.
func (w WinState) Result() string {
	switch w {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}
