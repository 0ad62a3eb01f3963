package session

import "github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/player"

// TieMessage is how a tie is reported and persisted
const TieMessage = "It was a tie!"

// WinnerResult is the outcome of a finished game: a player name or a tie
type WinnerResult struct {
	Winner string
	Tie    bool
}

// Tie is the result when both players finish with the same score
var Tie = WinnerResult{Tie: true}

func (r WinnerResult) String() string {
	if r.Tie {
		return TieMessage
	}
	return r.Winner
}

// DetermineWinner compares the two win totals
func DetermineWinner(p1, p2 *player.Player) WinnerResult {
	switch {
	case p1.Wins > p2.Wins:
		return WinnerResult{Winner: p1.Name}
	case p2.Wins > p1.Wins:
		return WinnerResult{Winner: p2.Name}
	default:
		return Tie
	}
}
