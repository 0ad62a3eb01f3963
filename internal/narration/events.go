package narration

import "github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/card"

// Kind identifies an event type
type Kind string

const (
	KindGameStarted   Kind = "game_started"
	KindRoundDraw     Kind = "round_draw"
	KindRoundWin      Kind = "round_win"
	KindWarDeclared   Kind = "war_declared"
	KindWarResult     Kind = "war_result"
	KindWarAbandoned  Kind = "war_abandoned"
	KindScoreSnapshot Kind = "score_snapshot"
	KindGameOver      Kind = "game_over"
)

// Event is something that happened during a game
type Event interface {
	Kind() Kind
}

type GameStarted struct {
	Player1 string
	Player2 string
}

// RoundDraw reports the two face-up cards. Depth is 0 for the opening
// comparison of a round and the war level otherwise.
type RoundDraw struct {
	Player1 string
	Player2 string
	Card1   card.Card
	Card2   card.Card
	Depth   int
}

type RoundWin struct {
	Winner string
}

// WarDeclared is emitted each time a tie escalates. Depth starts at 1.
type WarDeclared struct {
	Depth int
}

// WarResult reports the war winner and the size of the table pile taken.
// PileSize is informational; the winner scores a single win.
type WarResult struct {
	Winner   string
	PileSize int
	Depth    int
}

// WarAbandoned is emitted when the deck cannot fund another escalation
type WarAbandoned struct {
	Remaining int
	PileSize  int
}

type ScoreSnapshot struct {
	Player1 string
	Player2 string
	Wins1   int
	Wins2   int
}

type GameOver struct {
	Winner string // empty on a tie
	Tie    bool
	Rounds int
}

func (GameStarted) Kind() Kind { return KindGameStarted }
func (RoundDraw) Kind() Kind { return KindRoundDraw }
func (RoundWin) Kind() Kind { return KindRoundWin }
func (WarDeclared) Kind() Kind { return KindWarDeclared }
func (WarResult) Kind() Kind { return KindWarResult }
func (WarAbandoned) Kind() Kind { return KindWarAbandoned }
func (ScoreSnapshot) Kind() Kind { return KindScoreSnapshot }
func (GameOver) Kind() Kind { return KindGameOver }
