package narration

import (
	"github.com/rs/zerolog"
)

// Log writes every event as a structured debug entry
type Log struct {
	logger zerolog.Logger
}

func NewLog(logger zerolog.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) Narrate(e Event) {
	entry := l.logger.Debug().Str("event", string(e.Kind()))

	switch ev := e.(type) {
	case GameStarted:
		entry = entry.Str("player1", ev.Player1).Str("player2", ev.Player2)
	case RoundDraw:
		entry = entry.
			Str("player1", ev.Player1).Stringer("card1", ev.Card1).
			Str("player2", ev.Player2).Stringer("card2", ev.Card2).
			Int("depth", ev.Depth)
	case RoundWin:
		entry = entry.Str("winner", ev.Winner)
	case WarDeclared:
		entry = entry.Int("depth", ev.Depth)
	case WarResult:
		entry = entry.Str("winner", ev.Winner).Int("pile", ev.PileSize).Int("depth", ev.Depth)
	case WarAbandoned:
		entry = entry.Int("remaining", ev.Remaining).Int("pile", ev.PileSize)
	case ScoreSnapshot:
		entry = entry.
			Str("player1", ev.Player1).Int("wins1", ev.Wins1).
			Str("player2", ev.Player2).Int("wins2", ev.Wins2)
	case GameOver:
		entry = entry.Str("winner", ev.Winner).Bool("tie", ev.Tie).Int("rounds", ev.Rounds)
	}

	entry.Send()
}
