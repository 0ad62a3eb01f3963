package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/deck"
	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/engine"
	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/narration"
	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/player"
)

// DefaultOpponentName is used for a human second player with no name
const DefaultOpponentName = "Player 2"

// ErrDuplicateName is returned when both players share a name, which
// would make the winner ambiguous
var ErrDuplicateName = errors.New("players must have different names")

// Decider is asked before every round whether play should go on
type Decider interface {
	Continue(ctx context.Context, round int) (bool, error)
}

// DeciderFunc adapts a function to the Decider interface
type DeciderFunc func(ctx context.Context, round int) (bool, error)

func (f DeciderFunc) Continue(ctx context.Context, round int) (bool, error) {
	return f(ctx, round)
}

// Always keeps playing until the deck runs out
var Always Decider = DeciderFunc(func(context.Context, int) (bool, error) { return true, nil })

// Recorder persists a finished game
type Recorder interface {
	Record(ctx context.Context, outcome Outcome) error
}

// Score is a player's final tally
type Score struct {
	Name     string
	Wins     int
	Computer bool
}

// Outcome summarises a finished game
type Outcome struct {
	Result  WinnerResult
	Player1 Score
	Player2 Score
	Stats   Stats
}

// Stats counts what happened over a session
type Stats struct {
	Rounds        int
	Wars          int
	WarsAbandoned int
	DeepestWar    int
}

// Options configures a new session. A nil Deck is replaced by a freshly
// shuffled one, a nil Decider by Always. Recorder is optional.
type Options struct {
	Player1  string
	Player2  string
	Computer bool

	Deck     *deck.Deck
	Narrator narration.Narrator
	Decider  Decider
	Recorder Recorder
}

// Session is one game of War between two players over a single deck
type Session struct {
	deck     *deck.Deck
	p1       *player.Player
	p2       *player.Player
	engine   *engine.Engine
	narrator narration.Narrator
	decider  Decider
	recorder Recorder
	stats    Stats
}

// New validates the options and prepares a session
func New(opts Options) (*Session, error) {
	p1, err := player.New(opts.Player1)
	if err != nil {
		return nil, fmt.Errorf("player 1: %w", err)
	}

	var p2 *player.Player
	if opts.Computer {
		p2 = player.NewComputer()
	} else {
		name := opts.Player2
		if strings.TrimSpace(name) == "" {
			name = DefaultOpponentName
		}
		if p2, err = player.New(name); err != nil {
			return nil, fmt.Errorf("player 2: %w", err)
		}
	}
	if strings.EqualFold(p1.Name, p2.Name) {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, p1.Name)
	}

	s := &Session{
		deck:     opts.Deck,
		p1:       p1,
		p2:       p2,
		narrator: opts.Narrator,
		decider:  opts.Decider,
		recorder: opts.Recorder,
	}
	if s.deck == nil {
		s.deck = deck.NewRandom()
	}
	if s.narrator == nil {
		s.narrator = narration.Discard
	}
	if s.decider == nil {
		s.decider = Always
	}
	s.engine = engine.New(s.narrator)

	return s, nil
}

func (s *Session) Player1() *player.Player { return s.p1 }
func (s *Session) Player2() *player.Player { return s.p2 }
func (s *Session) Deck() *deck.Deck { return s.deck }
func (s *Session) Stats() Stats { return s.stats }

// PlayRound plays a single round and updates the session statistics
func (s *Session) PlayRound() engine.RoundOutcome {
	out := s.engine.PlayRound(s.deck, s.p1, s.p2)
	if !out.Played {
		return out
	}

	s.stats.Rounds++
	if out.War != nil {
		s.stats.Wars++
		if out.War.Abandoned {
			s.stats.WarsAbandoned++
		}
		if out.War.Depth > s.stats.DeepestWar {
			s.stats.DeepestWar = out.War.Depth
		}
	}
	return out
}

// Play runs rounds until the deck is exhausted, the decider stops the game
// or ctx is cancelled, then settles the winner and hands it to the recorder.
// A recorder failure is returned alongside the final outcome.
func (s *Session) Play(ctx context.Context) (Outcome, error) {
	s.narrator.Narrate(narration.GameStarted{Player1: s.p1.Name, Player2: s.p2.Name})

	for s.deck.Len() >= 2 && ctx.Err() == nil {
		ok, err := s.decider.Continue(ctx, s.stats.Rounds+1)
		if err != nil {
			return Outcome{}, fmt.Errorf("asking whether to continue: %w", err)
		}
		if !ok {
			break
		}
		if out := s.PlayRound(); !out.Played {
			break
		}
	}

	outcome := s.Outcome()
	s.narrator.Narrate(narration.GameOver{
		Winner: outcome.Result.Winner,
		Tie:    outcome.Result.Tie,
		Rounds: s.stats.Rounds,
	})

	if s.recorder != nil {
		if err := s.recorder.Record(ctx, outcome); err != nil {
			return outcome, fmt.Errorf("saving result: %w", err)
		}
	}

	return outcome, nil
}

// Outcome reports the current standing as if the game ended now
func (s *Session) Outcome() Outcome {
	return Outcome{
		Result:  DetermineWinner(s.p1, s.p2),
		Player1: Score{Name: s.p1.Name, Wins: s.p1.Wins, Computer: s.p1.Computer},
		Player2: Score{Name: s.p2.Name, Wins: s.p2.Wins, Computer: s.p2.Computer},
		Stats:   s.stats,
	}
}
