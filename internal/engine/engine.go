package engine

import (
	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/card"
	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/deck"
	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/narration"
	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/player"
)

const (
	// FaceDownCards is how many cards each player buries per war level
	FaceDownCards = 3
	// WarCardsNeeded is the deck size required to fund one war level:
	// three face-down and one face-up card for each player.
	WarCardsNeeded = 2 * (FaceDownCards + 1)
)

// RoundOutcome describes a single round. Played is false when the deck
// could not supply both cards. Winner is whoever took the opening comparison
// and is nil on a tie, in which case War describes the escalation.
type RoundOutcome struct {
	Played bool
	Card1  card.Card
	Card2  card.Card
	Winner *player.Player
	War    *WarOutcome
}

// WarOutcome describes the escalation that followed a tie. Depth counts the
// levels actually fought; Winner is nil when the war was abandoned.
type WarOutcome struct {
	Depth     int
	Winner    *player.Player
	PileSize  int
	Abandoned bool
}

// Engine resolves rounds and wars, reporting to a narrator
type Engine struct {
	narrator narration.Narrator
}

func New(narrator narration.Narrator) *Engine {
	if narrator == nil {
		narrator = narration.Discard
	}
	return &Engine{narrator: narrator}
}

// PlayRound draws a card for each player and settles the round, escalating
// to war on a rank tie. Exactly one win is awarded per resolved round.
func (e *Engine) PlayRound(d *deck.Deck, p1, p2 *player.Player) RoundOutcome {
	c1, ok1 := d.Draw()
	c2, ok2 := d.Draw()
	if !ok1 || !ok2 {
		return RoundOutcome{}
	}

	p1.Hold(c1)
	p2.Hold(c2)
	e.narrator.Narrate(narration.RoundDraw{Player1: p1.Name, Player2: p2.Name, Card1: c1, Card2: c2})

	outcome := RoundOutcome{Played: true, Card1: c1, Card2: c2}

	switch card.Compare(c1, c2) {
	case 1:
		outcome.Winner = p1
	case -1:
		outcome.Winner = p2
	default:
		war := &WarOutcome{}
		e.resolveWar(d, p1, p2, []card.Card{c1, c2}, war)
		outcome.War = war
	}

	if outcome.Winner != nil {
		outcome.Winner.Win()
		e.narrator.Narrate(narration.RoundWin{Winner: outcome.Winner.Name})
	}

	e.narrator.Narrate(narration.ScoreSnapshot{
		Player1: p1.Name,
		Player2: p2.Name,
		Wins1:   p1.Wins,
		Wins2:   p2.Wins,
	})

	return outcome
}

// resolveWar fights one war level and recurses while the face-up cards tie.
// An unfunded level leaves the pile on the table and scores nothing.
func (e *Engine) resolveWar(d *deck.Deck, p1, p2 *player.Player, pile []card.Card, out *WarOutcome) {
	e.narrator.Narrate(narration.WarDeclared{Depth: out.Depth + 1})

	if d.Len() < WarCardsNeeded {
		out.Abandoned = true
		out.PileSize = len(pile)
		e.narrator.Narrate(narration.WarAbandoned{Remaining: d.Len(), PileSize: len(pile)})
		return
	}
	out.Depth++

	for i := 0; i < FaceDownCards; i++ {
		down1, _ := d.Draw()
		down2, _ := d.Draw()
		pile = append(pile, down1, down2)
	}

	up1, _ := d.Draw()
	up2, _ := d.Draw()
	pile = append(pile, up1, up2)
	p1.Hold(up1)
	p2.Hold(up2)
	e.narrator.Narrate(narration.RoundDraw{Player1: p1.Name, Player2: p2.Name, Card1: up1, Card2: up2, Depth: out.Depth})

	out.PileSize = len(pile)
	switch card.Compare(up1, up2) {
	case 1:
		out.Winner = p1
	case -1:
		out.Winner = p2
	default:
		e.resolveWar(d, p1, p2, pile, out)
		return
	}

	out.Winner.Win()
	e.narrator.Narrate(narration.WarResult{Winner: out.Winner.Name, PileSize: len(pile), Depth: out.Depth})
}
