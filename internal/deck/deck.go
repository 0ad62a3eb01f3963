package deck

import (
	"time"

	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/card"
	"golang.org/x/exp/rand"
)

// Size is the number of cards in a fresh deck
const Size = 52

// Deck is a stack of cards. The top of the deck is the end of the slice.
type Deck struct {
	cards []card.Card
}

// New builds a full deck and shuffles it with rng
func New(rng *rand.Rand) *Deck {
	d := Standard()
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	return d
}

// NewSeeded builds a shuffled deck from a fixed seed
func NewSeeded(seed uint64) *Deck {
	return New(rand.New(rand.NewSource(seed)))
}

// NewRandom builds a shuffled deck seeded from the clock
func NewRandom() *Deck {
	return NewSeeded(uint64(time.Now().UnixNano()))
}

// Standard builds the 52 card deck in rank-major order, unshuffled
func Standard() *Deck {
	cards := make([]card.Card, 0, Size)
	for rank := card.MinRank; rank <= card.MaxRank; rank++ {
		for _, suit := range card.Suits {
			cards = append(cards, card.Card{Rank: rank, Suit: suit})
		}
	}
	return &Deck{cards: cards}
}

// FromTop builds an unshuffled deck. The first card given is drawn first.
func FromTop(cards ...card.Card) *Deck {
	stack := make([]card.Card, len(cards))
	for i, c := range cards {
		stack[len(cards)-1-i] = c
	}
	return &Deck{cards: stack}
}

// Draw removes the top card. ok is false once the deck is empty.
func (d *Deck) Draw() (c card.Card, ok bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	last := len(d.cards) - 1
	c = d.cards[last]
	d.cards = d.cards[:last]
	return c, true
}

// Len returns the number of cards left
func (d *Deck) Len() int {
	return len(d.cards)
}

// Remaining returns a copy of the cards left, top card first
func (d *Deck) Remaining() []card.Card {
	out := make([]card.Card, len(d.cards))
	for i := range d.cards {
		out[i] = d.cards[len(d.cards)-1-i]
	}
	return out
}
