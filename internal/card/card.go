package card

import (
	"errors"
	"fmt"
)

// Rank bounds. 11-14 are Jack, Queen, King and Ace.
const (
	MinRank = 2
	MaxRank = 14
)

var (
	ErrInvalidRank = errors.New("invalid rank")
	ErrInvalidSuit = errors.New("invalid suit")
)

// Suit is decorative only; it never takes part in a comparison.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in deck-building order
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "spades"
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	default:
		return fmt.Sprintf("suit(%d)", int(s))
	}
}

// Card represents a playing card
type Card struct {
	Rank int  // 2-14
	Suit Suit // Spades, Hearts, Diamonds or Clubs
}

// New creates a card, rejecting ranks and suits outside the standard deck
func New(rank int, suit Suit) (Card, error) {
	if rank < MinRank || rank > MaxRank {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidRank, rank)
	}
	if suit < Spades || suit > Clubs {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidSuit, int(suit))
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// Must is like New but panics on invalid input. Intended for literals.
func Must(rank int, suit Suit) Card {
	c, err := New(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// Compare orders two cards by rank alone
func Compare(a, b Card) int {
	switch {
	case a.Rank < b.Rank:
		return -1
	case a.Rank > b.Rank:
		return 1
	default:
		return 0
	}
}

// Equal reports whether two cards tie. Suits are ignored.
func (c Card) Equal(other Card) bool {
	return Compare(c, other) == 0
}

func (c Card) Less(other Card) bool {
	return Compare(c, other) < 0
}

func (c Card) Greater(other Card) bool {
	return Compare(c, other) > 0
}

// RankName returns the display name of the card's rank
func (c Card) RankName() string {
	switch c.Rank {
	case 11:
		return "Jack"
	case 12:
		return "Queen"
	case 13:
		return "King"
	case 14:
		return "Ace"
	default:
		return fmt.Sprintf("%d", c.Rank)
	}
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.RankName(), c.Suit)
}
