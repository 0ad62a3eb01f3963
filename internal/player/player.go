package player

import (
	"errors"
	"strings"

	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/card"
)

// ComputerName is the fixed identity of the computer opponent
const ComputerName = "Computer"

var ErrEmptyName = errors.New("player name must not be empty")

// Player holds a participant's identity, round wins and last drawn card
type Player struct {
	Name     string
	Wins     int
	Card     *card.Card // last card drawn, nil before the first round
	Computer bool
}

// New creates a human player
func New(name string) (*Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Player{Name: name}, nil
}

// NewComputer creates the computer opponent. It plays exactly like a human.
func NewComputer() *Player {
	return &Player{Name: ComputerName, Computer: true}
}

// Hold records c as the player's current card
func (p *Player) Hold(c card.Card) {
	p.Card = &c
}

// Win increments the player's win counter
func (p *Player) Win() {
	p.Wins++
}

func (p *Player) String() string {
	return p.Name
}
