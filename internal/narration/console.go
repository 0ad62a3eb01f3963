package narration

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Console renders events as human readable lines
type Console struct {
	out io.Writer

	name    *color.Color
	winner  *color.Color
	war     *color.Color
	subtle  *color.Color
	heading *color.Color
}

func NewConsole(out io.Writer) *Console {
	return &Console{
		out:     out,
		name:    color.New(color.FgCyan),
		winner:  color.New(color.FgGreen, color.Bold),
		war:     color.New(color.FgRed, color.Bold),
		subtle:  color.New(color.FgHiBlack),
		heading: color.New(color.FgHiWhite, color.Bold),
	}
}

func (c *Console) Narrate(e Event) {
	switch ev := e.(type) {
	case GameStarted:
		c.heading.Fprintln(c.out, "Beginning War!")
	case RoundDraw:
		fmt.Fprintf(c.out, "%s drew %s, %s drew %s\n",
			c.name.Sprint(ev.Player1), ev.Card1, c.name.Sprint(ev.Player2), ev.Card2)
	case RoundWin:
		fmt.Fprintf(c.out, "%s wins this round!\n", c.winner.Sprint(ev.Winner))
	case WarDeclared:
		if ev.Depth > 1 {
			c.war.Fprintln(c.out, "WAR again!")
		} else {
			c.war.Fprintln(c.out, "WAR!")
		}
	case WarResult:
		fmt.Fprintf(c.out, "%s wins the war and takes %d cards.\n", c.winner.Sprint(ev.Winner), ev.PileSize)
	case WarAbandoned:
		c.subtle.Fprintln(c.out, "Not enough cards to continue war. Awarding based on current score.")
	case ScoreSnapshot:
		fmt.Fprintf(c.out, "Score → %s: %d | %s: %d\n\n",
			c.name.Sprint(ev.Player1), ev.Wins1, c.name.Sprint(ev.Player2), ev.Wins2)
	case GameOver:
		if ev.Tie {
			c.heading.Fprintln(c.out, "War is over. It was a tie!")
		} else {
			fmt.Fprintf(c.out, "War is over. %s won!\n", c.winner.Sprint(ev.Winner))
		}
	}
}
