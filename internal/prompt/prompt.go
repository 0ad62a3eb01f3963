package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Setup is what the players chose before the first round
type Setup struct {
	Player1  string
	Player2  string
	Computer bool
}

// Prompter asks questions on out and reads answers from in
type Prompter struct {
	in    *bufio.Reader
	out   io.Writer
	label *color.Color
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:    bufio.NewReader(in),
		out:   out,
		label: color.New(color.FgYellow),
	}
}

// Ask prints question and returns the trimmed answer. At end of input the
// answer is empty and err is io.EOF.
func (p *Prompter) Ask(question string) (string, error) {
	p.label.Fprint(p.out, question)

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return strings.TrimSpace(line), err
	}
	return strings.TrimSpace(line), nil
}

// AskDefault is like Ask but substitutes def for an empty answer
func (p *Prompter) AskDefault(question, def string) (string, error) {
	if def != "" {
		question = fmt.Sprintf("%s[%s] ", question, def)
	}
	answer, err := p.Ask(question)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if answer == "" {
		answer = def
	}
	return answer, err
}

// Confirm asks a yes/no question. Only answers starting with y are a yes.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question + " (y/n): ")
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(answer), "y"), nil
}

// Setup asks for the player names and whether to play the computer. Fields
// already set in defaults are offered as the default answer.
func (p *Prompter) Setup(defaults Setup) (Setup, error) {
	var s Setup
	var err error

	if s.Player1, err = p.AskDefault("Player 1 name: ", defaults.Player1); err != nil && !errors.Is(err, io.EOF) {
		return Setup{}, err
	}

	if s.Computer, err = p.Confirm("Play against computer?"); err != nil {
		return Setup{}, err
	}
	if s.Computer {
		return s, nil
	}

	if s.Player2, err = p.AskDefault("Player 2 name: ", defaults.Player2); err != nil && !errors.Is(err, io.EOF) {
		return Setup{}, err
	}
	return s, nil
}

// Continue asks whether to play another round. Closed input or a
// cancelled ctx means quit, even while waiting for an answer.
func (p *Prompter) Continue(ctx context.Context, _ int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, nil
	}

	type reply struct {
		answer string
		err    error
	}
	replies := make(chan reply, 1)
	go func() {
		answer, err := p.Ask("Press 'q' to quit. Any other key to play: ")
		replies <- reply{answer, err}
	}()

	var r reply
	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return false, nil
	case r = <-replies:
	}

	if errors.Is(r.err, io.EOF) {
		return false, nil
	}
	if r.err != nil {
		return false, r.err
	}
	return !strings.EqualFold(r.answer, "q"), nil
}
