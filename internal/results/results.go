package results

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/session"
)

// Record is one finished game as stored in the results file
type Record struct {
	Time    time.Time `toml:"time"`
	Winner  string    `toml:"winner,omitempty"`
	Tie     bool      `toml:"tie"`
	Player1 string    `toml:"player1"`
	Wins1   int       `toml:"wins1"`
	Player2 string    `toml:"player2"`
	Wins2   int       `toml:"wins2"`
	Rounds  int       `toml:"rounds"`
}

// Result returns the winner as a session result
func (r Record) Result() session.WinnerResult {
	if r.Tie {
		return session.Tie
	}
	return session.WinnerResult{Winner: r.Winner}
}

// History is the on-disk layout: an array of [[result]] tables
type History struct {
	Results []Record `toml:"result"`
}

// Store appends finished games to a TOML file
type Store struct {
	Path string
	now  func() time.Time
}

func NewStore(path string) *Store {
	return &Store{Path: path, now: time.Now}
}

// Record appends a timestamped record of the outcome
func (s *Store) Record(_ context.Context, outcome session.Outcome) error {
	rec := Record{
		Time:    s.now().UTC().Truncate(time.Second),
		Winner:  outcome.Result.Winner,
		Tie:     outcome.Result.Tie,
		Player1: outcome.Player1.Name,
		Wins1:   outcome.Player1.Wins,
		Player2: outcome.Player2.Name,
		Wins2:   outcome.Player2.Wins,
		Rounds:  outcome.Stats.Rounds,
	}
	return s.Append(rec)
}

// Append writes rec to the end of the results file, creating it if needed
func (s *Store) Append(rec Record) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("error creating results directory: %w", err)
	}

	file, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening results file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(History{Results: []Record{rec}}); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	if _, err := file.WriteString("\n"); err != nil {
		return fmt.Errorf("error writing results file: %w", err)
	}

	return nil
}

// Load reads every stored record. A missing file is an empty history.
func (s *Store) Load() ([]Record, error) {
	if _, err := os.Stat(s.Path); os.IsNotExist(err) {
		return nil, nil
	}

	var h History
	if _, err := toml.DecodeFile(s.Path, &h); err != nil {
		return nil, fmt.Errorf("error decoding results file: %w", err)
	}
	return h.Results, nil
}

// Standing is a player's tally across stored games
type Standing struct {
	Name  string
	Games int
	Won   int
}

// Summary aggregates stored games
type Summary struct {
	Games     int
	Ties      int
	Standings []Standing // most wins first, then by name
}

// Summarize tallies wins per player
func Summarize(records []Record) Summary {
	byName := make(map[string]*Standing)
	get := func(name string) *Standing {
		st, ok := byName[name]
		if !ok {
			st = &Standing{Name: name}
			byName[name] = st
		}
		return st
	}

	var sum Summary
	for _, r := range records {
		sum.Games++
		get(r.Player1).Games++
		get(r.Player2).Games++
		if r.Tie {
			sum.Ties++
			continue
		}
		get(r.Winner).Won++
	}

	for _, st := range byName {
		sum.Standings = append(sum.Standings, *st)
	}
	sort.Slice(sum.Standings, func(i, j int) bool {
		a, b := sum.Standings[i], sum.Standings[j]
		if a.Won != b.Won {
			return a.Won > b.Won
		}
		return a.Name < b.Name
	})
	return sum
}
