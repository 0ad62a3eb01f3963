package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/config"
	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/deck"
	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/results"
	"github.com/rs/zerolog"
)

// MaxRounds is the most rounds a single deck can fund
const MaxRounds = deck.Size / 2

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator checks a war config file or results file
type Validator struct {
	Path    string
	Results ValidationResults
}

func NewValidator(path string) *Validator {
	return &Validator{
		Path:    path,
		Results: ValidationResults{},
	}
}

// Validate detects whether Path is a results history or a config file and
// checks it accordingly. Only unreadable files produce an error.
func (v *Validator) Validate() (ValidationResults, error) {
	if _, err := os.Stat(v.Path); os.IsNotExist(err) {
		return v.Results, fmt.Errorf("file not found: %s", v.Path)
	}

	var raw map[string]any
	if _, err := toml.DecodeFile(v.Path, &raw); err != nil {
		return v.Results, fmt.Errorf("error parsing %s: %w", filepath.Base(v.Path), err)
	}

	if _, ok := raw["result"]; ok {
		return v.ValidateResults()
	}
	return v.ValidateConfig()
}

// ValidateConfig checks Path as a config file
func (v *Validator) ValidateConfig() (ValidationResults, error) {
	cfg := config.Default()
	meta, err := toml.DecodeFile(v.Path, cfg)
	if err != nil {
		return v.Results, fmt.Errorf("error parsing config: %w", err)
	}

	for _, key := range meta.Undecoded() {
		v.addWarning("unknown config key: %s", key.String())
	}

	if meta.IsDefined("player_name") && strings.TrimSpace(cfg.PlayerName) == "" {
		v.addError("player_name must not be blank")
	}

	if !cfg.Computer && meta.IsDefined("opponent_name") && strings.TrimSpace(cfg.OpponentName) == "" {
		v.addError("opponent_name must not be blank")
	}

	if cfg.Computer && cfg.OpponentName != "" {
		v.addWarning("opponent_name is ignored when computer = true")
	}

	if meta.IsDefined("log_level") {
		if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil || cfg.LogLevel == "" {
			v.addError("unsupported log_level: %q", cfg.LogLevel)
		}
	}

	if meta.IsDefined("results_file") && cfg.ResultsFile != "" {
		dir := filepath.Dir(cfg.ResultsFile)
		if info, err := os.Stat(dir); err == nil && !info.IsDir() {
			v.addError("results_file directory is not a directory: %s", dir)
		} else if os.IsNotExist(err) {
			v.addWarning("results_file directory does not exist yet: %s", dir)
		}
	}

	return v.Results, nil
}

// ValidateResults checks Path as a results history
func (v *Validator) ValidateResults() (ValidationResults, error) {
	records, err := results.NewStore(v.Path).Load()
	if err != nil {
		return v.Results, err
	}

	if len(records) == 0 {
		v.addWarning("no results recorded")
	}

	for i, r := range records {
		v.validateRecord(i+1, r)
	}

	return v.Results, nil
}

func (v *Validator) validateRecord(n int, r results.Record) {
	if r.Time.IsZero() {
		v.addWarning("result %d: missing time", n)
	}

	if strings.TrimSpace(r.Player1) == "" || strings.TrimSpace(r.Player2) == "" {
		v.addError("result %d: both players must be named", n)
	}

	if r.Wins1 < 0 || r.Wins2 < 0 {
		v.addError("result %d: win counts must not be negative", n)
		return
	}

	if r.Rounds > MaxRounds {
		v.addError("result %d: %d rounds is more than one deck allows (%d)", n, r.Rounds, MaxRounds)
	}

	if r.Wins1+r.Wins2 > r.Rounds {
		v.addError("result %d: %d wins recorded over %d rounds", n, r.Wins1+r.Wins2, r.Rounds)
	}

	switch {
	case r.Tie && r.Winner != "":
		v.addError("result %d: a tie cannot have a winner", n)
	case r.Tie && r.Wins1 != r.Wins2:
		v.addError("result %d: tie recorded with scores %d and %d", n, r.Wins1, r.Wins2)
	case r.Tie:
	case r.Winner == "":
		v.addError("result %d: winner is required unless tie = true", n)
	case r.Winner == r.Player1 && r.Wins1 <= r.Wins2,
		r.Winner == r.Player2 && r.Wins2 <= r.Wins1:
		v.addError("result %d: winner %s does not have the higher score", n, r.Winner)
	case r.Winner != r.Player1 && r.Winner != r.Player2:
		v.addError("result %d: winner %s did not play", n, r.Winner)
	}
}

func (v *Validator) addError(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) addWarning(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}
