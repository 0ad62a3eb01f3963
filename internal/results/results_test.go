package results

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Mantas-Meskonis/OOP-Card-game-WAR/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(filepath.Join(t.TempDir(), "war", "results.toml"))
	s.now = func() time.Time { return time.Date(2025, 3, 14, 15, 9, 26, 500, time.UTC) }
	return s
}

func TestLoadMissingFile(t *testing.T) {
	s := fixedStore(t)
	records, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecordAndLoad(t *testing.T) {
	s := fixedStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, session.Outcome{
		Result:  session.WinnerResult{Winner: "Mykolas"},
		Player1: session.Score{Name: "Mykolas", Wins: 14},
		Player2: session.Score{Name: "Computer", Wins: 9, Computer: true},
		Stats:   session.Stats{Rounds: 24},
	}))
	require.NoError(t, s.Record(ctx, session.Outcome{
		Result:  session.Tie,
		Player1: session.Score{Name: "Mykolas", Wins: 2},
		Player2: session.Score{Name: "Simonas", Wins: 2},
		Stats:   session.Stats{Rounds: 4},
	}))

	records, err := s.Load()
	require.NoError(t, err)
	require.Len(t, records, 2)

	want := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	assert.True(t, want.Equal(records[0].Time), "got %s", records[0].Time)
	assert.Equal(t, "Mykolas", records[0].Winner)
	assert.Equal(t, 14, records[0].Wins1)
	assert.Equal(t, "Computer", records[0].Player2)
	assert.Equal(t, 24, records[0].Rounds)
	assert.Equal(t, session.WinnerResult{Winner: "Mykolas"}, records[0].Result())

	assert.True(t, records[1].Tie)
	assert.Empty(t, records[1].Winner)
	assert.Equal(t, session.Tie, records[1].Result())
}

func TestLoadCorruptFile(t *testing.T) {
	s := fixedStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path), 0755))
	require.NoError(t, os.WriteFile(s.Path, []byte("[[result]\nwinner = "), 0644))

	_, err := s.Load()
	require.Error(t, err)
}

func TestAppendUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	s := NewStore(filepath.Join(blocker, "results.toml"))
	err := s.Record(context.Background(), session.Outcome{Result: session.Tie})
	require.Error(t, err)
}

func TestSummarize(t *testing.T) {
	records := []Record{
		{Winner: "Mykolas", Player1: "Mykolas", Player2: "Computer"},
		{Winner: "Computer", Player1: "Simonas", Player2: "Computer"},
		{Winner: "Computer", Player1: "Mykolas", Player2: "Computer"},
		{Tie: true, Player1: "Mykolas", Player2: "Simonas"},
	}

	sum := Summarize(records)
	assert.Equal(t, 4, sum.Games)
	assert.Equal(t, 1, sum.Ties)
	assert.Equal(t, []Standing{
		{Name: "Computer", Games: 3, Won: 2},
		{Name: "Mykolas", Games: 3, Won: 1},
		{Name: "Simonas", Games: 2, Won: 0},
	}, sum.Standings)
}
