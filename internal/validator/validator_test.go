package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateMissingFile(t *testing.T) {
	_, err := NewValidator(filepath.Join(t.TempDir(), "nope.toml")).Validate()
	require.Error(t, err)
}

func TestValidateUnparsable(t *testing.T) {
	path := writeFile(t, "config.toml", "player_name = \"unterminated\n")
	_, err := NewValidator(path).Validate()
	require.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		path := writeFile(t, "config.toml", `
player_name = "Mykolas"
computer = true
log_level = "info"
color = true
`)
		res, err := NewValidator(path).Validate()
		require.NoError(t, err)
		assert.Empty(t, res.Errors)
		assert.Empty(t, res.Warnings)
	})

	t.Run("problems", func(t *testing.T) {
		path := writeFile(t, "config.toml", `
player_name = "  "
opponent_name = "Simonas"
computer = true
log_level = "loud"
decks = 2
`)
		res, err := NewValidator(path).Validate()
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			"player_name must not be blank",
			`unsupported log_level: "loud"`,
		}, res.Errors)
		assert.ElementsMatch(t, []string{
			"unknown config key: decks",
			"opponent_name is ignored when computer = true",
		}, res.Warnings)
	})

	t.Run("missing keys take the defaults", func(t *testing.T) {
		path := writeFile(t, "config.toml", `
player_name = "Mykolas"
opponent_name = "Simonas"
`)
		res, err := NewValidator(path).Validate()
		require.NoError(t, err)
		assert.Empty(t, res.Errors)
		assert.Equal(t, []string{"opponent_name is ignored when computer = true"}, res.Warnings)
	})

	t.Run("results file under a regular file", func(t *testing.T) {
		blocker := writeFile(t, "blocker", "")
		path := writeFile(t, "config.toml", "results_file = \""+filepath.Join(blocker, "results.toml")+"\"\n")
		res, err := NewValidator(path).ValidateConfig()
		require.NoError(t, err)
		require.Len(t, res.Errors, 1)
		assert.Contains(t, res.Errors[0], "is not a directory")
	})
}

func TestValidateResults(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		path := writeFile(t, "results.toml", `
[[result]]
time = 2025-03-14T15:09:26Z
winner = "Mykolas"
tie = false
player1 = "Mykolas"
wins1 = 12
player2 = "Computer"
wins2 = 9
rounds = 23

[[result]]
time = 2025-03-14T16:00:00Z
tie = true
player1 = "Mykolas"
wins1 = 10
player2 = "Simonas"
wins2 = 10
rounds = 22
`)
		res, err := NewValidator(path).Validate()
		require.NoError(t, err)
		assert.Empty(t, res.Errors)
		assert.Empty(t, res.Warnings)
	})

	t.Run("problems", func(t *testing.T) {
		path := writeFile(t, "results.toml", `
[[result]]
winner = "Simonas"
player1 = "Mykolas"
wins1 = 12
player2 = "Simonas"
wins2 = 9
rounds = 30

[[result]]
time = 2025-03-14T16:00:00Z
tie = true
player1 = "Mykolas"
wins1 = 3
player2 = "Simonas"
wins2 = 2
rounds = 5

[[result]]
time = 2025-03-14T16:00:00Z
winner = "Ona"
player1 = "Mykolas"
wins1 = 3
player2 = "Simonas"
wins2 = 2
rounds = 5
`)
		res, err := NewValidator(path).Validate()
		require.NoError(t, err)
		assert.Equal(t, []string{
			"result 1: 30 rounds is more than one deck allows (26)",
			"result 1: winner Simonas does not have the higher score",
			"result 2: tie recorded with scores 3 and 2",
			"result 3: winner Ona did not play",
		}, res.Errors)
		assert.Equal(t, []string{"result 1: missing time"}, res.Warnings)
	})
}
