package fixtures

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/tabletop/poker"
	"github.com/lox/tabletop/yahtzee"
)

func TestGeneratePoker(t *testing.T) {
	data, err := Generate("poker", 20, 42)
	require.NoError(t, err)

	var file File
	require.NoError(t, json.Unmarshal(data, &file))

	assert.Equal(t, "poker", file.Game)
	assert.Equal(t, int64(42), file.Seed)
	assert.Len(t, file.Hands, 20)

	// Every record's category must match reclassifying its cards.
	for _, record := range file.Hands {
		require.Len(t, record.Cards, 5)
		cards, err := poker.ParseCards(strings.Join(record.Cards, ""))
		require.NoError(t, err)
		assert.Equal(t, record.Category, poker.Classify(cards).String())
		assert.Nil(t, record.Score)
	}
}

func TestGenerateYahtzee(t *testing.T) {
	data, err := Generate("yahtzee", 20, 42)
	require.NoError(t, err)

	var file File
	require.NoError(t, json.Unmarshal(data, &file))
	assert.Len(t, file.Hands, 20)

	for _, record := range file.Hands {
		require.Len(t, record.Dice, 5)
		dice := make([]yahtzee.Die, 0, 5)
		for _, pip := range record.Dice {
			die, err := yahtzee.NewDie(pip)
			require.NoError(t, err)
			dice = append(dice, die)
		}

		result := yahtzee.Classify(dice)
		assert.Equal(t, record.Category, result.Combination.String())
		require.NotNil(t, record.Score)
		assert.Equal(t, result.Score(), *record.Score)
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	first, err := Generate("poker", 50, 7)
	require.NoError(t, err)
	second, err := Generate("poker", 50, 7)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateRejectsBadInput(t *testing.T) {
	_, err := Generate("backgammon", 10, 1)
	assert.ErrorContains(t, err, "unknown game")

	_, err = Generate("poker", 0, 1)
	assert.Error(t, err)
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "poker.json")

	require.NoError(t, Write(path, "poker", 5, 1))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var file File
	require.NoError(t, json.Unmarshal(data, &file))
	assert.Len(t, file.Hands, 5)

	// Atomic write leaves no temp residue.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
