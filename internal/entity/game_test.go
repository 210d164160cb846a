package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	a = PlayerA
	b = PlayerB
	e = EmptyCell
)

func TestNextTurn(t *testing.T) {
	t.Run("PlayerA starts on an empty board", func(t *testing.T) {
		// Given: an empty board
		snapshot := Snapshot{}

		// When: asking whose turn it is
		mark := NextTurn(snapshot)

		// Then: PlayerA should move first
		assert.Equal(t, PlayerA, mark)
	})

	t.Run("Turns alternate strictly along a game", func(t *testing.T) {
		// Given: a sequence of cells played in order
		cells := []int{4, 0, 8, 2, 1, 7, 6, 3, 5}
		snapshot := Snapshot{}
		expected := []Mark{a, b, a, b, a, b, a, b, a}

		for i, cell := range cells {
			// When: computing the turn before each move
			mark := NextTurn(snapshot)

			// Then: marks should alternate starting with PlayerA
			require.Equal(t, expected[i], mark, "move %d", i)
			snapshot[cell] = mark
		}
	})

	t.Run("Unbalanced snapshot is not validated", func(t *testing.T) {
		// Given: a snapshot no alternating game can reach
		snapshot := Snapshot{a, a, a, e, e, e, e, e, e}

		// When: asking whose turn it is
		mark := NextTurn(snapshot)

		// Then: the counts differ, so PlayerB is returned without error
		assert.Equal(t, PlayerB, mark)
	})
}

func TestEvaluateBoard(t *testing.T) {
	t.Run("Returns winner and line for a column", func(t *testing.T) {
		// Given: PlayerA holds the left column
		snapshot := Snapshot{
			a, b, e,
			a, b, e,
			a, e, e,
		}

		// When: evaluating the board
		result := EvaluateBoard(snapshot)

		// Then: PlayerA wins with [0, 3, 6]
		require.True(t, result.HasWinner())
		assert.Equal(t, PlayerA, result.Winner)
		assert.Equal(t, [3]int{0, 3, 6}, result.Line)
	})

	t.Run("Returns winner for a diagonal", func(t *testing.T) {
		// Given: PlayerB holds the anti-diagonal
		snapshot := Snapshot{
			a, a, b,
			e, b, e,
			b, a, a,
		}

		// When: evaluating the board
		result := EvaluateBoard(snapshot)

		// Then: PlayerB wins with [2, 4, 6]
		assert.Equal(t, PlayerB, result.Winner)
		assert.Equal(t, [3]int{2, 4, 6}, result.Line)
	})

	t.Run("First matching triple in check order wins", func(t *testing.T) {
		// Given: a snapshot with both the top row and the left column complete
		snapshot := Snapshot{
			a, a, a,
			a, b, b,
			a, b, b,
		}

		// When: evaluating the board
		result := EvaluateBoard(snapshot)

		// Then: the top row is reported because rows are checked first
		assert.Equal(t, [3]int{0, 1, 2}, result.Line)
	})

	t.Run("Returns no winner for an ongoing game", func(t *testing.T) {
		// Given: a board with no complete triple
		snapshot := Snapshot{
			a, b, e,
			e, a, e,
			e, e, b,
		}

		// When: evaluating the board
		result := EvaluateBoard(snapshot)

		// Then: there is no winner
		assert.False(t, result.HasWinner())
		assert.Equal(t, Result{}, result)
	})

	t.Run("Is pure and idempotent", func(t *testing.T) {
		// Given: any snapshot
		snapshot := Snapshot{a, b, a, b, a, b, e, e, e}
		original := snapshot

		// When: evaluating it twice
		first := EvaluateBoard(snapshot)
		second := EvaluateBoard(snapshot)

		// Then: both results match and the snapshot is untouched
		assert.Equal(t, first, second)
		assert.Equal(t, original, snapshot)
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		snapshot Snapshot
		status   Status
		text     string
	}{
		{
			name:     "empty board",
			snapshot: Snapshot{},
			status:   StatusInProgress,
			text:     "Next player: Aaryan",
		},
		{
			name:     "after first move",
			snapshot: Snapshot{a, e, e, e, e, e, e, e, e},
			status:   StatusInProgress,
			text:     "Next player: Pradeep",
		},
		{
			name:     "won",
			snapshot: Snapshot{a, b, e, a, b, e, a, e, e},
			status:   StatusWon,
			text:     "Winner: Aaryan",
		},
		{
			name:     "draw",
			snapshot: Snapshot{a, b, a, a, b, b, b, a, a},
			status:   StatusDrawn,
			text:     "It's a Draw!",
		},
		{
			name:     "win on the last cell is not a draw",
			snapshot: Snapshot{a, b, a, b, a, b, b, a, a},
			status:   StatusWon,
			text:     "Winner: Aaryan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, Classify(tt.snapshot))
			assert.Equal(t, tt.text, StatusText(tt.snapshot))
		})
	}
}

func TestChangedCell(t *testing.T) {
	t.Run("Single filled cell", func(t *testing.T) {
		cell, ok := ChangedCell(Snapshot{}, Snapshot{e, e, e, e, a, e, e, e, e})

		require.True(t, ok)
		assert.Equal(t, 4, cell)
	})

	t.Run("Identical snapshots", func(t *testing.T) {
		_, ok := ChangedCell(Snapshot{}, Snapshot{})

		assert.False(t, ok)
	})

	t.Run("Two filled cells", func(t *testing.T) {
		_, ok := ChangedCell(Snapshot{}, Snapshot{a, b, e, e, e, e, e, e, e})

		assert.False(t, ok)
	})

	t.Run("Overwritten cell", func(t *testing.T) {
		_, ok := ChangedCell(Snapshot{a, e, e, e, e, e, e, e, e}, Snapshot{b, e, e, e, e, e, e, e, e})

		assert.False(t, ok)
	})

	t.Run("Cleared cell", func(t *testing.T) {
		_, ok := ChangedCell(Snapshot{a, e, e, e, e, e, e, e, e}, Snapshot{})

		assert.False(t, ok)
	})
}
