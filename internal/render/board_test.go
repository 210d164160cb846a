package render

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	t.Run("Empty board shows cell numbers", func(t *testing.T) {
		// Given: a plain-text renderer and a new game
		renderer := New(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))
		game := tictactoe.NewGame()

		// When: rendering the view
		out := renderer.Render(game.View())

		// Then: the board lists free cells and the first player
		expected := "Lewis-Tac-Azure\n\n" +
			" 0 | 1 | 2 \n" +
			"---+---+---\n" +
			" 3 | 4 | 5 \n" +
			"---+---+---\n" +
			" 6 | 7 | 8 \n" +
			"\n" +
			"Next player: Aaryan\n" +
			"\n" +
			"> 0. Go to game start\n"
		assert.Equal(t, expected, out)
	})

	t.Run("Won board shows initials and move list", func(t *testing.T) {
		// Given: a won game
		renderer := New(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))
		game := tictactoe.NewGame()
		for _, cell := range []int{0, 1, 3, 4, 6} {
			require.True(t, game.Play(cell))
		}

		// When: rendering the view
		out := renderer.Render(game.View())

		// Then: marks, status and every move are shown
		assert.Contains(t, out, " A | P | 2 \n")
		assert.Contains(t, out, " A | 7 | 8 \n")
		assert.Contains(t, out, "Winner: Aaryan\n")
		assert.Contains(t, out, "  1. Go to move #1\n")
		assert.Contains(t, out, "> 5. Go to move #5\n")
	})

	t.Run("Colour profile adds escape sequences", func(t *testing.T) {
		renderer := New(&bytes.Buffer{}, termenv.WithProfile(termenv.ANSI256))
		game := tictactoe.NewGame()
		require.True(t, game.Play(4))

		out := renderer.Render(game.View())

		assert.Contains(t, out, "\x1b[")
	})
}

func TestRenderer_Print(t *testing.T) {
	var buf bytes.Buffer
	renderer := New(&buf, termenv.WithProfile(termenv.Ascii))

	require.NoError(t, renderer.Print(tictactoe.NewGame().View()))
	require.NoError(t, renderer.Println("bye"))

	assert.Contains(t, buf.String(), "Next player: Aaryan")
	assert.Contains(t, buf.String(), "bye\n")
}

func TestInitial(t *testing.T) {
	assert.Equal(t, "A", Initial(entity.PlayerA))
	assert.Equal(t, "P", Initial(entity.PlayerB))
	assert.Equal(t, " ", Initial(entity.EmptyCell))
}
