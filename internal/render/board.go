package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

const rowSeparator = "---+---+---"

// Renderer draws game views on a terminal. Colours degrade to plain text when
// the output is not a colour terminal.
type Renderer struct {
	out *termenv.Output

	playerA termenv.Color
	playerB termenv.Color
	winner  termenv.Color
}

func New(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	out := termenv.NewOutput(w, opts...)

	return &Renderer{
		out:     out,
		playerA: out.Color("12"),
		playerB: out.Color("13"),
		winner:  out.Color("10"),
	}
}

// Print - writes the rendered view.
func (that *Renderer) Print(view *entity.View) error {
	if _, err := that.out.WriteString(that.Render(view)); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

// Println - writes a plain line of text.
func (that *Renderer) Println(line string) error {
	if _, err := that.out.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}

	return nil
}

// Render - returns the title, board, status line and move list of view.
func (that *Renderer) Render(view *entity.View) string {
	var sb strings.Builder

	sb.WriteString(that.out.String(view.Title).Bold().String())
	sb.WriteString("\n\n")

	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			cells = append(cells, that.cell(view, row*3+col))
		}

		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteString("\n")

		if row < 2 {
			sb.WriteString(rowSeparator)
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(that.status(view))
	sb.WriteString("\n\n")

	for _, entry := range view.Moves {
		marker := " "
		if entry.Current {
			marker = ">"
		}

		line := fmt.Sprintf("%s%2d. %s", marker, entry.Move, entry.Label)
		if entry.Current {
			line = that.out.String(line).Bold().String()
		}

		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

func (that *Renderer) cell(view *entity.View, idx int) string {
	mark := view.Board[idx]
	if mark == entity.EmptyCell {
		return that.out.String(" " + strconv.Itoa(idx) + " ").Faint().String()
	}

	style := that.out.String(" " + Initial(mark) + " ").Foreground(that.markColor(mark))
	if view.IsWinningCell(idx) {
		style = style.Foreground(that.winner).Bold().Reverse()
	}

	return style.String()
}

func (that *Renderer) status(view *entity.View) string {
	style := that.out.String(view.StatusText)

	switch view.Status {
	case entity.StatusWon:
		style = style.Foreground(that.winner).Bold()
	case entity.StatusInProgress:
		style = style.Foreground(that.markColor(view.NextPlayer))
	case entity.StatusDrawn:
		style = style.Bold()
	}

	return style.String()
}

func (that *Renderer) markColor(mark entity.Mark) termenv.Color {
	if mark == entity.PlayerB {
		return that.playerB
	}

	return that.playerA
}

// Initial - returns the one-letter form of a mark drawn on the board.
func Initial(mark entity.Mark) string {
	if mark == entity.EmptyCell {
		return " "
	}

	return string([]rune(string(mark))[:1])
}
