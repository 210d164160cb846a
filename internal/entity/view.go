package entity

import "fmt"

const Title = "Lewis-Tac-Azure"

// MoveEntry is one item of the move list shown next to the board.
type MoveEntry struct {
	Move    int    `json:"move"`
	Label   string `json:"label"`
	Current bool   `json:"current,omitempty"`
}

// View is everything the presentation layer needs to draw one displayed snapshot.
type View struct {
	ID          string      `json:"id,omitempty"`
	Title       string      `json:"title"`
	Board       Snapshot    `json:"board"`
	Status      Status      `json:"status"`
	StatusText  string      `json:"status_text"`
	Winner      Mark        `json:"winner,omitempty"`
	WinningLine []int       `json:"winning_line,omitempty"`
	NextPlayer  Mark        `json:"next_player,omitempty"`
	CurrentMove int         `json:"current_move"`
	Moves       []MoveEntry `json:"moves"`
}

// NewView - builds the view of history[current].
func NewView(history []Snapshot, current int) *View {
	snapshot := history[current]
	result := EvaluateBoard(snapshot)

	view := &View{
		Title:       Title,
		Board:       snapshot,
		Status:      Classify(snapshot),
		StatusText:  StatusText(snapshot),
		CurrentMove: current,
		Moves:       make([]MoveEntry, 0, len(history)),
	}

	switch view.Status {
	case StatusWon:
		view.Winner = result.Winner
		view.WinningLine = result.Line[:]
	case StatusInProgress:
		view.NextPlayer = NextTurn(snapshot)
	case StatusDrawn:
	}

	for move := range history {
		view.Moves = append(view.Moves, MoveEntry{
			Move:    move,
			Label:   MoveLabel(move),
			Current: move == current,
		})
	}

	return view
}

func MoveLabel(move int) string {
	if move == 0 {
		return "Go to game start"
	}

	return fmt.Sprintf("Go to move #%d", move)
}

// IsWinningCell - reports whether cell belongs to the highlighted line.
func (that *View) IsWinningCell(cell int) bool {
	for _, idx := range that.WinningLine {
		if idx == cell {
			return true
		}
	}

	return false
}
