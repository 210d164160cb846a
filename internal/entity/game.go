package entity

import "fmt"

type Mark string

const (
	PlayerA Mark = "Aaryan"
	PlayerB Mark = "Pradeep"

	EmptyCell Mark = ""
)

const BoardSize = 9

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDrawn      Status = "drawn"
)

// WinCombos lists every winning triple in the order they are checked.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Snapshot is the complete board at one point of the game, cells in row-major order.
type Snapshot [BoardSize]Mark

// Result is the outcome of EvaluateBoard. Line is meaningful only when Winner is set.
type Result struct {
	Winner Mark
	Line   [3]int
}

func (that Result) HasWinner() bool {
	return that.Winner != EmptyCell
}

// NextTurn - returns the mark that plays next. It trusts the snapshot to come
// from alternating play and never validates the counts.
func NextTurn(snapshot Snapshot) Mark {
	var aCount, bCount int

	for _, cell := range snapshot {
		switch cell {
		case PlayerA:
			aCount++
		case PlayerB:
			bCount++
		}
	}

	if aCount == bCount {
		return PlayerA
	}

	return PlayerB
}

// EvaluateBoard - returns the first completed triple of the snapshot, if any.
// A full board without a winner is a draw, which is left to the caller.
func EvaluateBoard(snapshot Snapshot) Result {
	for _, combo := range WinCombos {
		a, b, c := snapshot[combo[0]], snapshot[combo[1]], snapshot[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return Result{Winner: a, Line: combo}
		}
	}

	return Result{}
}

func (that Snapshot) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that Snapshot) IsEmpty() bool {
	return that == Snapshot{}
}

// Classify - derives the game status of the snapshot.
func Classify(snapshot Snapshot) Status {
	if EvaluateBoard(snapshot).HasWinner() {
		return StatusWon
	}

	if snapshot.IsFull() {
		return StatusDrawn
	}

	return StatusInProgress
}

// StatusText - returns the line shown above the board.
func StatusText(snapshot Snapshot) string {
	result := EvaluateBoard(snapshot)

	switch {
	case result.HasWinner():
		return fmt.Sprintf("Winner: %s", result.Winner)
	case snapshot.IsFull():
		return "It's a Draw!"
	default:
		return fmt.Sprintf("Next player: %s", NextTurn(snapshot))
	}
}

// ChangedCell - returns the single cell that differs between prev and next and
// was empty in prev. ok is false for any other pair.
func ChangedCell(prev, next Snapshot) (int, bool) {
	changed := -1

	for i := range prev {
		if prev[i] == next[i] {
			continue
		}

		if changed != -1 || prev[i] != EmptyCell || next[i] == EmptyCell {
			return 0, false
		}

		changed = i
	}

	return changed, changed != -1
}
