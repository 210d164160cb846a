package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

// Game owns the history of board snapshots and the move currently viewed.
// It is not safe for concurrent use.
type Game struct {
	history []entity.Snapshot
	current int
}

func NewGame() *Game {
	return &Game{
		history: []entity.Snapshot{{}},
		current: 0,
	}
}

// Restore - rebuilds a game from a stored history. Every step of the history
// must fill exactly one previously empty cell.
func Restore(history []entity.Snapshot, current int) (*Game, error) {
	if err := validateHistory(history); err != nil {
		return nil, err
	}

	if current < 0 || current >= len(history) {
		return nil, fmt.Errorf("%w: current move %d out of %d", apperror.ErrCorruptedHistory, current, len(history))
	}

	restored := make([]entity.Snapshot, len(history))
	copy(restored, history)

	return &Game{history: restored, current: current}, nil
}

// Play - puts the next mark on cell of the viewed snapshot. Any future moves
// beyond the viewed one are discarded. It reports false and changes nothing
// when the cell is out of range or occupied, or the viewed board is finished.
func (that *Game) Play(cell int) bool {
	if cell < 0 || cell >= entity.BoardSize {
		return false
	}

	snapshot := that.history[that.current]
	if snapshot[cell] != entity.EmptyCell || entity.EvaluateBoard(snapshot).HasWinner() {
		return false
	}

	next := snapshot
	next[cell] = entity.NextTurn(snapshot)

	that.history = append(that.history[:that.current+1], next)
	that.current = len(that.history) - 1

	return true
}

// JumpTo - changes the viewed move. Out of range moves are ignored.
func (that *Game) JumpTo(move int) bool {
	if move < 0 || move >= len(that.history) {
		return false
	}

	that.current = move

	return true
}

func (that *Game) Reset() {
	that.history = []entity.Snapshot{{}}
	that.current = 0
}

func (that *Game) Current() entity.Snapshot {
	return that.history[that.current]
}

func (that *Game) CurrentMove() int {
	return that.current
}

// History - returns a copy of the recorded snapshots.
func (that *Game) History() []entity.Snapshot {
	history := make([]entity.Snapshot, len(that.history))
	copy(history, that.history)

	return history
}

func (that *Game) Status() entity.Status {
	return entity.Classify(that.Current())
}

func (that *Game) View() *entity.View {
	return entity.NewView(that.history, that.current)
}

// Record - returns the stored form of the game under id.
func (that *Game) Record(id string) *entity.GameRecord {
	return &entity.GameRecord{
		ID:          id,
		History:     that.History(),
		CurrentMove: that.current,
	}
}

func validateHistory(history []entity.Snapshot) error {
	if len(history) == 0 {
		return fmt.Errorf("%w: empty history", apperror.ErrCorruptedHistory)
	}

	if !history[0].IsEmpty() {
		return fmt.Errorf("%w: game does not start from an empty board", apperror.ErrCorruptedHistory)
	}

	for i := 1; i < len(history); i++ {
		prev, next := history[i-1], history[i]

		cell, ok := entity.ChangedCell(prev, next)
		if !ok {
			return fmt.Errorf("%w: move %d does not fill exactly one cell", apperror.ErrCorruptedHistory, i)
		}

		if entity.EvaluateBoard(prev).HasWinner() {
			return fmt.Errorf("%w: move %d played after the game was won", apperror.ErrCorruptedHistory, i)
		}

		if next[cell] != entity.NextTurn(prev) {
			return fmt.Errorf("%w: move %d played out of turn", apperror.ErrCorruptedHistory, i)
		}
	}

	return nil
}
