package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/render"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

const help = "commands: 0-8 play a cell | jump N | reset | history | help | quit"

// Console plays a local game on a terminal. Input is read line by line.
type Console struct {
	logger   *slog.Logger
	in       io.Reader
	renderer *render.Renderer
	game     *tictactoe.Game
}

func New(logger *slog.Logger, in io.Reader, renderer *render.Renderer) *Console {
	return &Console{
		logger:   logger.With("component", "console"),
		in:       in,
		renderer: renderer,
		game:     tictactoe.NewGame(),
	}
}

// Run - reads commands until quit, end of input or ctx cancellation.
// A blocking Read on in cannot be interrupted, so after cancellation the
// reader goroutine outlives Run until in yields a line, EOF or an error.
// It never sends once Run has returned.
func (that *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := that.renderer.Println(help); err != nil {
		return err
	}

	if err := that.renderer.Print(that.game.View()); err != nil {
		return err
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}

				return nil
			}

			quit, err := that.execute(strings.TrimSpace(line))
			if err != nil {
				return err
			}

			if quit {
				return nil
			}
		}
	}
}

func (that *Console) Game() *tictactoe.Game {
	return that.game
}

func (that *Console) execute(line string) (bool, error) {
	log := that.logger.With("method", "execute", "command", line)

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "quit", "exit", "q":
		return true, that.renderer.Println("bye")
	case "help", "?":
		return false, that.renderer.Println(help)
	case "reset":
		that.game.Reset()
	case "history":
		return false, that.printHistory()
	case "jump":
		if len(fields) != 2 {
			return false, that.renderer.Println("usage: jump N")
		}

		move, err := strconv.Atoi(fields[1])
		if err != nil {
			return false, that.renderer.Println("usage: jump N")
		}

		if !that.game.JumpTo(move) {
			log.Debug("jump ignored", "move", move)
		}
	default:
		cell, err := strconv.Atoi(fields[0])
		if err != nil {
			return false, that.renderer.Println(help)
		}

		if !that.game.Play(cell) {
			log.Debug("move ignored", "cell", cell)
		}
	}

	return false, that.renderer.Print(that.game.View())
}

func (that *Console) printHistory() error {
	history := that.game.History()

	for move := 1; move < len(history); move++ {
		cell, _ := entity.ChangedCell(history[move-1], history[move])

		line := fmt.Sprintf("%2d. %s -> cell %d", move, history[move][cell], cell)
		if err := that.renderer.Println(line); err != nil {
			return err
		}
	}

	return nil
}
