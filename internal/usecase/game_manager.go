package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/connectfour-console/internal/entity"
	"github.com/rocketscienceinc/connectfour-console/internal/game"
)

const (
	StatusRedTurn    = "red_turn"
	StatusYellowTurn = "yellow_turn"
	StatusRedWon     = "red_won"
	StatusYellowWon  = "yellow_won"
	StatusDraw       = "draw"
	StatusAbandoned  = "abandoned"
)

type strategy interface {
	ChooseColumn(board *game.Board) (int, error)
}

type printer interface {
	Println(message string)
}

// Participant pairs a player identity with the strategy that moves for it.
type Participant struct {
	Player   *entity.Player
	Strategy strategy
}

// GameManager drives one game: it alternates turns, commits legal moves and
// decides when the game is over. Red always moves first.
type GameManager struct {
	logger *slog.Logger
	out    printer

	board  *game.Board
	red    Participant
	yellow Participant
	icons  map[string]string

	status string
}

func NewGameManager(logger *slog.Logger, out printer, board *game.Board, red, yellow Participant) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game"),
		out:    out,
		board:  board,
		red:    red,
		yellow: yellow,
		icons: map[string]string{
			game.EmptyCell:     entity.IconEmpty,
			red.Player.Mark:    red.Player.Icon,
			yellow.Player.Mark: yellow.Player.Icon,
		},
		status: StatusRedTurn,
	}
}

func (that *GameManager) Status() string {
	return that.status
}

func (that *GameManager) Board() *game.Board {
	return that.board
}

// Run plays the game to its terminal status. After every committed move the
// mover is checked for a win; a full board with no winner ends in a draw.
func (that *GameManager) Run(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			that.status = StatusAbandoned
			return that.status, fmt.Errorf("game interrupted: %w", err)
		}

		current := that.currentParticipant()

		that.out.Println(that.board.Render(that.icons))

		if err := that.runTurn(current); err != nil {
			that.status = StatusAbandoned
			return that.status, err
		}

		if that.board.HasWin(current.Player.Mark) {
			that.status = wonStatus(current.Player.Mark)
			that.out.Println(that.board.Render(that.icons))
			that.out.Println(fmt.Sprintf("%s wins!", current.Player.Name))

			return that.status, nil
		}

		if that.board.IsFull() {
			that.status = StatusDraw
			that.out.Println(that.board.Render(that.icons))
			that.out.Println("The board is full: it's a draw.")

			return that.status, nil
		}

		that.toggleTurn()
	}
}

// runTurn asks the current strategy for a column until a legal drop lands.
// A full or out-of-range column re-prompts the same participant.
func (that *GameManager) runTurn(current Participant) error {
	for {
		column, err := current.Strategy.ChooseColumn(that.board)
		if err != nil {
			return fmt.Errorf("%s failed to choose a column: %w", current.Player.Name, err)
		}

		row, err := that.board.Drop(column, current.Player.Mark)
		if errors.Is(err, game.ErrColumnFull) || errors.Is(err, game.ErrInvalidColumn) {
			that.out.Println("Please choose a column that is not full.")
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to drop into column %d: %w", column, err)
		}

		that.logger.Debug("placed marker", "player", current.Player.Name, "column", column, "row", row)

		return nil
	}
}

func (that *GameManager) currentParticipant() Participant {
	if that.status == StatusYellowTurn {
		return that.yellow
	}
	return that.red
}

func (that *GameManager) toggleTurn() {
	if that.status == StatusRedTurn {
		that.status = StatusYellowTurn
	} else {
		that.status = StatusRedTurn
	}
}

func wonStatus(mark string) string {
	if mark == game.PlayerRed {
		return StatusRedWon
	}
	return StatusYellowWon
}
