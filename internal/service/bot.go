package service

import (
	"math/rand"

	"github.com/rocketscienceinc/connectfour-console/internal/game"
)

type botStrategy struct {
	mark string
	rnd  *rand.Rand
}

// NewBotStrategy returns the one-ply heuristic strategy: win now, else block
// the opponent, else pick a random column. The randomness source is injected
// so tests can seed it.
func NewBotStrategy(mark string, rnd *rand.Rand) Strategy {
	return &botStrategy{
		mark: mark,
		rnd:  rnd,
	}
}

func (that *botStrategy) ChooseColumn(board *game.Board) (int, error) {
	for column := 0; column < game.BoardSize; column++ {
		if winsAfterDrop(board, column, that.mark) {
			return column, nil
		}
	}

	// The bot assumes exactly one opponent, colour red.
	for column := 0; column < game.BoardSize; column++ {
		if winsAfterDrop(board, column, game.PlayerRed) {
			return column, nil
		}
	}

	return that.rnd.Intn(game.BoardSize), nil
}

// winsAfterDrop simulates a single drop on a copy of the board and reports
// whether it completes four in a row for mark. A full column is never a
// candidate: the simulated drop fails and the column is skipped.
func winsAfterDrop(board *game.Board, column int, mark string) bool {
	sim := board.Clone()

	if _, err := sim.Drop(column, mark); err != nil {
		return false
	}

	return sim.HasWin(mark)
}
