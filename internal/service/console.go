package service

import (
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/connectfour-console/internal/apperror"
	"github.com/rocketscienceinc/connectfour-console/internal/entity"
	"github.com/rocketscienceinc/connectfour-console/internal/game"
)

type prompter interface {
	Prompt(message string) (string, error)
	Println(message string)
}

type consoleStrategy struct {
	term   prompter
	player *entity.Player
}

// NewConsoleStrategy returns the interactive strategy: prompt the player for
// a column number between 1 and 8 and re-prompt until one is given. Typing
// q or quit forfeits the game.
func NewConsoleStrategy(term prompter, player *entity.Player) Strategy {
	return &consoleStrategy{
		term:   term,
		player: player,
	}
}

func (that *consoleStrategy) ChooseColumn(_ *game.Board) (int, error) {
	for {
		answer, err := that.term.Prompt(fmt.Sprintf("%s move: ", that.player.Name))
		if err != nil {
			return 0, fmt.Errorf("failed to read move: %w", err)
		}

		if answer == "q" || answer == "quit" {
			return 0, apperror.ErrGameAbandoned
		}

		column, convErr := strconv.Atoi(answer)
		if convErr != nil || column < 1 || column > game.BoardSize {
			that.term.Println("Please enter a column number between 1 and 8.")
			continue
		}

		return column - 1, nil
	}
}
