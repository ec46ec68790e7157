package service

import "github.com/rocketscienceinc/connectfour-console/internal/game"

// Strategy picks the column for one move. The board is read-only for the
// strategy; committing the move is the orchestrator's job.
type Strategy interface {
	ChooseColumn(board *game.Board) (int, error)
}
