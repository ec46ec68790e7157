package entity

import "github.com/rocketscienceinc/connectfour-console/internal/game"

const (
	IconRed    = "🔴"
	IconYellow = "🟡"
	IconEmpty  = "⚪"
)

// Player is a passive holder of identity. Whose turn it is belongs to the
// orchestrator, not the player.
type Player struct {
	Mark string
	Name string
	Icon string
}

func NewRedPlayer(name string) *Player {
	if name == "" {
		name = "Red"
	}

	return &Player{
		Mark: game.PlayerRed,
		Name: name,
		Icon: IconRed,
	}
}

func NewYellowPlayer(name string) *Player {
	if name == "" {
		name = "Yellow"
	}

	return &Player{
		Mark: game.PlayerYellow,
		Name: name,
		Icon: IconYellow,
	}
}
