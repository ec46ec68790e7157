package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/connectfour-console/internal/game"
)

func TestNewPlayers(t *testing.T) {
	t.Run("Custom names", func(t *testing.T) {
		red := NewRedPlayer("Alice")
		yellow := NewYellowPlayer("Bob")

		assert.Equal(t, "Alice", red.Name)
		assert.Equal(t, game.PlayerRed, red.Mark)
		assert.Equal(t, IconRed, red.Icon)

		assert.Equal(t, "Bob", yellow.Name)
		assert.Equal(t, game.PlayerYellow, yellow.Mark)
		assert.Equal(t, IconYellow, yellow.Icon)
	})

	t.Run("Colour names by default", func(t *testing.T) {
		assert.Equal(t, "Red", NewRedPlayer("").Name)
		assert.Equal(t, "Yellow", NewYellowPlayer("").Name)
	})
}
