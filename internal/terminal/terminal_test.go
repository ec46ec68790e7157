package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour-console/internal/apperror"
)

func TestTerminal_Prompt(t *testing.T) {
	t.Run("Reads one trimmed line per prompt", func(t *testing.T) {
		// Given: a terminal over two lines of input
		out := &bytes.Buffer{}
		term := New(strings.NewReader("  4  \n7\n"), out)

		// When: two prompts are issued
		first, err := term.Prompt("move: ")
		require.NoError(t, err)

		second, err := term.Prompt("move: ")
		require.NoError(t, err)

		// Then: each prompt consumed one line, trimmed
		assert.Equal(t, "4", first)
		assert.Equal(t, "7", second)
		assert.Equal(t, "move: move: ", out.String())
	})

	t.Run("Returns the final line without a trailing newline", func(t *testing.T) {
		term := New(strings.NewReader("3"), &bytes.Buffer{})

		answer, err := term.Prompt("move: ")

		require.NoError(t, err)
		assert.Equal(t, "3", answer)
	})

	t.Run("Error once the input is exhausted", func(t *testing.T) {
		// Given: a terminal over an empty input stream
		term := New(strings.NewReader(""), &bytes.Buffer{})

		// When: a prompt is issued
		_, err := term.Prompt("move: ")

		// Then: ErrInputClosed should be returned
		assert.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}

func TestTerminal_Println(t *testing.T) {
	// Given: a terminal writing to a buffer
	out := &bytes.Buffer{}
	term := New(strings.NewReader(""), out)

	// When: two messages are printed
	term.Println("first")
	term.Println("second")

	// Then: the messages appear in order, one per line
	assert.Equal(t, "first\nsecond\n", out.String())
}
