package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/connectfour-console/internal/apperror"
)

// Terminal is the console collaborator: it reads one line per prompt and
// prints each message as one unit, in order. It does no validation of its own.
type Terminal struct {
	reader *bufio.Reader
	writer io.Writer
}

func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		reader: bufio.NewReader(in),
		writer: out,
	}
}

// Prompt prints message without a newline and reads one line of input.
// It returns ErrInputClosed once the input stream is exhausted.
func (that *Terminal) Prompt(message string) (string, error) {
	that.Print(message)

	line, err := that.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				return trimmed, nil
			}
			return "", apperror.ErrInputClosed
		}

		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func (that *Terminal) Print(message string) {
	fmt.Fprint(that.writer, message)
}

func (that *Terminal) Println(message string) {
	fmt.Fprintln(that.writer, message)
}
