package apperror

import "errors"

var (
	ErrInputClosed   = errors.New("input stream is closed")
	ErrGameAbandoned = errors.New("game abandoned by player")
)
