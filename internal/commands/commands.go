package commands

import "errors"

// ErrReported wraps failures whose diagnostic has already been written to
// the output logger. Callers should exit without printing them again.
var ErrReported = errors.New("failure already reported")
