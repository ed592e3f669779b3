package keyfile

import "io"

type logger interface {
	Printf(format string, v ...any)
}

func closeAndIgnoreError(c io.Closer) { _ = c.Close() }
