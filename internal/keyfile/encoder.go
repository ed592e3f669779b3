package keyfile

import (
	"encoding/base64"
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

type Encoder struct {
	logger logger
	fs     billy.Basic
}

// NewEncoder reads keys from the host filesystem when fs is nil.
func NewEncoder(logger logger, fs billy.Basic) Encoder {
	if fs == nil {
		fs = osfs.Default
	}
	return Encoder{
		logger: logger,
		fs:     fs,
	}
}

// Encode returns the standard, padded base64 encoding of the UTF-8 text
// stored at path. Any failure is an *Error.
func (e Encoder) Encode(path string) (string, error) {
	e.logger.Printf("Encoding service account key %s...", path)

	info, err := e.fs.Stat(path)
	if err != nil {
		return "", classify(path, err)
	}
	if info.IsDir() {
		return "", classify(path, fmt.Errorf("read %s: is a directory", path))
	}

	f, err := e.fs.Open(path)
	if err != nil {
		return "", classify(path, err)
	}
	defer closeAndIgnoreError(f)

	contents, err := io.ReadAll(f)
	if err != nil {
		return "", classify(path, err)
	}

	if err := checkUTF8(contents); err != nil {
		return "", classify(path, fmt.Errorf("failed to decode %s: %w", path, err))
	}

	return base64.StdEncoding.EncodeToString(contents), nil
}
