package keyfile

import (
	"encoding/base64"
	"fmt"
	"strings"
)

type Decoder struct{}

func NewDecoder() Decoder {
	return Decoder{}
}

// Decode reverses Encode. Surrounding whitespace is ignored.
func (Decoder) Decode(encoded string) (string, error) {
	contents, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", &Error{Kind: OtherFailure, Err: fmt.Errorf("failed to decode base64: %w", err)}
	}

	if err := checkUTF8(contents); err != nil {
		return "", &Error{Kind: OtherFailure, Err: fmt.Errorf("decoded key is not text: %w", err)}
	}

	return string(contents), nil
}
