package keyfile

import (
	"fmt"
	"unicode/utf8"
)

func checkUTF8(contents []byte) error {
	if utf8.Valid(contents) {
		return nil
	}
	offset := 0
	for offset < len(contents) {
		r, size := utf8.DecodeRune(contents[offset:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		offset += size
	}
	return fmt.Errorf("invalid UTF-8 byte 0x%02x at position %d", contents[offset], offset)
}
