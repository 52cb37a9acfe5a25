package pdf

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// The core fonts use WinAnsiEncoding, which matches Windows-1252 for every
// printable character.
var winAnsi = charmap.Windows1252

// Encodable reports whether every rune of s can be drawn with the core font.
func Encodable(s string) bool {
	for _, r := range s {
		if _, ok := winAnsi.EncodeRune(r); !ok {
			return false
		}
	}
	return true
}

func encodeWinAnsi(s string) (string, error) {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := winAnsi.EncodeRune(r)
		if !ok {
			return "", fmt.Errorf("character %q has no WinAnsi code", r)
		}
		out = append(out, b)
	}
	return string(out), nil
}
