package console

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"

	"github.com/webprojects/webprojects/internal/projects/domain"
)

// DisplayText returns f as text safe to write to a terminal. Escape
// sequences are removed, newlines and tabs become spaces and any other
// control rune is dropped.
func DisplayText(f domain.Field) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, ansi.Strip(f.String()))
}

// LinkTarget returns the url held by f with every control byte
// percent-encoded, so it cannot terminate an OSC 8 hyperlink.
func LinkTarget(f domain.Field) string {
	s := f.String()
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsControl(r) {
			b.WriteRune(r)
			continue
		}
		for _, c := range []byte(string(r)) {
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}
