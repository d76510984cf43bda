package parser

import (
	"fmt"
	"strings"
)

// UnquoteString decodes a string token lexeme, stripping the surrounding
// single or double quotes and resolving the escape sequences the scanner
// accepted.
func UnquoteString(lexeme string) (string, error) {
	if len(lexeme) < 2 {
		return "", fmt.Errorf("malformed string literal: %q", lexeme)
	}
	quote := lexeme[0]
	if (quote != '"' && quote != '\'') || lexeme[len(lexeme)-1] != quote {
		return "", fmt.Errorf("malformed string literal: %q", lexeme)
	}

	body := lexeme[1 : len(lexeme)-1]
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", fmt.Errorf("dangling escape in string literal: %q", lexeme)
		}
		switch e := body[i]; e {
		case '\'', '"', '\\', '/':
			b.WriteByte(e)
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			if i+4 >= len(body) {
				return "", fmt.Errorf("truncated unicode escape in string literal: %q", lexeme)
			}
			var r rune
			for j := 0; j < 4; j++ {
				i++
				d, ok := hexValue(body[i])
				if !ok {
					return "", fmt.Errorf("invalid unicode escape in string literal: %q", lexeme)
				}
				r = r<<4 | rune(d)
			}
			b.WriteRune(r)
		default:
			return "", fmt.Errorf("invalid escape \\%c in string literal: %q", e, lexeme)
		}
	}
	return b.String(), nil
}

func hexValue(c byte) (int, bool) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), true
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}
