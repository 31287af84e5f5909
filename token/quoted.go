package token

import (
	"fmt"
	"strings"
)

// DecodeQuoted decodes a quoted string lexeme (including its surrounding
// quote characters) into its value. Both single and double quotes are
// accepted, with '\' as the escape character for either style.
func DecodeQuoted(lexeme string) (string, error) {
	if len(lexeme) < 2 {
		return "", fmt.Errorf("string literal %q too short", lexeme)
	}
	q := lexeme[0]
	if q != '"' && q != '\'' {
		return "", fmt.Errorf("string literal %q has no quote", lexeme)
	}
	if lexeme[len(lexeme)-1] != q {
		return "", fmt.Errorf("string literal %q is unterminated", lexeme)
	}
	body := lexeme[1 : len(lexeme)-1]
	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == q {
			return "", fmt.Errorf("string literal %q has an unescaped quote", lexeme)
		}
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		i++
		if i == len(body) {
			return "", fmt.Errorf("string literal %q ends in a bare escape", lexeme)
		}
		switch e := body[i]; e {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case 'a':
			sb.WriteByte('\a')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'v':
			sb.WriteByte('\v')
		case '0':
			sb.WriteByte(0)
		case '\\', '\'', '"':
			sb.WriteByte(e)
		default:
			// unrecognized escapes keep the backslash, so patterns
			// like "\d+" survive decoding
			sb.WriteByte('\\')
			sb.WriteByte(e)
		}
	}
	return sb.String(), nil
}

// EncodeQuoted builds a quoted lexeme for value using the given quote
// character.
func EncodeQuoted(value string, quote byte) string {
	var sb strings.Builder
	sb.Grow(len(value) + 2)
	sb.WriteByte(quote)
	for i := 0; i < len(value); i++ {
		switch c := value[i]; c {
		case '\\':
			sb.WriteString(`\\`)
		case quote:
			sb.WriteByte('\\')
			sb.WriteByte(quote)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte(quote)
	return sb.String()
}
