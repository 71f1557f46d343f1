package sqldump

import (
	"strconv"
	"strings"
)

// ParseLiteral decodes one raw field token into nil (NULL), string,
// int64 or float64.
//
// The keyword NULL is matched exactly; any other casing is kept as
// text. A token quoted at both ends is unescaped and returned as a
// string. Everything else is tried as a number: a decimal point means
// float, otherwise integer, and a failed parse keeps the literal text
// verbatim.
func ParseLiteral(lit string) interface{} {
	if lit == "NULL" {
		return nil
	}

	if len(lit) >= 2 && lit[0] == '\'' && lit[len(lit)-1] == '\'' {
		return Unescape(lit[1 : len(lit)-1])
	}

	if strings.Contains(lit, ".") {
		if f, err := strconv.ParseFloat(lit, 64); err == nil {
			return f
		}
		return lit
	}
	if n, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return n
	}
	return lit
}

// Unescape reverses the backslash escapes MySQL uses inside string
// literals: \0 \b \n \r \t \Z \\ \' \". Each recognized pair consumes
// exactly two source bytes; any other character, including a backslash
// before an unrecognized one, is copied through unchanged. The content
// is never re-encoded.
func Unescape(s string) string {
	var out []byte
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			if r, ok := unescapeByte(s[i+1]); ok {
				out = append(out, r)
				i++
				continue
			}
		}
		out = append(out, s[i])
	}
	return string(out)
}

func unescapeByte(b byte) (byte, bool) {
	switch b {
	case '0':
		return 0x00, true
	case 'b':
		return '\b', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case 'Z':
		return 0x1a, true
	case '\\':
		return '\\', true
	case '\'':
		return '\'', true
	case '"':
		return '"', true
	}
	return 0, false
}
