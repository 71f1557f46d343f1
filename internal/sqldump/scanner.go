// Package sqldump parses textual MySQL dump files of the form
// INSERT INTO `table` VALUES (...),(...);. It is not a SQL parser:
// it understands exactly the literal syntax mysqldump emits for row
// data (single-quoted strings with backslash escapes, NULL, bare
// numerals) and nothing else.
package sqldump

import "strings"

// SplitRecords splits a VALUES blob like "(...),(...),(...)" into one
// string per row, each still bracketed by its parentheses and in
// source order.
//
// A single left-to-right scan tracks quoted-string state, a one-shot
// escape flag and the parenthesis depth of non-string content. Commas
// at depth zero separate rows and are discarded. If the blob ends with
// an unterminated row (depth never returns to zero) that trailing
// partial row is dropped rather than reported as an error.
func SplitRecords(blob string) []string {
	var records []string
	var buf strings.Builder
	depth := 0
	inStr := false
	esc := false

	for _, ch := range blob {
		buf.WriteRune(ch)

		if inStr {
			if esc {
				esc = false
				continue
			}
			switch ch {
			case '\\':
				esc = true
			case '\'':
				inStr = false
			}
			continue
		}

		switch ch {
		case '\'':
			inStr = true
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				records = append(records, strings.TrimSpace(buf.String()))
				buf.Reset()
			}
		case ',':
			// Only a comma between rows, never inside one.
			if depth == 0 {
				buf.Reset()
			}
		}
	}

	return records
}

// SplitFields splits one row literal "(a,'b',NULL,3.14)" into its raw
// field tokens, quotes preserved, for ParseLiteral to decode. Fields
// are flat literals so only quoted-string state is tracked; a comma
// inside quotes belongs to the string.
func SplitFields(record string) []string {
	inner := record
	if strings.HasPrefix(inner, "(") && strings.HasSuffix(inner, ")") {
		inner = inner[1 : len(inner)-1]
	}

	var fields []string
	var buf strings.Builder
	inStr := false
	esc := false

	for _, ch := range inner {
		if inStr {
			buf.WriteRune(ch)
			if esc {
				esc = false
				continue
			}
			switch ch {
			case '\\':
				esc = true
			case '\'':
				inStr = false
			}
			continue
		}

		switch ch {
		case '\'':
			inStr = true
			buf.WriteRune(ch)
		case ',':
			fields = append(fields, strings.TrimSpace(buf.String()))
			buf.Reset()
		default:
			buf.WriteRune(ch)
		}
	}
	if buf.Len() > 0 {
		fields = append(fields, strings.TrimSpace(buf.String()))
	}

	return fields
}
