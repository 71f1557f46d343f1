package sqldump

import (
	"fmt"
	"strings"
)

// ExtractValues finds every "INSERT INTO `table` VALUES ...;" statement
// for the given table in a full dump text and returns the decoded rows
// in source order, one []interface{} per row.
//
// The closing semicolon is located with the same quote/escape tracking
// as SplitRecords, so a ';' inside a string field does not terminate
// the statement early. A matched header with no terminator before end
// of text is an error.
func ExtractValues(sql, table string) ([][]interface{}, error) {
	var rows [][]interface{}
	needle := fmt.Sprintf("INSERT INTO `%s` VALUES", table)

	start := 0
	for {
		idx := strings.Index(sql[start:], needle)
		if idx == -1 {
			break
		}
		idx += start

		blobStart := idx + len(needle)
		semi := findTerminator(sql, blobStart)
		if semi == -1 {
			return nil, fmt.Errorf("INSERT statement for %s not terminated by ';'", table)
		}

		blob := strings.TrimSpace(sql[blobStart:semi])
		for _, rec := range SplitRecords(blob) {
			fields := SplitFields(rec)
			row := make([]interface{}, len(fields))
			for i, f := range fields {
				row[i] = ParseLiteral(f)
			}
			rows = append(rows, row)
		}

		start = semi + 1
	}

	return rows, nil
}

// findTerminator returns the index of the first ';' at or after pos
// that is not inside a single-quoted string, or -1.
func findTerminator(sql string, pos int) int {
	inStr := false
	esc := false
	for i := pos; i < len(sql); i++ {
		ch := sql[i]
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
		case ';':
			return i
		}
	}
	return -1
}
