package sqldump

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitRecords(t *testing.T) {
	tests := []struct {
		name string
		blob string
		want []string
	}{
		{
			name: "single record",
			blob: "(1,'Amy','F')",
			want: []string{"(1,'Amy','F')"},
		},
		{
			name: "multiple records",
			blob: "(1,'a'),(2,'b'),(3,'c')",
			want: []string{"(1,'a')", "(2,'b')", "(3,'c')"},
		},
		{
			name: "comma inside quoted string is not a separator",
			blob: "(1,'a,b'),(2,'c')",
			want: []string{"(1,'a,b')", "(2,'c')"},
		},
		{
			name: "closing paren inside quoted string",
			blob: "(1,'a)b'),(2,'c')",
			want: []string{"(1,'a)b')", "(2,'c')"},
		},
		{
			name: "escaped quote keeps string state",
			blob: `(1,'it\'s'),(2,'x')`,
			want: []string{`(1,'it\'s')`, "(2,'x')"},
		},
		{
			name: "whitespace between records",
			blob: "(1,'a') ,\n (2,'b')",
			want: []string{"(1,'a')", "(2,'b')"},
		},
		{
			name: "trailing unterminated record is dropped",
			blob: "(1,'a'),(2,'b'",
			want: []string{"(1,'a')"},
		},
		{
			name: "empty blob",
			blob: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitRecords(tt.blob))
		})
	}
}

func TestSplitRecords_CountMatchesInput(t *testing.T) {
	blob := "(1,'x'),(2,'y'),(3,'z'),(4,'w'),(5,'v')"
	records := SplitRecords(blob)
	assert.Len(t, records, 5)
	for i, rec := range records {
		assert.Equalf(t, byte('('), rec[0], "record %d should start with paren", i)
		assert.Equalf(t, byte(')'), rec[len(rec)-1], "record %d should end with paren", i)
	}
}

func TestSplitFields(t *testing.T) {
	tests := []struct {
		name   string
		record string
		want   []string
	}{
		{
			name:   "mixed literal kinds",
			record: "(1,'Amy',NULL,3.14)",
			want:   []string{"1", "'Amy'", "NULL", "3.14"},
		},
		{
			name:   "comma inside string stays in the field",
			record: "('a,b',2)",
			want:   []string{"'a,b'", "2"},
		},
		{
			name:   "escaped quote inside string",
			record: `('it\'s, fine',7)`,
			want:   []string{`'it\'s, fine'`, "7"},
		},
		{
			name:   "surrounding whitespace is trimmed",
			record: "( 1 , 'x' , 2 )",
			want:   []string{"1", "'x'", "2"},
		},
		{
			name:   "single field",
			record: "(42)",
			want:   []string{"42"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitFields(tt.record))
		})
	}
}
