package sqldump

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractValues(t *testing.T) {
	sql := "INSERT INTO `client` VALUES (1,'Amy','F',23,'amy01','pwd'),(2,'Bob','M',31,'bob02','pwd2');"

	rows, err := ExtractValues(sql, "client")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []interface{}{int64(1), "Amy", "F", int64(23), "amy01", "pwd"}, rows[0])
	assert.Equal(t, []interface{}{int64(2), "Bob", "M", int64(31), "bob02", "pwd2"}, rows[1])
}

func TestExtractValues_MultipleStatements(t *testing.T) {
	sql := "INSERT INTO `product` VALUES (1,'A');\nsome other statement;\nINSERT INTO `product` VALUES (2,'B'),(3,'C');"

	rows, err := ExtractValues(sql, "product")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, int64(1), rows[0][0])
	assert.Equal(t, int64(3), rows[2][0])
}

func TestExtractValues_IgnoresOtherTables(t *testing.T) {
	sql := "INSERT INTO `client` VALUES (1,'a');\nINSERT INTO `product` VALUES (2,'b');"

	rows, err := ExtractValues(sql, "client")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0][0])
}

func TestExtractValues_SemicolonInsideString(t *testing.T) {
	// The terminator search tracks quote state, so a ';' inside a
	// field must not end the statement.
	sql := "INSERT INTO `product` VALUES (1,'a;b'),(2,'c');"

	rows, err := ExtractValues(sql, "product")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "a;b", rows[0][1])
}

func TestExtractValues_Unterminated(t *testing.T) {
	sql := "INSERT INTO `client` VALUES (1,'a')"

	_, err := ExtractValues(sql, "client")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not terminated")
}

func TestExtractValues_NoStatements(t *testing.T) {
	rows, err := ExtractValues("CREATE TABLE `client` (id INT);", "client")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestExtractValues_NullAndNumericLiterals(t *testing.T) {
	sql := "INSERT INTO `product` VALUES (1,'P001','Cream',NULL,100.5,NULL);"

	rows, err := ExtractValues(sql, "product")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, int64(1), row[0])
	assert.Equal(t, "P001", row[1])
	assert.Nil(t, row[3])
	assert.Equal(t, 100.5, row[4])
	assert.Nil(t, row[5])
}
