package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-data-exporter/mockrows/sqltype"
)

func TestRead(t *testing.T) {
	input := "id INTEGER,flag BOOLEAN,label VARCHAR\n7,true,hello\n8,false,\"a, b\"\n"
	table, err := Read(strings.NewReader(input), 0)
	require.NoError(t, err)

	assert.Equal(t, []Column{
		{Name: "id", Type: sqltype.Integer, Position: 1},
		{Name: "flag", Type: sqltype.Boolean, Position: 2},
		{Name: "label", Type: sqltype.VarChar, Position: 3},
	}, table.Columns)
	assert.Equal(t, [][]string{
		{"7", "true", "hello"},
		{"8", "false", "a, b"},
	}, table.Rows)
}

func TestReadDelimiter(t *testing.T) {
	input := "id INTEGER;name VARCHAR\n1;x,y\n"
	table, err := Read(strings.NewReader(input), ';')
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"1", "x,y"}, table.Rows[0])
}

func TestReadHeaderOnly(t *testing.T) {
	table, err := Read(strings.NewReader("id INTEGER\n"), 0)
	require.NoError(t, err)
	assert.Len(t, table.Columns, 1)
	assert.Empty(t, table.Rows)
}

func TestReadKeepsRaggedRows(t *testing.T) {
	table, err := Read(strings.NewReader("a INTEGER,b INTEGER\n1\n1,2,3\n"), 0)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1"}, {"1", "2", "3"}}, table.Rows)
}

func TestReadHeaderWhitespace(t *testing.T) {
	table, err := Read(strings.NewReader(" id \t INTEGER ,name   VARCHAR\n"), 0)
	require.NoError(t, err)
	assert.Equal(t, "id", table.Columns[0].Name)
	assert.Equal(t, sqltype.Integer, table.Columns[0].Type)
	assert.Equal(t, "name", table.Columns[1].Name)
}

func TestReadSchemaErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		position int
	}{
		{"empty input", "", 0},
		{"missing type", "id\n1\n", 1},
		{"unknown type", "id INTEGER,name STRING\n", 2},
		{"lower case type", "id integer\n", 1},
		{"extra token", "ts TIMESTAMP WITH TIME ZONE\n", 1},
		{"empty cell", "id INTEGER,\n", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Read(strings.NewReader(tt.input), 0)
			require.Error(t, err)
			assert.Nil(t, table)
			assert.True(t, errors.Is(err, ErrSchema))

			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, tt.position, schemaErr.Position)
		})
	}
}

func TestReadSyntaxError(t *testing.T) {
	_, err := Read(strings.NewReader("id INTEGER\n\"unterminated\n"), 0)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrSchema))
	assert.Contains(t, err.Error(), "read row 1")
}

func TestSchemaErrorMessage(t *testing.T) {
	err := &SchemaError{Position: 2, Cell: "name", Reason: "want \"<name> <TYPE>\""}
	assert.Equal(t, `mockrows: invalid header: column 2 "name": want "<name> <TYPE>"`, err.Error())
}
