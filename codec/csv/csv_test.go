package csvcodec

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-data-exporter/mockrows/loader"
	"github.com/go-data-exporter/mockrows/resultset"
	"github.com/go-data-exporter/mockrows/scanner"
	"github.com/go-data-exporter/mockrows/sqltype"
	"github.com/go-data-exporter/mockrows/tostring"
)

func fixtureRows(t *testing.T, input string) scanner.Rows {
	t.Helper()
	table, err := loader.Read(strings.NewReader(input), 0)
	require.NoError(t, err)
	return scanner.FromResultSet(resultset.New(table))
}

func TestWriteTypedHeaderRoundTrip(t *testing.T) {
	input := "id INTEGER,flag BOOLEAN,label VARCHAR,raw BINARY,born DATE\n" +
		"7,true,\"a, b\",xyz,2001-02-03\n" +
		"8,false,,,\n"
	var buf bytes.Buffer
	require.NoError(t, New(WithTypedHeader(true)).Write(fixtureRows(t, input), &buf))
	assert.Equal(t, input, buf.String())

	table, err := loader.Read(&buf, 0)
	require.NoError(t, err)
	assert.Equal(t, []loader.Column{
		{Name: "id", Type: sqltype.Integer, Position: 1},
		{Name: "flag", Type: sqltype.Boolean, Position: 2},
		{Name: "label", Type: sqltype.VarChar, Position: 3},
		{Name: "raw", Type: sqltype.Binary, Position: 4},
		{Name: "born", Type: sqltype.Date, Position: 5},
	}, table.Columns)
}

func TestWriteParseMissBecomesNULL(t *testing.T) {
	var buf bytes.Buffer
	c := New(WithTypedHeader(true), WithCustomNULL(`\N`))
	require.NoError(t, c.Write(fixtureRows(t, "n INTEGER\nabc\n5\n"), &buf))
	assert.Equal(t, "n INTEGER\n\\N\n5\n", buf.String())
}

func TestTypedHeaderFromSlice(t *testing.T) {
	s := scanner.FromNamedData([]string{"user id", "score", "payload", "when"}, [][]any{
		{int64(1), 2.5, []byte("p"), time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
	})
	var buf bytes.Buffer
	require.NoError(t, New(WithTypedHeader(true), WithCustomDelimiter(';')).Write(s, &buf))
	assert.Equal(t, "user_id BIGINT;score DOUBLE;payload VARBINARY;when TIMESTAMP\n"+
		"1;2.5;p;2024-01-02T00:00:00Z\n", buf.String())
}

func TestWriteOptions(t *testing.T) {
	rows := func() scanner.Rows {
		return scanner.FromData([][]any{{1, "a"}, {2, "b"}, {3, "c"}})
	}

	t.Run("plain header", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New(WithLimit(1)).Write(rows(), &buf))
		assert.Equal(t, "column_0,column_1\n1,a\n", buf.String())
	})

	t.Run("no header crlf", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New(WithHeader(false), WithCRLF(true), WithLimit(2)).Write(rows(), &buf))
		assert.Equal(t, "1,a\r\n2,b\r\n", buf.String())
	})

	t.Run("custom header", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New(WithCustomHeader([]string{"n", "s"}), WithLimit(0)).Write(rows(), &buf))
		assert.Equal(t, "n,s\n", buf.String())
	})

	t.Run("custom header length", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, New(WithCustomHeader([]string{"n"})).Write(rows(), &buf))
	})

	t.Run("pre-processor", func(t *testing.T) {
		var buf bytes.Buffer
		drop := func(row []string) ([]string, bool) {
			return row, row[1] != "b"
		}
		require.NoError(t, New(WithHeader(false), WithPreProcessorFunc(drop)).Write(rows(), &buf))
		assert.Equal(t, "1,a\n3,c\n", buf.String())
	})

	t.Run("custom type", func(t *testing.T) {
		var buf bytes.Buffer
		quote := func(v string, m scanner.Metadata) tostring.String {
			return tostring.String{String: strings.Repeat(v, m.RowID)}
		}
		require.NoError(t, New(WithHeader(false), WithCustomType(quote)).Write(rows(), &buf))
		assert.Equal(t, "1,a\n2,bb\n3,ccc\n", buf.String())
	})
}
