package scanner_test

import (
	"database/sql"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-data-exporter/mockrows/loader"
	"github.com/go-data-exporter/mockrows/resultset"
	"github.com/go-data-exporter/mockrows/scanner"
	"github.com/go-data-exporter/mockrows/sqldriver"
)

func TestFromData(t *testing.T) {
	s := scanner.FromNamedData([]string{"id"}, [][]any{
		{1, nil},
		{2, "b"},
	})
	cols, err := s.Columns()
	require.NoError(t, err)
	require.Len(t, cols, 2)
	assert.Equal(t, "id", cols[0].Name())
	assert.Equal(t, "column_1", cols[1].Name())
	assert.Equal(t, "int", cols[0].DatabaseTypeName())
	assert.Equal(t, "nil", cols[1].DatabaseTypeName())
	nullable, ok := cols[1].Nullable()
	assert.True(t, ok)
	assert.True(t, nullable)

	_, err = s.ScanRow()
	assert.Error(t, err, "scan before Next")

	var got [][]any
	for s.Next() {
		row, err := s.ScanRow()
		require.NoError(t, err)
		got = append(got, row)
	}
	assert.Equal(t, [][]any{{1, nil}, {2, "b"}}, got)
	assert.False(t, s.Next())

	_, err = s.ScanRow()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "go-slice", s.Driver())
}

func TestFromDataRaggedRow(t *testing.T) {
	s := scanner.FromData([][]any{{1, 2}, {3}})
	require.True(t, s.Next())
	_, err := s.ScanRow()
	require.NoError(t, err)
	require.True(t, s.Next())
	_, err = s.ScanRow()
	assert.Error(t, err)
}

func TestFromDataEmpty(t *testing.T) {
	s := scanner.FromData(nil)
	cols, err := s.Columns()
	require.NoError(t, err)
	assert.Empty(t, cols)
	assert.False(t, s.Next())
}

const fixture = "id BIGINT,score REAL,ok BIT,name NVARCHAR,raw LONGVARBINARY,born DATE\n" +
	"1,0.5,true,ann,x,2001-02-03\n" +
	"two,,false,,,\n"

func fromFixture(t *testing.T) scanner.Rows {
	t.Helper()
	table, err := loader.Read(strings.NewReader(fixture), 0)
	require.NoError(t, err)
	return scanner.FromResultSet(resultset.New(table))
}

func TestFromResultSet(t *testing.T) {
	s := fromFixture(t)
	assert.Equal(t, scanner.DriverFixture, s.Driver())

	cols, err := s.Columns()
	require.NoError(t, err)
	var (
		names     []string
		types     []string
		scanTypes []reflect.Type
	)
	for _, c := range cols {
		names = append(names, c.Name())
		types = append(types, c.DatabaseTypeName())
		scanTypes = append(scanTypes, c.ScanType())
	}
	assert.Equal(t, []string{"id", "score", "ok", "name", "raw", "born"}, names)
	assert.Equal(t, []string{"BIGINT", "REAL", "BIT", "NVARCHAR", "LONGVARBINARY", "DATE"}, types)
	assert.Equal(t, []reflect.Type{
		reflect.TypeOf(int64(0)),
		reflect.TypeOf(float64(0)),
		reflect.TypeOf(false),
		reflect.TypeOf(""),
		reflect.TypeOf([]byte(nil)),
		reflect.TypeOf(""),
	}, scanTypes)

	nullable, _ := cols[0].Nullable()
	assert.True(t, nullable)
	nullable, _ = cols[3].Nullable()
	assert.False(t, nullable)

	require.True(t, s.Next())
	row, err := s.ScanRow()
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), 0.5, true, "ann", []byte("x"), "2001-02-03"}, row)

	require.True(t, s.Next())
	row, err = s.ScanRow()
	require.NoError(t, err)
	assert.Equal(t, []any{nil, nil, false, "", []byte{}, ""}, row)

	assert.False(t, s.Next())
	_, err = s.ScanRow()
	assert.ErrorIs(t, err, resultset.ErrNoCursorPosition)
}

func TestFromSQL(t *testing.T) {
	table, err := loader.Read(strings.NewReader(fixture), 0)
	require.NoError(t, err)
	db := sql.OpenDB(sqldriver.NewConnector(table))
	defer db.Close()

	rows, err := db.Query("SELECT *")
	require.NoError(t, err)
	defer rows.Close()

	s := scanner.FromSQL(rows, sqldriver.DriverName)
	assert.Equal(t, "mockrows", s.Driver())
	cols, err := s.Columns()
	require.NoError(t, err)
	require.Len(t, cols, 6)
	assert.Equal(t, "score", cols[1].Name())
	assert.Equal(t, "REAL", cols[1].DatabaseTypeName())

	var ids []any
	for s.Next() {
		row, err := s.ScanRow()
		require.NoError(t, err)
		ids = append(ids, row[0])
	}
	require.NoError(t, s.Err())
	assert.Equal(t, []any{int64(1), nil}, ids)
}
