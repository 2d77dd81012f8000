package mockrows

import (
	"io"
	"os"

	"github.com/go-data-exporter/mockrows/codec"
	"github.com/go-data-exporter/mockrows/resultset"
	"github.com/go-data-exporter/mockrows/scanner"
)

// Exporter writes rows with a codec. It turns a loaded fixture back into
// CSV, JSON or XML, or turns live rows into a new fixture.
type Exporter struct {
	rows  scanner.Rows
	codec codec.Codec
}

func NewExporter(rows scanner.Rows, codec codec.Codec) *Exporter {
	return &Exporter{
		rows:  rows,
		codec: codec,
	}
}

// ExportResultSet exports the remaining rows of rs.
func ExportResultSet(rs *resultset.ResultSet, codec codec.Codec) *Exporter {
	return NewExporter(scanner.FromResultSet(rs), codec)
}

func (e *Exporter) Write(writer io.Writer) error {
	return e.codec.Write(e.rows, writer)
}

func (e *Exporter) WriteFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := e.Write(f); err != nil {
		return err
	}
	return f.Close()
}
