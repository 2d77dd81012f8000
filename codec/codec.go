package codec

import (
	"io"

	csvcodec "github.com/go-data-exporter/mockrows/codec/csv"
	jsoncodec "github.com/go-data-exporter/mockrows/codec/json"
	xmlcodec "github.com/go-data-exporter/mockrows/codec/xml"
	"github.com/go-data-exporter/mockrows/scanner"
)

type Codec interface {
	Write(rows scanner.Rows, writer io.Writer) error
}

func JSON(opts ...jsoncodec.Option) Codec {
	return jsoncodec.New(opts...)
}

func CSV(opts ...csvcodec.Option) Codec {
	return csvcodec.New(opts...)
}

func XML(opts ...xmlcodec.Option) Codec {
	return xmlcodec.New(opts...)
}

// Fixture returns a CSV codec that writes a typed header, producing files
// that mockrows.Load reads back.
func Fixture(opts ...csvcodec.Option) Codec {
	return csvcodec.New(append([]csvcodec.Option{csvcodec.WithTypedHeader(true)}, opts...)...)
}
