package main

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-data-exporter/mockrows"
	"github.com/go-data-exporter/mockrows/codec"
	csvcodec "github.com/go-data-exporter/mockrows/codec/csv"
	jsoncodec "github.com/go-data-exporter/mockrows/codec/json"
	xmlcodec "github.com/go-data-exporter/mockrows/codec/xml"
)

type exportOptions struct {
	format      string
	out         string
	limit       int
	typedHeader bool
}

func newExportCmd(a *app) *cobra.Command {
	o := &exportOptions{}
	cmd := &cobra.Command{
		Use:   "export <fixture>",
		Short: "Convert a fixture to CSV, JSON, NDJSON or XML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.codec(a)
			if err != nil {
				return err
			}
			rs, err := a.load(args[0])
			if err != nil {
				return err
			}
			e := mockrows.ExportResultSet(rs, c)
			a.log.WithFields(logrus.Fields{"format": o.format, "out": o.out}).Debug("exporting")
			if o.out == "" {
				return e.Write(cmd.OutOrStdout())
			}
			return e.WriteFile(o.out)
		},
	}
	cmd.Flags().StringVarP(&o.format, "format", "f", "csv", "Output format: csv, json, ndjson or xml")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().IntVarP(&o.limit, "limit", "l", -1, "Maximum number of rows, negative for all")
	cmd.Flags().BoolVar(&o.typedHeader, "typed-header", true, "Keep column types in the CSV header")
	return cmd
}

func (o *exportOptions) codec(a *app) (codec.Codec, error) {
	switch o.format {
	case "csv":
		delim, err := a.cfg.DelimiterRune()
		if err != nil {
			return nil, err
		}
		return codec.CSV(
			csvcodec.WithTypedHeader(o.typedHeader),
			csvcodec.WithCustomDelimiter(delim),
			csvcodec.WithLimit(o.limit),
		), nil
	case "json":
		return codec.JSON(jsoncodec.WithLimit(o.limit)), nil
	case "ndjson":
		return codec.JSON(jsoncodec.WithNewlineDelimited(true), jsoncodec.WithLimit(o.limit)), nil
	case "xml":
		return codec.XML(xmlcodec.WithLimit(o.limit)), nil
	}
	return nil, errors.Errorf("unknown format %q", o.format)
}
