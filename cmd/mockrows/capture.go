package main

import (
	"context"
	"database/sql"

	"github.com/beltran/gohive"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-data-exporter/mockrows"
	"github.com/go-data-exporter/mockrows/codec"
	csvcodec "github.com/go-data-exporter/mockrows/codec/csv"
	"github.com/go-data-exporter/mockrows/scanner"
	_ "github.com/go-data-exporter/mockrows/sqldriver"
)

type captureOptions struct {
	driver string
	dsn    string
	query  string
	out    string
	limit  int
}

func newCaptureCmd(a *app) *cobra.Command {
	o := &captureOptions{}
	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Run a query on a live database and save the result as a fixture",
		Long: `capture runs one query and writes its rows to a fixture file with a typed
header. Column types reported by the driver are mapped onto the fixture
type catalog; types without a counterpart are written as VARCHAR.

Supported drivers: postgres, mysql, hive, mockrows.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.driver == "" {
				o.driver = a.cfg.Capture.Driver
			}
			if o.dsn == "" {
				o.dsn = a.cfg.Capture.DSN
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if a.cfg.Capture.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, a.cfg.Capture.Timeout)
				defer cancel()
			}
			return a.capture(ctx, o)
		},
	}
	cmd.Flags().StringVar(&o.driver, "driver", "", "Database driver (overrides MOCKROWS_CAPTURE_DRIVER)")
	cmd.Flags().StringVar(&o.dsn, "dsn", "", "Data source name (overrides MOCKROWS_CAPTURE_DSN, unused for hive)")
	cmd.Flags().StringVarP(&o.query, "query", "q", "", "Query to run")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "Fixture file to write")
	cmd.Flags().IntVarP(&o.limit, "limit", "l", -1, "Maximum number of rows, negative for all")
	cmd.MarkFlagRequired("query")
	cmd.MarkFlagRequired("out")
	return cmd
}

func (a *app) capture(ctx context.Context, o *captureOptions) error {
	log := a.log.WithFields(logrus.Fields{"driver": o.driver, "out": o.out})
	log.Info("capturing fixture")
	if o.driver == "hive" {
		return a.captureHive(ctx, o)
	}
	db, err := sql.Open(o.driver, o.dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	rows, err := db.QueryContext(ctx, o.query)
	if err != nil {
		log.WithError(err).Error("query failed")
		return err
	}
	defer rows.Close()
	return a.writeFixture(scanner.FromSQL(rows, o.driver), o)
}

func (a *app) captureHive(ctx context.Context, o *captureOptions) error {
	h := a.cfg.Capture.Hive
	conf := gohive.NewConnectConfiguration()
	conf.Username = h.Username
	conf.Password = h.Password
	conf.Database = h.Database
	conn, err := gohive.Connect(h.Host, h.Port, h.Auth, conf)
	if err != nil {
		return errors.Wrapf(err, "connect to hive %s:%d", h.Host, h.Port)
	}
	defer conn.Close()
	cursor := conn.Cursor()
	defer cursor.Close()
	cursor.Exec(ctx, o.query)
	if cursor.Err != nil {
		a.log.WithError(cursor.Err).Error("query failed")
		return cursor.Err
	}
	return a.writeFixture(scanner.FromHiveCursor(ctx, cursor), o)
}

func (a *app) writeFixture(rows scanner.Rows, o *captureOptions) error {
	delim, err := a.cfg.DelimiterRune()
	if err != nil {
		return err
	}
	c := codec.Fixture(
		csvcodec.WithCustomDelimiter(delim),
		csvcodec.WithLimit(o.limit),
	)
	if err := mockrows.NewExporter(rows, c).WriteFile(o.out); err != nil {
		return err
	}
	a.log.WithField("out", o.out).Info("fixture written")
	return nil
}
