package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-data-exporter/mockrows"
	"github.com/go-data-exporter/mockrows/internal/config"
	"github.com/go-data-exporter/mockrows/resultset"
)

// app carries the state shared by subcommands once the root command has
// resolved configuration.
type app struct {
	envFile   string
	delimiter string
	cfg       config.Config
	log       *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "mockrows",
		Short: "Work with typed delimited fixture files",
		Long: `mockrows reads fixture files whose header cells carry a column name
and a type, for example "id INTEGER,label VARCHAR".

Examples:
  mockrows inspect testdata/users.csv
  mockrows export testdata/users.csv --format json
  mockrows capture --driver postgres --dsn "$DSN" --query "SELECT * FROM users" --out users.csv`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", "", "Read settings from this .env file (default .env when present)")
	cmd.PersistentFlags().StringVarP(&a.delimiter, "delimiter", "d", "", "Cell delimiter (overrides MOCKROWS_DELIMITER)")

	cmd.AddCommand(newInspectCmd(a))
	cmd.AddCommand(newExportCmd(a))
	cmd.AddCommand(newCaptureCmd(a))
	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}
	if a.delimiter != "" {
		cfg.Delimiter = a.delimiter
	}
	if _, err := cfg.DelimiterRune(); err != nil {
		return err
	}
	log, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	return nil
}

// load opens a fixture with the configured delimiter.
func (a *app) load(path string) (*resultset.ResultSet, error) {
	delim, err := a.cfg.DelimiterRune()
	if err != nil {
		return nil, err
	}
	a.log.WithFields(logrus.Fields{"path": path, "delimiter": string(delim)}).Debug("loading fixture")
	rs, err := mockrows.Load(mockrows.WithPath(path), mockrows.WithDelimiter(delim))
	if err != nil {
		a.log.WithError(err).WithField("path", path).Error("load failed")
		return nil, err
	}
	return rs, nil
}
