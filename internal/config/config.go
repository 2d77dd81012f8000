// Package config loads the command line tool settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultEnvFile is read when present and no other file is named.
const DefaultEnvFile = ".env"

// Config holds the tool settings.
type Config struct {
	Delimiter string `env:"MOCKROWS_DELIMITER" envDefault:","`
	LogLevel  string `env:"MOCKROWS_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"MOCKROWS_LOG_FORMAT" envDefault:"text"` // text|json
	Capture   Capture
}

// Capture configures the connection used to record new fixtures.
type Capture struct {
	Driver  string        `env:"MOCKROWS_CAPTURE_DRIVER" envDefault:"postgres"` // postgres|mysql|hive|mockrows
	DSN     string        `env:"MOCKROWS_CAPTURE_DSN"`
	Timeout time.Duration `env:"MOCKROWS_CAPTURE_TIMEOUT" envDefault:"5m"`
	Hive    Hive
}

// Hive configures gohive connections.
type Hive struct {
	Host     string `env:"MOCKROWS_HIVE_HOST" envDefault:"localhost"`
	Port     int    `env:"MOCKROWS_HIVE_PORT" envDefault:"10000"`
	Auth     string `env:"MOCKROWS_HIVE_AUTH" envDefault:"NONE"`
	Username string `env:"MOCKROWS_HIVE_USERNAME"`
	Password string `env:"MOCKROWS_HIVE_PASSWORD"`
	Database string `env:"MOCKROWS_HIVE_DATABASE" envDefault:"default"`
}

// Load reads envfile into the process environment without overriding
// variables that are already set, then parses Config. An empty envfile
// means DefaultEnvFile if it exists.
func Load(envfile string) (Config, error) {
	if envfile == "" {
		if _, err := os.Stat(DefaultEnvFile); err == nil {
			envfile = DefaultEnvFile
		}
	}
	if envfile != "" {
		if err := godotenv.Load(envfile); err != nil {
			return Config{}, errors.Wrapf(err, "read %s", envfile)
		}
	}
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse environment")
	}
	return cfg, nil
}

// DelimiterRune returns Delimiter as a single rune. "\t" and "tab" both
// select a tab.
func (c Config) DelimiterRune() (rune, error) {
	d := c.Delimiter
	switch strings.ToLower(d) {
	case `\t`, "tab":
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(d)
	if size == 0 || size != len(d) {
		return 0, errors.Errorf("delimiter %q must be a single character", d)
	}
	return r, nil
}

// Logger builds a logrus logger from LogLevel and LogFormat.
func (c Config) Logger(out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)
	if strings.EqualFold(c.LogFormat, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return log, nil
}
