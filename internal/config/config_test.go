package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears key for the test and again afterwards, since godotenv
// sets variables outside of t.Setenv.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() { os.Unsetenv(key) })
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ",", cfg.Delimiter)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "postgres", cfg.Capture.Driver)
	assert.Equal(t, 5*time.Minute, cfg.Capture.Timeout)
	assert.Equal(t, "localhost", cfg.Capture.Hive.Host)
	assert.Equal(t, 10000, cfg.Capture.Hive.Port)
	assert.Equal(t, "NONE", cfg.Capture.Hive.Auth)
}

func TestLoadEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MOCKROWS_DELIMITER", ";")
	t.Setenv("MOCKROWS_CAPTURE_DRIVER", "mysql")
	t.Setenv("MOCKROWS_CAPTURE_TIMEOUT", "30s")
	t.Setenv("MOCKROWS_HIVE_PORT", "10001")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ";", cfg.Delimiter)
	assert.Equal(t, "mysql", cfg.Capture.Driver)
	assert.Equal(t, 30*time.Second, cfg.Capture.Timeout)
	assert.Equal(t, 10001, cfg.Capture.Hive.Port)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	unsetenv(t, "MOCKROWS_HIVE_DATABASE")
	unsetenv(t, "MOCKROWS_HIVE_USERNAME")
	t.Setenv("MOCKROWS_LOG_LEVEL", "warn")

	content := "MOCKROWS_HIVE_DATABASE=fixtures\nMOCKROWS_HIVE_USERNAME=tester\nMOCKROWS_LOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultEnvFile), []byte(content), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "fixtures", cfg.Capture.Hive.Database)
	assert.Equal(t, "tester", cfg.Capture.Hive.Username)
	assert.Equal(t, "warn", cfg.LogLevel, "environment wins over the env file")
}

func TestLoadMissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoadInvalidValue(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MOCKROWS_HIVE_PORT", "http")
	_, err := Load("")
	assert.Error(t, err)
}

func TestDelimiterRune(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{",", ',', false},
		{";", ';', false},
		{"|", '|', false},
		{`\t`, '\t', false},
		{"TAB", '\t', false},
		{"\t", '\t', false},
		{"§", '§', false},
		{"", 0, true},
		{",,", 0, true},
	}
	for _, tt := range tests {
		got, err := Config{Delimiter: tt.in}.DelimiterRune()
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := Config{LogLevel: "debug", LogFormat: "json"}.Logger(&buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	log.WithField("path", "users.csv").Debug("loading fixture")
	assert.Contains(t, buf.String(), `"path":"users.csv"`)

	buf.Reset()
	log, err = Config{LogLevel: "error"}.Logger(&buf)
	require.NoError(t, err)
	log.Info("hidden")
	assert.Empty(t, buf.String())

	_, err = Config{LogLevel: "loud"}.Logger(&buf)
	assert.Error(t, err)
}
