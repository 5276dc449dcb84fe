package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	require.Equal(t, Version{Major: 2, Minor: 2}, cfg.Version)
	require.Equal(t, "info", cfg.LogLevel)
	require.Empty(t, cfg.LogPath)
	require.True(t, cfg.Journal.Enabled)
	require.Equal(t, "sqlite", cfg.Journal.Driver)
	require.Equal(t, DefaultJournalPath(), cfg.Journal.Path)
	require.Equal(t, 3306, cfg.Journal.MySQL.Port)
	require.Equal(t, 5, cfg.History)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
probe:
  version:
    major: 1
    minor: 1
  log:
    level: debug
  journal:
    driver: MySQL
    mysql:
      host: db.internal
      name: probes
  history: 12
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, Version{Major: 1, Minor: 1}, cfg.Version)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "mysql", cfg.Journal.Driver)
	require.Equal(t, "db.internal", cfg.Journal.MySQL.Host)
	require.Equal(t, "probes", cfg.Journal.MySQL.Name)
	require.Equal(t, "root", cfg.Journal.MySQL.User)
	require.Equal(t, 12, cfg.History)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("WSA_PROBE_VERSION_MINOR", "0")
	t.Setenv("WSA_PROBE_JOURNAL_ENABLED", "false")

	cfg, err := Load(writeConfig(t, "probe:\n  version:\n    minor: 1\n"))
	require.NoError(t, err)
	require.Equal(t, uint8(0), cfg.Version.Minor)
	require.False(t, cfg.Journal.Enabled)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "major too large", body: "probe:\n  version:\n    major: 256\n"},
		{name: "negative minor", body: "probe:\n  version:\n    minor: -1\n"},
		{name: "unknown driver", body: "probe:\n  journal:\n    driver: postgres\n"},
		{name: "malformed yaml", body: "probe: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
		})
	}
}

func TestLoad_NegativeHistoryClamped(t *testing.T) {
	cfg, err := Load(writeConfig(t, "probe:\n  history: -3\n"))
	require.NoError(t, err)
	require.Zero(t, cfg.History)
}
