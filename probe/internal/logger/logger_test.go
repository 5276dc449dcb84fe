package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestInit_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe.log")
	require.NoError(t, Init(path, "error"))
	t.Cleanup(func() { L = zerolog.Nop() })

	Info("hidden")
	Errorf("startup returned %d", 10091)
	Error("journal: ", "locked")

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(out), "hidden")
	require.Contains(t, string(out), "startup returned 10091")
	require.Contains(t, string(out), "journal: locked")
}

func TestInit_DefaultLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe.log")
	require.NoError(t, Init(path, "bogus"))
	t.Cleanup(func() { L = zerolog.Nop() })
	require.Equal(t, zerolog.InfoLevel, L.GetLevel())
}

func TestInit_BadPath(t *testing.T) {
	err := Init(filepath.Join(t.TempDir(), "missing", "probe.log"), "info")
	require.Error(t, err)
}
