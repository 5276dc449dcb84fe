package journal

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Repository {
	t.Helper()
	gdb, err := Open(Config{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "nested", "probe.db")})
	require.NoError(t, err)
	repo := NewRepository(gdb)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestRepository_CreateAndLatest(t *testing.T) {
	repo := openTemp(t)

	for i := 0; i < 3; i++ {
		p := &Probe{RunID: fmt.Sprintf("run-%d", i), RequestedMajor: 2, RequestedMinor: uint8(i), OK: i != 1}
		require.NoError(t, repo.Create(p))
		require.NotZero(t, p.ID)
	}

	probes, err := repo.Latest(2)
	require.NoError(t, err)
	require.Len(t, probes, 2)
	require.Equal(t, "run-2", probes[0].RunID)
	require.Equal(t, "run-1", probes[1].RunID)
	require.False(t, probes[1].OK)
}

func TestRepository_LatestNonPositiveLimit(t *testing.T) {
	repo := openTemp(t)
	require.NoError(t, repo.Create(&Probe{RunID: "a"}))
	require.NoError(t, repo.Create(&Probe{RunID: "b"}))

	probes, err := repo.Latest(0)
	require.NoError(t, err)
	require.Len(t, probes, 1)
	require.Equal(t, "b", probes[0].RunID)
}

func TestRepository_DuplicateRunID(t *testing.T) {
	repo := openTemp(t)
	require.NoError(t, repo.Create(&Probe{RunID: "same"}))
	require.Error(t, repo.Create(&Probe{RunID: "same"}))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(Config{Driver: "postgres"})
	require.ErrorContains(t, err, "unsupported journal driver")
}
