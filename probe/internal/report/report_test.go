package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wsa-guard/network"
	"wsa-guard/probe/internal/journal"
	"wsa-guard/probe/internal/service"
)

func TestRender_OK(t *testing.T) {
	var d network.Data
	d.Version = network.MakeVersion(2, 2)
	d.HighVersion = network.MakeVersion(2, 2)
	copy(d.Description[:], "WinSock 2.0")
	copy(d.SystemStatus[:], "Running")

	out := Render(service.Result{RunID: "run-1", Major: 2, Minor: 2, Data: d})
	require.Contains(t, out, "wsa startup ok")
	require.Contains(t, out, "run-1")
	require.Contains(t, out, "2.2")
	require.Contains(t, out, "WinSock 2.0")
	require.Contains(t, out, "Running")
}

func TestRender_Failure(t *testing.T) {
	out := Render(service.Result{
		RunID: "run-2",
		Major: 2,
		Minor: 2,
		Err:   &network.Error{Kind: network.SystemNotReady, Code: 10091},
	})
	require.Contains(t, out, "wsa startup failed")
	require.Contains(t, out, "SystemNotReady")
	require.Contains(t, out, "10091")
	require.Contains(t, out, "not ready for network communication")
	require.Contains(t, out, "for more information")
}

func TestHistory(t *testing.T) {
	require.Contains(t, History(nil), "no earlier probes")

	at := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	out := History([]journal.Probe{
		{RequestedMajor: 2, RequestedMinor: 2, OK: true, Negotiated: network.MakeVersion(2, 2), CreatedAt: at},
		{RequestedMajor: 9, RequestedMinor: 9, Kind: "VersionNotSupported", Status: 10092, CreatedAt: at},
	})
	require.Contains(t, out, "2026-10-15 09:30:00")
	require.Contains(t, out, "VersionNotSupported (10092)")
	require.Contains(t, out, "9.9")
}
