//go:build !windows

package network

// Sockets need no process-wide startup outside Windows, so both calls succeed
// without side effects. Startup still fills the record so callers see the
// same shape on every platform.
type noopSockets struct{}

func platformForeign() Foreign { return noopSockets{} }

func (noopSockets) Startup(version uint16, data *Data) int32 {
	if data == nil {
		return WSAEFAULT
	}
	data.Version = version
	data.HighVersion = version
	copy(data.Description[:], "BSD sockets")
	copy(data.SystemStatus[:], "Running")
	return 0
}

func (noopSockets) Cleanup() int32 { return 0 }
