//go:build windows

package network

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"
)

type winsock struct{}

func platformForeign() Foreign { return winsock{} }

func (winsock) Startup(version uint16, data *Data) int32 {
	if data == nil {
		return WSAEFAULT
	}
	var wsa windows.WSAData
	toWSAData(data, &wsa)
	err := windows.WSAStartup(uint32(version), &wsa)
	fromWSAData(&wsa, data)
	return statusOf(err)
}

func (winsock) Cleanup() int32 {
	return statusOf(windows.WSACleanup())
}

func toWSAData(src *Data, dst *windows.WSAData) {
	dst.Version = src.Version
	dst.HighVersion = src.HighVersion
	dst.MaxSockets = src.MaxSockets
	dst.MaxUdpDg = src.MaxUdpDg
	copy(dst.Description[:], src.Description[:])
	copy(dst.SystemStatus[:], src.SystemStatus[:])
}

func fromWSAData(src *windows.WSAData, dst *Data) {
	dst.Version = src.Version
	dst.HighVersion = src.HighVersion
	dst.MaxSockets = src.MaxSockets
	dst.MaxUdpDg = src.MaxUdpDg
	copy(dst.Description[:], src.Description[:])
	copy(dst.SystemStatus[:], src.SystemStatus[:])
}

func statusOf(err error) int32 {
	if err == nil {
		return 0
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int32(errno)
	}
	return -1
}
