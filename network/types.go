package network

import "bytes"

const (
	descriptionLen = 256
	sysStatusLen   = 128
	defaultMajor   = 2
	defaultMinor   = 2
)

// DefaultVersion is the Winsock version requested when none is configured (2.2).
var DefaultVersion = MakeVersion(defaultMajor, defaultMinor)

// MakeVersion packs a version the way MAKEWORD does: major in the low byte,
// minor in the high byte.
func MakeVersion(major, minor uint8) uint16 {
	return uint16(major) | uint16(minor)<<8
}

// SplitVersion is the inverse of MakeVersion.
func SplitVersion(v uint16) (major, minor uint8) {
	return uint8(v), uint8(v >> 8)
}

// Data is the negotiation record WSAStartup fills in. It mirrors the fields of
// WSADATA that Winsock 2 still populates.
type Data struct {
	Version      uint16
	HighVersion  uint16
	MaxSockets   uint16
	MaxUdpDg     uint16
	Description  [descriptionLen + 1]byte
	SystemStatus [sysStatusLen + 1]byte
}

// DescriptionString returns Description up to the first NUL.
func (d Data) DescriptionString() string { return cString(d.Description[:]) }

// SystemStatusString returns SystemStatus up to the first NUL.
func (d Data) SystemStatusString() string { return cString(d.SystemStatus[:]) }

func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// Foreign is the platform boundary: the pair of calls that bring the socket
// subsystem up and down. Startup returns 0 on success or a Winsock status code.
// Cleanup's status is reported but never acted on.
type Foreign interface {
	Startup(version uint16, data *Data) int32
	Cleanup() int32
}
