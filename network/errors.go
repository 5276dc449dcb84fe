package network

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed WSAStartup status code.
type ErrorKind int

const (
	UnknownError ErrorKind = iota
	SystemNotReady
	VersionNotSupported
	OperationInProgress
	TasksLimitReached
	InvalidData
)

// Winsock status codes WSAStartup is documented to return.
const (
	WSASYSNOTREADY     int32 = 10091
	WSAVERNOTSUPPORTED int32 = 10092
	WSAEINPROGRESS     int32 = 10036
	WSAEPROCLIM        int32 = 10067
	WSAEFAULT          int32 = 10014
)

const (
	errCodesRef = "https://docs.microsoft.com/en-us/windows/win32/winsock/windows-sockets-error-codes-2"
	startupRef  = "https://docs.microsoft.com/en-us/windows/win32/api/winsock/nf-winsock-wsastartup"
)

var (
	// ErrInitializerUsed is the panic value when an Initializer is touched after Init or Run.
	ErrInitializerUsed = errors.New("network: initializer already used")
	// ErrHandleConsumed is the panic value when a WSA handle is cleaned up or guarded twice.
	ErrHandleConsumed = errors.New("network: WSA handle already consumed")
	// ErrNotInitialized is the panic value when a zero Initializer, WSA or Raii is used.
	// Only NewInitializer and a successful Init produce usable values.
	ErrNotInitialized = errors.New("network: value not created by NewInitializer")
)

// Classify maps a WSAStartup status code to its ErrorKind. Codes outside the
// documented set map to UnknownError.
func Classify(code int32) ErrorKind {
	switch code {
	case WSASYSNOTREADY:
		return SystemNotReady
	case WSAVERNOTSUPPORTED:
		return VersionNotSupported
	case WSAEINPROGRESS:
		return OperationInProgress
	case WSAEPROCLIM:
		return TasksLimitReached
	case WSAEFAULT:
		return InvalidData
	default:
		return UnknownError
	}
}

// Describe returns the explanation for k followed by a pointer to the
// Winsock documentation.
func Describe(k ErrorKind) string {
	var text, ref string
	switch k {
	case SystemNotReady:
		text = "The underlying network subsystem is not ready for network communication."
		ref = errCodesRef + "/#WSASYSNOTREADY"
	case VersionNotSupported:
		text = "The version of Windows Sockets support requested is not provided by this particular Windows Sockets implementation."
		ref = errCodesRef + "/#WSAVERNOTSUPPORTED"
	case OperationInProgress:
		text = "A blocking Windows Sockets 1.1 operation is in progress."
		ref = errCodesRef + "/#WSAEINPROGRESS"
	case TasksLimitReached:
		text = "A limit on the number of tasks supported by the Windows Sockets implementation has been reached."
		ref = errCodesRef + "/#WSAEPROCLIM"
	case InvalidData:
		text = "The lpWSAData parameter is not a valid pointer."
		ref = errCodesRef + "/#WSAEFAULT"
	default:
		text = "Some unknown error has occurred."
		ref = startupRef
	}
	return fmt.Sprintf("%s\nsee %q for more information", text, ref)
}

func (k ErrorKind) Error() string { return Describe(k) }

func (k ErrorKind) String() string {
	switch k {
	case SystemNotReady:
		return "SystemNotReady"
	case VersionNotSupported:
		return "VersionNotSupported"
	case OperationInProgress:
		return "OperationInProgress"
	case TasksLimitReached:
		return "TasksLimitReached"
	case InvalidData:
		return "InvalidData"
	default:
		return "UnknownError"
	}
}

// Error is a failed WSAStartup call: the classified kind plus the raw status.
type Error struct {
	Kind ErrorKind
	Code int32
}

func newError(code int32) *Error {
	return &Error{Kind: Classify(code), Code: code}
}

func (e *Error) Error() string { return Describe(e.Kind) }

func (e *Error) Unwrap() error { return e.Kind }

// KindOf returns the ErrorKind carried by err, or UnknownError if err holds none.
func KindOf(err error) ErrorKind {
	var kind ErrorKind
	if errors.As(err, &kind) {
		return kind
	}
	return UnknownError
}
