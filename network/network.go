// Package network guards the process-wide socket subsystem handshake
// (WSAStartup/WSACleanup on Windows).
//
// An Initializer performs exactly one startup call. On success it yields a
// WSA handle that must be consumed exactly once, either by Clean or by Raii,
// and every consumption leads to exactly one cleanup call. Reusing an
// Initializer or consuming a handle twice panics.
//
// Most callers should prefer Run or With, which clean up on every exit path.
package network

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

type options struct {
	foreign Foreign
	log     zerolog.Logger
}

// Option configures an Initializer.
type Option func(*options)

// WithForeign replaces the platform startup/cleanup calls.
func WithForeign(f Foreign) Option {
	return func(o *options) { o.foreign = f }
}

// WithLogger sets the logger used for startup and cleanup events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// Initializer configures and performs WSAStartup. It is single use.
type Initializer struct {
	version uint16
	data    Data
	opts    options
	used    bool
}

// NewInitializer returns an Initializer requesting DefaultVersion with a
// zeroed negotiation record.
func NewInitializer(opts ...Option) *Initializer {
	o := options{foreign: platformForeign(), log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.foreign == nil {
		o.foreign = platformForeign()
	}
	return &Initializer{version: DefaultVersion, opts: o}
}

// Version sets the requested version. Nothing is validated here; an
// unsupported version surfaces as VersionNotSupported from Init.
func (i *Initializer) Version(major, minor uint8) *Initializer {
	i.mustBeFresh()
	i.version = MakeVersion(major, minor)
	return i
}

// Data replaces the record handed to the startup call.
func (i *Initializer) Data(d Data) *Initializer {
	i.mustBeFresh()
	i.data = d
	return i
}

func (i *Initializer) mustBeFresh() {
	if i.opts.foreign == nil {
		panic(ErrNotInitialized)
	}
	if i.used {
		panic(ErrInitializerUsed)
	}
}

// Init calls WSAStartup once. A non-zero status is returned as *Error.
// The Initializer cannot be used afterwards.
func (i *Initializer) Init() (*WSA, error) {
	i.mustBeFresh()
	i.used = true

	major, minor := SplitVersion(i.version)
	log := i.opts.log.With().Uint8("major", major).Uint8("minor", minor).Logger()

	status := i.opts.foreign.Startup(i.version, &i.data)
	if status != 0 {
		err := newError(status)
		log.Debug().Int32("status", status).Str("kind", err.Kind.String()).Msg("wsa startup failed")
		return nil, err
	}
	log.Debug().Uint16("negotiated", i.data.Version).Msg("wsa started")
	return &WSA{data: i.data, foreign: i.opts.foreign, log: i.opts.log}, nil
}

// Run initializes, calls fn with the negotiated record and cleans up when fn
// returns or panics. The startup error is returned if Init fails, otherwise
// fn's error.
func (i *Initializer) Run(fn func(Data) error) error {
	wsa, err := i.Init()
	if err != nil {
		return err
	}
	guard := wsa.Raii()
	defer guard.Close()
	return fn(wsa.Data())
}

// WSA proves that WSAStartup succeeded. Consume it with Clean or Raii.
type WSA struct {
	data     Data
	foreign  Foreign
	log      zerolog.Logger
	consumed atomic.Bool
}

// Data returns the record negotiated by the startup call.
func (w *WSA) Data() Data { return w.data }

// Raii consumes the handle and returns a guard whose Close runs WSACleanup.
//
//	guard := wsa.Raii()
//	defer guard.Close()
func (w *WSA) Raii() *Raii {
	if w.foreign == nil {
		panic(ErrNotInitialized)
	}
	if !w.consumed.CompareAndSwap(false, true) {
		panic(ErrHandleConsumed)
	}
	return &Raii{foreign: w.foreign, log: w.log}
}

// Clean consumes the handle and runs WSACleanup immediately.
func (w *WSA) Clean() {
	w.Raii().Close()
}

// Raii runs WSACleanup on Close.
type Raii struct {
	once    sync.Once
	foreign Foreign
	log     zerolog.Logger
}

// Close runs WSACleanup the first time it is called. A failing cleanup is
// logged and otherwise ignored.
func (r *Raii) Close() {
	if r.foreign == nil {
		panic(ErrNotInitialized)
	}
	r.once.Do(func() {
		if status := r.foreign.Cleanup(); status != 0 {
			r.log.Warn().Int32("status", status).Msg("wsa cleanup failed")
			return
		}
		r.log.Debug().Msg("wsa cleaned up")
	})
}

// TryStartup initializes with the default version and a zeroed record.
func TryStartup(opts ...Option) (*WSA, error) {
	return NewInitializer(opts...).Init()
}

// Startup is TryStartup for callers that cannot continue without sockets.
// It panics with the *Error if startup fails.
func Startup(opts ...Option) *WSA {
	wsa, err := TryStartup(opts...)
	if err != nil {
		panic(err)
	}
	return wsa
}

// With runs fn between a default startup and its cleanup.
func With(fn func(Data) error, opts ...Option) error {
	return NewInitializer(opts...).Run(fn)
}
