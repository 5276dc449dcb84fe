package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"wsa-guard/network"
	"wsa-guard/probe/internal/journal"
)

// Recorder persists probe outcomes. *journal.Repository satisfies it.
type Recorder interface {
	Create(p *journal.Probe) error
}

// Result is the outcome of one probe. Err is nil when startup succeeded.
type Result struct {
	RunID     string
	Major     uint8
	Minor     uint8
	Data      network.Data
	Err       *network.Error
	StartedAt time.Time
}

func (r Result) OK() bool { return r.Err == nil }

// Prober runs a guarded startup/cleanup cycle and records what happened.
// A nil Foreign uses the platform calls; a nil Recorder skips journaling.
type Prober struct {
	Foreign  network.Foreign
	Logger   zerolog.Logger
	Recorder Recorder
}

// Run requests version major.minor. Cleanup has already run when it returns.
func (p *Prober) Run(major, minor uint8) Result {
	res := Result{
		RunID:     uuid.NewString(),
		Major:     major,
		Minor:     minor,
		StartedAt: time.Now(),
	}
	log := p.Logger.With().Str("run", res.RunID).Logger()

	opts := []network.Option{network.WithLogger(log)}
	if p.Foreign != nil {
		opts = append(opts, network.WithForeign(p.Foreign))
	}

	err := network.NewInitializer(opts...).Version(major, minor).Run(func(d network.Data) error {
		res.Data = d
		return nil
	})
	// The callback never fails, so any error is the classified startup failure.
	var nerr *network.Error
	if errors.As(err, &nerr) {
		res.Err = nerr
		log.Warn().Str("kind", nerr.Kind.String()).Int32("status", nerr.Code).Msg("startup failed")
	} else {
		log.Info().Uint16("negotiated", res.Data.Version).Msg("startup succeeded")
	}

	if p.Recorder != nil {
		if rerr := p.Recorder.Create(toProbe(res)); rerr != nil {
			log.Error().Err(rerr).Msg("cannot record probe")
		}
	}
	return res
}

func toProbe(r Result) *journal.Probe {
	p := &journal.Probe{
		RunID:          r.RunID,
		RequestedMajor: r.Major,
		RequestedMinor: r.Minor,
		OK:             r.OK(),
		CreatedAt:      r.StartedAt,
	}
	if r.Err != nil {
		p.Kind = r.Err.Kind.String()
		p.Status = r.Err.Code
		return p
	}
	p.Negotiated = r.Data.Version
	p.HighVersion = r.Data.HighVersion
	p.Description = r.Data.DescriptionString()
	p.SystemStatus = r.Data.SystemStatusString()
	return p
}
