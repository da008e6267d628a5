package client

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/NachoLave/SushiLibre/internal/models"
	"github.com/rs/zerolog"
)

const (
	// DefaultPollInterval is how often the room is refreshed
	DefaultPollInterval = 1500 * time.Millisecond

	// DefaultJitter spreads poll cycles by ±20% of the interval
	DefaultJitter = 0.2
)

// PollerConfig holds configuration for the poll loop
type PollerConfig struct {
	// Session to refresh each cycle
	Session *Session

	// Interval between cycles; defaults to DefaultPollInterval
	Interval time.Duration

	// Jitter as a fraction of the interval; defaults to DefaultJitter
	Jitter float64

	// Logger for swallowed per-cycle failures
	Logger zerolog.Logger

	// OnUpdate receives the merged snapshot after every successful cycle
	OnUpdate func(*models.Room)
}

// Poller drives the pull loop: one cycle in flight at a time, each cycle
// awaited before the next is scheduled, with jitter so many clients on the
// same interval do not align their requests.
type Poller struct {
	session  *Session
	interval time.Duration
	jitter   float64
	log      zerolog.Logger
	onUpdate func(*models.Room)
}

// NewPoller creates a new poller
func NewPoller(cfg *PollerConfig) (*Poller, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	jitter := cfg.Jitter
	if jitter <= 0 || jitter >= 1 {
		jitter = DefaultJitter
	}

	return &Poller{
		session:  cfg.Session,
		interval: interval,
		jitter:   jitter,
		log:      cfg.Logger,
		onUpdate: cfg.OnUpdate,
	}, nil
}

// Run polls until ctx is cancelled. The initial fetch failure is returned,
// since a room that never loaded is a hard error; later failures are logged
// and the next cycle retries.
func (p *Poller) Run(ctx context.Context) error {
	room, err := p.session.Refresh(ctx)
	if err != nil {
		return err
	}
	p.notify(room)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.nextDelay()):
		}

		room, err := p.session.Refresh(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.log.Warn().Err(err).Str("room", p.session.RoomID()).Msg("poll cycle failed")
			continue
		}

		p.notify(room)
	}
}

func (p *Poller) notify(room *models.Room) {
	if p.onUpdate != nil {
		p.onUpdate(room)
	}
}

// nextDelay returns the interval shifted by a random amount inside the jitter band
func (p *Poller) nextDelay() time.Duration {
	band := float64(p.interval) * p.jitter
	offset := (rand.Float64()*2 - 1) * band
	return p.interval + time.Duration(offset)
}
