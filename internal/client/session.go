package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/NachoLave/SushiLibre/internal/common/clock"
	"github.com/NachoLave/SushiLibre/internal/models"
)

// DefaultRecencyWindow is how long a local mutation outranks polled server
// state for the owned participant after the pending value is confirmed.
const DefaultRecencyWindow = 4 * time.Second

var (
	// ErrRoomNotLoaded is returned when a mutation is issued before the first fetch
	ErrRoomNotLoaded = errors.New("room not loaded")

	// ErrNotInRoom is returned when the owned participant is missing from the snapshot
	ErrNotInRoom = errors.New("participant not in room")
)

// SessionConfig holds configuration for a reconciliation session
type SessionConfig struct {
	// Client is the API client to issue calls through
	Client *Client

	// RoomID is the room code this session tracks
	RoomID string

	// UserID is the owned participant's identifier
	UserID string

	// Clock is the time source; defaults to the system clock
	Clock clock.Clock

	// RecencyWindow overrides DefaultRecencyWindow when positive
	RecencyWindow time.Duration
}

// Session presents a single authoritative room view: the owned participant's
// taps apply instantly and survive stale poll responses, while everyone else's
// state tracks the server. Safe for concurrent use by the poller and the UI.
type Session struct {
	client *Client
	roomID string
	userID string
	clock  clock.Clock
	window time.Duration

	mu              sync.Mutex
	current         *models.Room
	pending         map[string]int
	lastLocal       map[string]time.Time
	locallyFinished map[string]bool
}

// NewSession creates a new reconciliation session
func NewSession(cfg *SessionConfig) (*Session, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Client == nil {
		return nil, errors.New("client cannot be nil")
	}

	if cfg.RoomID == "" || cfg.UserID == "" {
		return nil, errors.New("room ID and user ID cannot be empty")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	window := cfg.RecencyWindow
	if window <= 0 {
		window = DefaultRecencyWindow
	}

	return &Session{
		client:          cfg.Client,
		roomID:          models.NormalizeCode(cfg.RoomID),
		userID:          cfg.UserID,
		clock:           clk,
		window:          window,
		pending:         make(map[string]int),
		lastLocal:       make(map[string]time.Time),
		locallyFinished: make(map[string]bool),
	}, nil
}

// RoomID returns the tracked room code
func (s *Session) RoomID() string {
	return s.roomID
}

// UserID returns the owned participant's identifier
func (s *Session) UserID() string {
	return s.userID
}

// Snapshot returns a copy of the current merged room view, or nil before the
// first fetch.
func (s *Session) Snapshot() *models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Refresh fetches the room from the server and merges it into the local view.
// This is one poll cycle; the poller calls it on an interval.
func (s *Session) Refresh(ctx context.Context) (*models.Room, error) {
	server, err := s.client.GetRoom(ctx, s.roomID)
	if err != nil {
		return nil, err
	}

	return s.applyServer(server), nil
}

// IncrementPieces adds one to the owned participant's count, locally first
func (s *Session) IncrementPieces(ctx context.Context) (*models.Room, error) {
	return s.bumpPieces(ctx, 1)
}

// DecrementPieces subtracts one from the owned participant's count, floored at zero
func (s *Session) DecrementPieces(ctx context.Context) (*models.Room, error) {
	return s.bumpPieces(ctx, -1)
}

// FinishSelf marks the owned participant as done. The mark is sticky: once set
// it is never cleared for the session's life, whatever the server or a failed
// request says, so a transient failure cannot regress finished status.
func (s *Session) FinishSelf(ctx context.Context) (*models.Room, error) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return nil, ErrRoomNotLoaded
	}
	participant := s.current.Participant(s.userID)
	if participant == nil {
		s.mu.Unlock()
		return nil, ErrNotInRoom
	}

	s.locallyFinished[s.userID] = true
	participant.Finalizado = true
	s.lastLocal[s.userID] = s.clock.Now()
	snapshot := s.current.Clone()
	s.mu.Unlock()

	finalizado := true
	server, err := s.client.UpdateParticipant(ctx, s.roomID, s.userID, nil, &finalizado)
	if err != nil {
		return snapshot, err
	}

	return s.applyServer(server), nil
}

// FinishRoom forces the whole room into its finished state
func (s *Session) FinishRoom(ctx context.Context) (*models.Room, error) {
	server, err := s.client.FinishRoom(ctx, s.roomID)
	if err != nil {
		return s.Snapshot(), err
	}

	return s.applyServer(server), nil
}

// bumpPieces applies the new count locally, stamps it as pending, then submits
// the patch. On failure the pending value stays put and the next poll or tap
// retries implicitly. On success the pending value is cleared only if no newer
// tap replaced it while the request was in flight.
func (s *Session) bumpPieces(ctx context.Context, delta int) (*models.Room, error) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return nil, ErrRoomNotLoaded
	}
	participant := s.current.Participant(s.userID)
	if participant == nil {
		s.mu.Unlock()
		return nil, ErrNotInRoom
	}

	target := participant.Piezas + delta
	if target < 0 {
		target = 0
	}

	participant.Piezas = target
	s.pending[s.userID] = target
	s.lastLocal[s.userID] = s.clock.Now()
	snapshot := s.current.Clone()
	s.mu.Unlock()

	server, err := s.client.UpdateParticipant(ctx, s.roomID, s.userID, &target, nil)
	if err != nil {
		return snapshot, err
	}

	s.mu.Lock()
	if v, ok := s.pending[s.userID]; ok && v == target {
		delete(s.pending, s.userID)
	}
	merged := mergeRooms(server, s.current, s.stateLocked())
	s.current = merged
	out := merged.Clone()
	s.mu.Unlock()

	return out, nil
}

// applyServer merges a server snapshot into the local view under the lock
func (s *Session) applyServer(server *models.Room) *models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := mergeRooms(server, s.current, s.stateLocked())
	s.current = merged
	return merged.Clone()
}

// stateLocked snapshots the reconciliation state; the caller holds s.mu
func (s *Session) stateLocked() reconcileState {
	return reconcileState{
		ownedID:         s.userID,
		pending:         s.pending,
		lastLocal:       s.lastLocal,
		locallyFinished: s.locallyFinished,
		now:             s.clock.Now(),
		window:          s.window,
	}
}
