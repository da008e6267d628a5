package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NachoLave/SushiLibre/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pollerSession(t *testing.T, handler http.HandlerFunc) (*Session, func()) {
	t.Helper()

	server := httptest.NewServer(handler)

	apiClient, err := New(&Config{BaseURL: server.URL})
	require.NoError(t, err)

	session, err := NewSession(&SessionConfig{
		Client: apiClient,
		RoomID: "ABCDE",
		UserID: "device-1",
	})
	require.NoError(t, err)

	return session, server.Close
}

func TestPollerNextDelayStaysInJitterBand(t *testing.T) {
	poller, err := NewPoller(&PollerConfig{
		Session:  &Session{},
		Interval: time.Second,
		Jitter:   0.2,
	})
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		d := poller.nextDelay()
		assert.GreaterOrEqual(t, d, 800*time.Millisecond)
		assert.LessOrEqual(t, d, 1200*time.Millisecond)
	}
}

func TestPollerInitialFetchFailureIsReturned(t *testing.T) {
	session, closeServer := pollerSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer closeServer()

	poller, err := NewPoller(&PollerConfig{
		Session: session,
		Logger:  zerolog.Nop(),
	})
	require.NoError(t, err)

	err = poller.Run(context.Background())
	require.Error(t, err)
}

func TestPollerDeliversUpdatesUntilCancelled(t *testing.T) {
	room := &models.Room{
		ID:            "ABCDE",
		Creador:       "Nacho",
		Participantes: []*models.Participant{{ID: "device-1", Nombre: "Nacho"}},
	}

	session, closeServer := pollerSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]*models.Room{"room": room})
	})
	defer closeServer()

	updates := make(chan *models.Room, 16)
	poller, err := NewPoller(&PollerConfig{
		Session:  session,
		Interval: 10 * time.Millisecond,
		Logger:   zerolog.Nop(),
		OnUpdate: func(r *models.Room) { updates <- r },
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- poller.Run(ctx) }()

	// The first update comes from the initial fetch, the second from the loop
	for i := 0; i < 2; i++ {
		select {
		case got := <-updates:
			assert.Equal(t, "ABCDE", got.ID)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for poll update")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop on cancel")
	}
}
