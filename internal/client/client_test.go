package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NachoLave/SushiLibre/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, func()) {
	t.Helper()

	server := httptest.NewServer(handler)

	c, err := New(&Config{BaseURL: server.URL})
	require.NoError(t, err)

	return c, server.Close
}

func TestFinishedRooms(t *testing.T) {
	c, closeServer := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/finished-rooms", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string][]*models.FinishedRoom{
			"rooms": {
				{RoomID: "LATER", Fecha: "08/11/2025"},
				{RoomID: "FIRST", Fecha: "07/11/2025"},
			},
		})
	})
	defer closeServer()

	records, err := c.FinishedRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "LATER", records[0].RoomID)
}

func TestFinishedRoom(t *testing.T) {
	c, closeServer := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/finished-rooms/ABCDE", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]*models.FinishedRoom{
			"room": {
				RoomID: "ABCDE",
				Participantes: []models.FinishedParticipant{
					{Nombre: "Nacho", Piezas: 25},
				},
				Fecha: "08/11/2025",
			},
		})
	})
	defer closeServer()

	record, err := c.FinishedRoom(context.Background(), "ABCDE")
	require.NoError(t, err)
	assert.Equal(t, "ABCDE", record.RoomID)
	assert.Equal(t, 25, record.Participantes[0].Piezas)
}

func TestIsNotFound(t *testing.T) {
	c, closeServer := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "sala no encontrada"})
	})
	defer closeServer()

	_, err := c.FinishedRoom(context.Background(), "NOPES")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsConflict(err))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "sala no encontrada", apiErr.Message)
}

func TestIsConflict(t *testing.T) {
	c, closeServer := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "la sala ya terminó"})
	})
	defer closeServer()

	_, err := c.JoinRoom(context.Background(), "ABCDE", "device-1", "Nacho")
	require.Error(t, err)
	assert.True(t, IsConflict(err))
	assert.False(t, IsNotFound(err))
}

func TestIsNotFoundOnPlainError(t *testing.T) {
	assert.False(t, IsNotFound(errors.New("boom")))
	assert.False(t, IsConflict(errors.New("boom")))
}
