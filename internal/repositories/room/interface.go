package room

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/NachoLave/SushiLibre/internal/repositories/room Repository

import (
	"context"

	"github.com/NachoLave/SushiLibre/internal/models"
)

// Repository defines the interface for room data persistence
type Repository interface {
	// CreateRoom persists a new room under a freshly allocated unique code
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// GetRoom retrieves a room by its code
	GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error)

	// SaveRoom persists an existing room
	SaveRoom(ctx context.Context, input *SaveRoomInput) error

	// DeleteRoom removes a room
	DeleteRoom(ctx context.Context, input *DeleteRoomInput) error
}
