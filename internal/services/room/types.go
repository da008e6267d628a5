package room

import (
	"github.com/NachoLave/SushiLibre/internal/common/clock"
	"github.com/NachoLave/SushiLibre/internal/models"
	archiveRepo "github.com/NachoLave/SushiLibre/internal/repositories/archive"
	roomRepo "github.com/NachoLave/SushiLibre/internal/repositories/room"
)

// Config holds configuration for the room service
type Config struct {
	// Repository dependencies
	RoomRepo    roomRepo.Repository
	ArchiveRepo archiveRepo.Repository

	// Time source, injectable for tests
	Clock clock.Clock
}

type CreateRoomInput struct {
	// Nombre is the creator's display name
	Nombre string

	// UserID is the creator's stable device identifier
	UserID string
}

type CreateRoomOutput struct {
	Room *models.Room
}

type GetRoomInput struct {
	// RoomID is the room code, matched case-insensitively
	RoomID string
}

type GetRoomOutput struct {
	Room *models.Room
}

type JoinRoomInput struct {
	RoomID string
	UserID string
	Nombre string
}

type JoinRoomOutput struct {
	Room *models.Room
}

type UpdateParticipantInput struct {
	RoomID string
	UserID string

	// Piezas, when set, replaces the participant's count
	Piezas *int

	// Finalizado, when set, replaces the participant's finished flag
	Finalizado *bool
}

type UpdateParticipantOutput struct {
	Room *models.Room
}

type FinishRoomInput struct {
	RoomID string
}

type FinishRoomOutput struct {
	Room *models.Room
}

type GetFinishedRoomInput struct {
	RoomID string
}

type GetFinishedRoomOutput struct {
	Record *models.FinishedRoom
}

type ListFinishedRoomsInput struct {
}

type ListFinishedRoomsOutput struct {
	Records []*models.FinishedRoom
}
