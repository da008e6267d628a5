package room

import "github.com/NachoLave/SushiLibre/internal/models"

type CreateRoomInput struct {
	// Room to persist; its ID is assigned by the repository
	Room *models.Room
}

type CreateRoomOutput struct {
	Room *models.Room
}

type GetRoomInput struct {
	RoomID string
}

type SaveRoomInput struct {
	Room *models.Room
}

type DeleteRoomInput struct {
	RoomID string
}
