package room

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/NachoLave/SushiLibre/internal/services/room Service

import "context"

// Service defines the interface for room operations
type Service interface {
	// CreateRoom creates a new room with the creator as its only participant
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// GetRoom returns the current snapshot of a room
	GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error)

	// JoinRoom adds a participant to a room, or refreshes their name if already in it
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// UpdateParticipant patches a participant's count and/or finished flag
	UpdateParticipant(ctx context.Context, input *UpdateParticipantInput) (*UpdateParticipantOutput, error)

	// FinishRoom forces a room into its finished state and archives it
	FinishRoom(ctx context.Context, input *FinishRoomInput) (*FinishRoomOutput, error)

	// GetFinishedRoom returns the archived record of a finished room
	GetFinishedRoom(ctx context.Context, input *GetFinishedRoomInput) (*GetFinishedRoomOutput, error)

	// ListFinishedRooms returns all archived records, most recent first
	ListFinishedRooms(ctx context.Context, input *ListFinishedRoomsInput) (*ListFinishedRoomsOutput, error)
}
