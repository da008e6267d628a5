package room

// RoomError is a custom error type for room-related errors
type RoomError string

// Error implements the error interface
func (e RoomError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrRoomNotFound        RoomError = "room not found"
	ErrParticipantNotFound RoomError = "participant not found"
	ErrRoomFinished        RoomError = "room already finished"
	ErrInvalidInput        RoomError = "invalid input"
	ErrNilConfig           RoomError = "config cannot be nil"
	ErrNilRoomRepo         RoomError = "room repository cannot be nil"
	ErrNilArchiveRepo      RoomError = "archive repository cannot be nil"
	ErrNilClock            RoomError = "clock cannot be nil"
)
