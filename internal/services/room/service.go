package room

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/NachoLave/SushiLibre/internal/common/clock"
	"github.com/NachoLave/SushiLibre/internal/models"
	archiveRepo "github.com/NachoLave/SushiLibre/internal/repositories/archive"
	roomRepo "github.com/NachoLave/SushiLibre/internal/repositories/room"
)

// fechaLayout is the display format for archived finish dates (day/month/year)
const fechaLayout = "02/01/2006"

// service implements the Service interface
type service struct {
	roomRepo    roomRepo.Repository
	archiveRepo archiveRepo.Repository
	clock       clock.Clock
}

// New creates a new room service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}

	if cfg.ArchiveRepo == nil {
		return nil, ErrNilArchiveRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		roomRepo:    cfg.RoomRepo,
		archiveRepo: cfg.ArchiveRepo,
		clock:       cfg.Clock,
	}, nil
}

// CreateRoom creates a new room with the creator as its only participant
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	nombre := strings.TrimSpace(input.Nombre)
	if nombre == "" || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	now := s.clock.Now().UnixMilli()
	room := &models.Room{
		Creador: nombre,
		Participantes: []*models.Participant{
			{
				ID:     input.UserID,
				Nombre: nombre,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	out, err := s.roomRepo.CreateRoom(ctx, &roomRepo.CreateRoomInput{Room: room})
	if err != nil {
		return nil, err
	}

	return &CreateRoomOutput{Room: out.Room}, nil
}

// GetRoom returns the current snapshot of a room
func (s *service) GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, ErrInvalidInput
	}

	room, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	return &GetRoomOutput{Room: room}, nil
}

// JoinRoom adds a participant to a room. Joining with an ID that is already in
// the room only refreshes the display name, so duplicate IDs cannot accumulate.
func (s *service) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	nombre := strings.TrimSpace(input.Nombre)
	if input.RoomID == "" || input.UserID == "" || nombre == "" {
		return nil, ErrInvalidInput
	}

	room, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	if room.Finalizado {
		return nil, ErrRoomFinished
	}

	if existing := room.Participant(input.UserID); existing != nil {
		existing.Nombre = nombre
	} else {
		room.Participantes = append(room.Participantes, &models.Participant{
			ID:     input.UserID,
			Nombre: nombre,
		})
	}

	room.UpdatedAt = s.clock.Now().UnixMilli()

	if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room}); err != nil {
		return nil, err
	}

	return &JoinRoomOutput{Room: room}, nil
}

// UpdateParticipant patches a participant's count and/or finished flag. When the
// patch leaves every participant finished, the room finalizes and is archived.
func (s *service) UpdateParticipant(ctx context.Context, input *UpdateParticipantInput) (*UpdateParticipantOutput, error) {
	if input == nil || input.RoomID == "" || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	if input.Piezas == nil && input.Finalizado == nil {
		return nil, ErrInvalidInput
	}

	if input.Piezas != nil && *input.Piezas < 0 {
		return nil, ErrInvalidInput
	}

	room, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	// Counters are frozen once the room finishes. A finished-flag-only patch is
	// still accepted so a client retrying its own finalize gets an idempotent OK.
	if room.Finalizado && input.Piezas != nil {
		return nil, ErrRoomFinished
	}

	participant := room.Participant(input.UserID)
	if participant == nil {
		return nil, ErrParticipantNotFound
	}

	if input.Piezas != nil {
		participant.Piezas = *input.Piezas
	}

	if input.Finalizado != nil {
		participant.Finalizado = *input.Finalizado
	}

	now := s.clock.Now()
	wasFinalized := room.Finalizado
	room.Finalizado = wasFinalized || room.AllFinished()
	room.UpdatedAt = now.UnixMilli()

	if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room}); err != nil {
		return nil, err
	}

	if room.Finalizado && !wasFinalized {
		if err := s.archiveRoom(ctx, room, now); err != nil {
			return nil, err
		}
	}

	return &UpdateParticipantOutput{Room: room}, nil
}

// FinishRoom forces a room into its finished state. Repeated calls are safe:
// the room never un-finalizes and the archive keeps its first record.
func (s *service) FinishRoom(ctx context.Context, input *FinishRoomInput) (*FinishRoomOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, ErrInvalidInput
	}

	room, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	if !room.Finalizado {
		room.Finalizado = true
		room.UpdatedAt = now.UnixMilli()

		if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room}); err != nil {
			return nil, err
		}
	}

	if err := s.archiveRoom(ctx, room, now); err != nil {
		return nil, err
	}

	return &FinishRoomOutput{Room: room}, nil
}

// GetFinishedRoom returns the archived record of a finished room
func (s *service) GetFinishedRoom(ctx context.Context, input *GetFinishedRoomInput) (*GetFinishedRoomOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, ErrInvalidInput
	}

	record, err := s.archiveRepo.GetRecord(ctx, &archiveRepo.GetRecordInput{
		RoomID: models.NormalizeCode(input.RoomID),
	})
	if err != nil {
		if errors.Is(err, archiveRepo.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	return &GetFinishedRoomOutput{Record: record}, nil
}

// ListFinishedRooms returns all archived records, most recent first
func (s *service) ListFinishedRooms(ctx context.Context, input *ListFinishedRoomsInput) (*ListFinishedRoomsOutput, error) {
	out, err := s.archiveRepo.ListRecords(ctx, &archiveRepo.ListRecordsInput{})
	if err != nil {
		return nil, err
	}

	return &ListFinishedRoomsOutput{Records: out.Records}, nil
}

func (s *service) getRoom(ctx context.Context, roomID string) (*models.Room, error) {
	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{
		RoomID: models.NormalizeCode(roomID),
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	return room, nil
}

// archiveRoom writes the finished room record. The repository insert is
// first-write-wins, so racing finalize paths cannot produce duplicates.
func (s *service) archiveRoom(ctx context.Context, room *models.Room, now time.Time) error {
	participantes := make([]models.FinishedParticipant, len(room.Participantes))
	for i, p := range room.Participantes {
		participantes[i] = models.FinishedParticipant{
			Nombre: p.Nombre,
			Piezas: p.Piezas,
		}
	}

	_, err := s.archiveRepo.SaveRecord(ctx, &archiveRepo.SaveRecordInput{
		Record: &models.FinishedRoom{
			RoomID:        room.ID,
			Participantes: participantes,
			Fecha:         now.Format(fechaLayout),
			FinishedAt:    now.UnixMilli(),
		},
	})
	return err
}
