package room

import (
	"context"
	"testing"
	"time"

	"github.com/NachoLave/SushiLibre/internal/common/roomcode/mocks"
	"github.com/NachoLave/SushiLibre/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr       *miniredis.Miniredis
	client   *redis.Client
	mockCtrl *gomock.Controller
	codes    *mocks.MockGenerator
	repo     Repository
	testNow  int64
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	s.mockCtrl = gomock.NewController(s.T())
	s.codes = mocks.NewMockGenerator(s.mockCtrl)

	repo, err := NewRedis(&Config{
		RedisClient:   s.client,
		CodeGenerator: s.codes,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 11, 8, 21, 0, 0, 0, time.UTC).UnixMilli()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.mockCtrl.Finish()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newRoom() *models.Room {
	return &models.Room{
		Creador: "Nacho",
		Participantes: []*models.Participant{
			{
				ID:     "device-1",
				Nombre: "Nacho",
				Piezas: 0,
			},
		},
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateRoomAssignsCode() {
	s.codes.EXPECT().NewCode().Return("ABCDE")

	out, err := s.repo.CreateRoom(context.Background(), &CreateRoomInput{
		Room: s.newRoom(),
	})
	s.Require().NoError(err)
	s.Equal("ABCDE", out.Room.ID)

	retrieved, err := s.repo.GetRoom(context.Background(), &GetRoomInput{
		RoomID: "ABCDE",
	})
	s.Require().NoError(err)
	s.Equal("Nacho", retrieved.Creador)
	s.Len(retrieved.Participantes, 1)
	s.Equal("device-1", retrieved.Participantes[0].ID)
	s.Equal(s.testNow, retrieved.CreatedAt)
}

func (s *RedisRepositoryTestSuite) TestCreateRoomRetriesOnCollision() {
	gomock.InOrder(
		s.codes.EXPECT().NewCode().Return("TAKEN"),
		s.codes.EXPECT().NewCode().Return("TAKEN"),
		s.codes.EXPECT().NewCode().Return("FRESH"),
	)

	// Occupy the TAKEN code
	first := s.newRoom()
	first.ID = "TAKEN"
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: first}))

	out, err := s.repo.CreateRoom(context.Background(), &CreateRoomInput{
		Room: s.newRoom(),
	})
	s.Require().NoError(err)
	s.Equal("FRESH", out.Room.ID)

	// The occupied room is untouched
	taken, err := s.repo.GetRoom(context.Background(), &GetRoomInput{RoomID: "TAKEN"})
	s.Require().NoError(err)
	s.Equal("TAKEN", taken.ID)
}

func (s *RedisRepositoryTestSuite) TestCreateRoomCodeExhausted() {
	s.codes.EXPECT().NewCode().Return("TAKEN").Times(5)

	first := s.newRoom()
	first.ID = "TAKEN"
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: first}))

	_, err := s.repo.CreateRoom(context.Background(), &CreateRoomInput{
		Room: s.newRoom(),
	})
	s.Require().Error(err)
	s.Equal(ErrCodeExhausted, err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetRoom() {
	room := s.newRoom()
	room.ID = "QWXYZ"
	room.Participantes = append(room.Participantes, &models.Participant{
		ID:         "device-2",
		Nombre:     "Flor",
		Piezas:     12,
		Finalizado: true,
	})

	err := s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: room})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetRoom(context.Background(), &GetRoomInput{RoomID: "QWXYZ"})
	s.Require().NoError(err)
	s.Equal("QWXYZ", retrieved.ID)
	s.Len(retrieved.Participantes, 2)
	s.Equal(12, retrieved.Participantes[1].Piezas)
	s.True(retrieved.Participantes[1].Finalizado)
	s.False(retrieved.Finalizado)
}

func (s *RedisRepositoryTestSuite) TestGetRoomNotFound() {
	_, err := s.repo.GetRoom(context.Background(), &GetRoomInput{RoomID: "NOPES"})
	s.Require().Error(err)
	s.Equal(ErrRoomNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestDeleteRoom() {
	room := s.newRoom()
	room.ID = "GONER"
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: room}))

	err := s.repo.DeleteRoom(context.Background(), &DeleteRoomInput{RoomID: "GONER"})
	s.Require().NoError(err)

	_, err = s.repo.GetRoom(context.Background(), &GetRoomInput{RoomID: "GONER"})
	s.Equal(ErrRoomNotFound, err)

	err = s.repo.DeleteRoom(context.Background(), &DeleteRoomInput{RoomID: "GONER"})
	s.Equal(ErrRoomNotFound, err)
}
