package archive

import (
	"context"
	"testing"
	"time"

	"github.com/NachoLave/SushiLibre/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow int64
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 11, 8, 23, 30, 0, 0, time.UTC).UnixMilli()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newRecord(roomID string, finishedAt int64) *models.FinishedRoom {
	return &models.FinishedRoom{
		RoomID: roomID,
		Participantes: []models.FinishedParticipant{
			{Nombre: "Nacho", Piezas: 25},
			{Nombre: "Flor", Piezas: 18},
		},
		Fecha:      "08/11/2025",
		FinishedAt: finishedAt,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetRecord() {
	out, err := s.repo.SaveRecord(context.Background(), &SaveRecordInput{
		Record: s.newRecord("ABCDE", s.testNow),
	})
	s.Require().NoError(err)
	s.True(out.Inserted)

	record, err := s.repo.GetRecord(context.Background(), &GetRecordInput{RoomID: "ABCDE"})
	s.Require().NoError(err)
	s.Equal("ABCDE", record.RoomID)
	s.Len(record.Participantes, 2)
	s.Equal(25, record.Participantes[0].Piezas)
	s.Equal("08/11/2025", record.Fecha)
	s.Equal(s.testNow, record.FinishedAt)
}

func (s *RedisRepositoryTestSuite) TestSaveRecordKeepsFirstWrite() {
	first, err := s.repo.SaveRecord(context.Background(), &SaveRecordInput{
		Record: s.newRecord("ABCDE", s.testNow),
	})
	s.Require().NoError(err)
	s.True(first.Inserted)

	// A second finalize racing in with different counts must not win
	later := s.newRecord("ABCDE", s.testNow+5000)
	later.Participantes[0].Piezas = 999

	second, err := s.repo.SaveRecord(context.Background(), &SaveRecordInput{Record: later})
	s.Require().NoError(err)
	s.False(second.Inserted)

	record, err := s.repo.GetRecord(context.Background(), &GetRecordInput{RoomID: "ABCDE"})
	s.Require().NoError(err)
	s.Equal(25, record.Participantes[0].Piezas)
	s.Equal(s.testNow, record.FinishedAt)
}

func (s *RedisRepositoryTestSuite) TestGetRecordNotFound() {
	_, err := s.repo.GetRecord(context.Background(), &GetRecordInput{RoomID: "NOPES"})
	s.Require().Error(err)
	s.Equal(ErrRecordNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestListRecordsNewestFirst() {
	for i, roomID := range []string{"FIRST", "MIDLE", "LATER"} {
		_, err := s.repo.SaveRecord(context.Background(), &SaveRecordInput{
			Record: s.newRecord(roomID, s.testNow+int64(i)*60000),
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListRecords(context.Background(), &ListRecordsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 3)
	s.Equal("LATER", out.Records[0].RoomID)
	s.Equal("MIDLE", out.Records[1].RoomID)
	s.Equal("FIRST", out.Records[2].RoomID)
}

func (s *RedisRepositoryTestSuite) TestListRecordsEmpty() {
	out, err := s.repo.ListRecords(context.Background(), &ListRecordsInput{})
	s.Require().NoError(err)
	s.Len(out.Records, 0)
}
