package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/NachoLave/SushiLibre/internal/common/roomcode"
	"github.com/NachoLave/SushiLibre/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for room documents in Redis
	roomKeyPrefix = "room:"

	// How many code allocations to attempt before giving up
	maxCodeAttempts = 5
)

// ErrRoomNotFound is returned when a room is not found
var ErrRoomNotFound = errors.New("room not found")

// ErrCodeExhausted is returned when no free room code could be allocated
var ErrCodeExhausted = errors.New("could not allocate a unique room code")

// Config holds configuration for the Redis room repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// CodeGenerator produces candidate room codes
	CodeGenerator roomcode.Generator
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	codes  roomcode.Generator
}

// NewRedis creates a new Redis-backed room repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.CodeGenerator == nil {
		return nil, errors.New("code generator cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		codes:  cfg.CodeGenerator,
	}, nil
}

// CreateRoom persists a new room under a freshly allocated code. SetNX is used
// so two rooms can never share a code even when created concurrently.
func (r *redisRepository) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if input == nil || input.Room == nil {
		return nil, errors.New("input and room cannot be nil")
	}

	for i := 0; i < maxCodeAttempts; i++ {
		code := r.codes.NewCode()
		input.Room.ID = code

		roomJSON, err := json.Marshal(input.Room)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal room: %w", err)
		}

		set, err := r.client.SetNX(ctx, roomKeyPrefix+code, roomJSON, 0).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to save room: %w", err)
		}

		if set {
			return &CreateRoomOutput{Room: input.Room}, nil
		}
	}

	return nil, ErrCodeExhausted
}

// GetRoom retrieves a room by code from Redis
func (r *redisRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	roomJSON, err := r.client.Get(ctx, roomKeyPrefix+input.RoomID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	var room models.Room
	if err := json.Unmarshal([]byte(roomJSON), &room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	return &room, nil
}

// SaveRoom persists an existing room to Redis
func (r *redisRepository) SaveRoom(ctx context.Context, input *SaveRoomInput) error {
	if input == nil || input.Room == nil {
		return errors.New("input and room cannot be nil")
	}

	if input.Room.ID == "" {
		return errors.New("room ID cannot be empty")
	}

	roomJSON, err := json.Marshal(input.Room)
	if err != nil {
		return fmt.Errorf("failed to marshal room: %w", err)
	}

	if err := r.client.Set(ctx, roomKeyPrefix+input.Room.ID, roomJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save room: %w", err)
	}

	return nil
}

// DeleteRoom removes a room from Redis
func (r *redisRepository) DeleteRoom(ctx context.Context, input *DeleteRoomInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	deleted, err := r.client.Del(ctx, roomKeyPrefix+input.RoomID).Result()
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	if deleted == 0 {
		return ErrRoomNotFound
	}

	return nil
}
