package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/NachoLave/SushiLibre/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for finished room documents in Redis
	recordKeyPrefix = "finished:"

	// Sorted set indexing room codes by finish time
	recordsByTimeKey = "finished_rooms_by_time"
)

// ErrRecordNotFound is returned when a finished room record is not found
var ErrRecordNotFound = errors.New("finished room record not found")

// Config holds configuration for the Redis archive repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed archive repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveRecord inserts a finished room record. The insert uses SetNX so the first
// record for a room wins and is never overwritten, however many finalize calls race.
func (r *redisRepository) SaveRecord(ctx context.Context, input *SaveRecordInput) (*SaveRecordOutput, error) {
	if input == nil || input.Record == nil {
		return nil, errors.New("input and record cannot be nil")
	}

	if input.Record.RoomID == "" {
		return nil, errors.New("record room ID cannot be empty")
	}

	recordJSON, err := json.Marshal(input.Record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}

	recordKey := recordKeyPrefix + input.Record.RoomID
	set, err := r.client.SetNX(ctx, recordKey, recordJSON, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to save record: %w", err)
	}

	if !set {
		return &SaveRecordOutput{Inserted: false}, nil
	}

	// Index the record by finish time for newest-first listing
	err = r.client.ZAdd(ctx, recordsByTimeKey, redis.Z{
		Score:  float64(input.Record.FinishedAt),
		Member: input.Record.RoomID,
	}).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to index record: %w", err)
	}

	return &SaveRecordOutput{Inserted: true}, nil
}

// GetRecord retrieves a finished room record by room code from Redis
func (r *redisRepository) GetRecord(ctx context.Context, input *GetRecordInput) (*models.FinishedRoom, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	recordJSON, err := r.client.Get(ctx, recordKeyPrefix+input.RoomID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	var record models.FinishedRoom
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}

	return &record, nil
}

// ListRecords retrieves all finished room records, most recent first
func (r *redisRepository) ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error) {
	roomIDs, err := r.client.ZRevRange(ctx, recordsByTimeKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list record IDs: %w", err)
	}

	if len(roomIDs) == 0 {
		return &ListRecordsOutput{
			Records: []*models.FinishedRoom{},
		}, nil
	}

	// Fetch all records in one round trip
	pipe := r.client.Pipeline()
	recordCommands := make([]*redis.StringCmd, len(roomIDs))
	for i, roomID := range roomIDs {
		recordCommands[i] = pipe.Get(ctx, recordKeyPrefix+roomID)
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	records := make([]*models.FinishedRoom, 0, len(roomIDs))
	for i, cmd := range recordCommands {
		recordJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Record was removed between reading the index and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get record %s: %w", roomIDs[i], err)
		}

		var record models.FinishedRoom
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record %s: %w", roomIDs[i], err)
		}

		records = append(records, &record)
	}

	return &ListRecordsOutput{Records: records}, nil
}
