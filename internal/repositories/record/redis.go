package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/roulette/internal/models"
)

const (
	// Key prefixes for Redis
	recordKeyPrefix = "record:"
	recordIndexKey  = "records:by_time"
)

// RedisConfig holds configuration for the Redis record repository
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed record repository
func NewRedis(cfg *RedisConfig) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func recordKey(id string) string {
	return fmt.Sprintf("%s%s", recordKeyPrefix, id)
}

// SaveRecord persists a record and indexes it by creation time
func (r *redisRepository) SaveRecord(ctx context.Context, input *SaveRecordInput) (*SaveRecordOutput, error) {
	if err := validateRecord(input); err != nil {
		return nil, err
	}
	rec := input.Record

	recordJSON, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}

	key := recordKey(rec.ID)

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, recordJSON, 0) // records never expire
	pipe.ZAdd(ctx, recordIndexKey, redis.Z{
		Score:  float64(rec.CreatedAt.UnixNano()),
		Member: rec.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save record: %w", err)
	}

	return &SaveRecordOutput{Location: key}, nil
}

// GetRecord retrieves a record by ID from Redis
func (r *redisRepository) GetRecord(ctx context.Context, input *GetRecordInput) (*models.Record, error) {
	if input == nil || input.RecordID == "" {
		return nil, errors.New("input and record ID cannot be empty")
	}

	recordJSON, err := r.client.Get(ctx, recordKey(input.RecordID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	var rec models.Record
	if err := json.Unmarshal([]byte(recordJSON), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}

	return &rec, nil
}

// ListRecords retrieves records newest first using the time index
func (r *redisRepository) ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error) {
	stop := int64(-1)
	if input != nil && input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	ids, err := r.client.ZRevRange(ctx, recordIndexKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	records := make([]*models.Record, 0, len(ids))
	for _, id := range ids {
		rec, err := r.GetRecord(ctx, &GetRecordInput{RecordID: id})
		if err != nil {
			// Index entries can outlive their record; skip them
			if errors.Is(err, ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		records = append(records, rec)
	}

	return &ListRecordsOutput{Records: records}, nil
}
