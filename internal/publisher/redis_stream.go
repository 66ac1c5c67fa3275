package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Stream names for downstream consumers.
const (
	StreamStatsRefreshed = "stats.refreshed.hockey"
	StreamGameResults    = "games.results.hockey"
)

// RedisStreamPublisher publishes refresh notifications to Redis streams
type RedisStreamPublisher struct {
	client *redis.Client
}

// NewRedisStreamPublisher creates a new Redis stream publisher from existing client
func NewRedisStreamPublisher(client *redis.Client) *RedisStreamPublisher {
	return &RedisStreamPublisher{
		client: client,
	}
}

// PublishStatsRefreshed announces a completed season refresh to the stream.
func (rsp *RedisStreamPublisher) PublishStatsRefreshed(ctx context.Context, summary interface{}) error {
	return rsp.publish(ctx, StreamStatsRefreshed, summary)
}

// PublishGameResults publishes recomputed game results to the stream.
func (rsp *RedisStreamPublisher) PublishGameResults(ctx context.Context, results interface{}) error {
	return rsp.publish(ctx, StreamGameResults, results)
}

func (rsp *RedisStreamPublisher) publish(ctx context.Context, stream string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return rsp.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{
			"data":      string(data),
			"timestamp": time.Now().Unix(),
		},
	}).Err()
}
