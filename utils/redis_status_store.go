package utils

import (
	"context"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

const readStatusTTL = 30 * 24 * time.Hour

// RedisStatusStore keeps per-user read markers for feed items. Markers are
// best-effort state: losing them only resets the unread highlight, so they
// live in redis with a TTL instead of the primary database.
type RedisStatusStore struct {
	client *redis.Client
}

func NewRedisStatusStore(client *redis.Client) *RedisStatusStore {
	return &RedisStatusStore{client: client}
}

// GetRedisStatusStore connects to the redis instance described by the
// REDIS_* env vars and verifies the connection.
func GetRedisStatusStore() (*RedisStatusStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASS"),
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to connect to redis")
	}
	return &RedisStatusStore{client: client}, nil
}

func readStatusKey(userId string, postId string) string {
	return "read_status:" + userId + ":" + postId
}

// GetItemsReadStatus returns one bool per post id, in input order.
func (s *RedisStatusStore) GetItemsReadStatus(postIds []string, userId string) ([]bool, error) {
	status := make([]bool, len(postIds))
	if len(postIds) == 0 {
		return status, nil
	}
	keys := make([]string, len(postIds))
	for i, postId := range postIds {
		keys[i] = readStatusKey(userId, postId)
	}
	values, err := s.client.MGet(context.Background(), keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get read status")
	}
	for i, value := range values {
		status[i] = value != nil
	}
	return status, nil
}

// MarkItemsAsRead sets the read marker for the given posts.
func (s *RedisStatusStore) MarkItemsAsRead(postIds []string, userId string) error {
	if len(postIds) == 0 {
		return nil
	}
	pipe := s.client.Pipeline()
	for _, postId := range postIds {
		pipe.Set(context.Background(), readStatusKey(userId, postId), "1", readStatusTTL)
	}
	if _, err := pipe.Exec(context.Background()); err != nil {
		return errors.Wrap(err, "failed to mark items as read")
	}
	return nil
}
