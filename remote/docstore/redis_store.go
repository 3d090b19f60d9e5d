package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Luismorlan/choirmux/remote"
	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// RedisStore keeps each document as a JSON string under "collection/id".
type RedisStore struct {
	client *redis.Client
}

// GetRedisClient connects to the redis configured by REDIS_HOST, REDIS_PORT
// and REDIS_PASSWD.
func GetRedisClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT")),
		Password: os.Getenv("REDIS_PASSWD"),
		DB:       0, // use default DB
	})
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Set(ctx context.Context, collection, id string, doc interface{}) error {
	key := remote.DocumentKey(collection, id)
	body, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}
	return errors.Wrapf(s.client.Set(ctx, key, body, 0).Err(), "set %s", key)
}

func (s *RedisStore) Get(ctx context.Context, collection, id string, out interface{}) (bool, error) {
	key := remote.DocumentKey(collection, id)
	body, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "get %s", key)
	}
	return true, errors.Wrapf(json.Unmarshal(body, out), "decode %s", key)
}

func (s *RedisStore) Delete(ctx context.Context, collection, id string) error {
	key := remote.DocumentKey(collection, id)
	return errors.Wrapf(s.client.Del(ctx, key).Err(), "delete %s", key)
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
