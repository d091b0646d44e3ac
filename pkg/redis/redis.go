package redis

import (
	"context"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"os"
	"strconv"
	"time"
)

// IRedis is the answer cache used by the chat service.
type IRedis interface {
	SetAnswer(ctx context.Context, key string, answer string, expiration time.Duration) error
	// GetAnswer returns false without error when the key is absent.
	GetAnswer(ctx context.Context, key string) (string, bool, error)
}

type redisClient struct {
	client *redis.Client
}

// New connects to REDIS_ADDRESS. It returns nil when no address is
// configured so callers can run without a cache.
func New() IRedis {
	redisAddr := os.Getenv("REDIS_ADDRESS")
	if redisAddr == "" {
		logrus.Info("REDIS_ADDRESS not set, answer cache disabled")
		return nil
	}

	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func NewWithClient(client *redis.Client) IRedis {
	return &redisClient{client: client}
}

func (r *redisClient) SetAnswer(ctx context.Context, key string, answer string, expiration time.Duration) error {
	logrus.Debug(fmt.Sprintf("Caching answer for key %s with expiration %v", key, expiration))
	err := r.client.Set(ctx, key, answer, expiration).Err()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error caching answer for key %s: %v", key, err))
		return err
	}
	return nil
}

func (r *redisClient) GetAnswer(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		logrus.Debug(fmt.Sprintf("No cached answer for key %s", key))
		return "", false, nil
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting cached answer for key %s: %v", key, err))
		return "", false, err
	}
	return val, true, nil
}
