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

var ErrKeyNotFound = errors.New("key not found")

// IRedis is the key-value persistence surface used by the assistant FAQ
// store: plain get/set on a key plus a change-notification channel so that
// admin writes propagate to every open session, including other instances.
type IRedis interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Publish(ctx context.Context, channel string, payload string) error
	Subscribe(ctx context.Context, channel string) <-chan string
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
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

func (r *redisClient) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		logrus.Debug(fmt.Sprintf("Key %s not found", key))
		return "", ErrKeyNotFound
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting key %s: %v", key, err))
		return "", err
	}
	return val, nil
}

func (r *redisClient) Set(ctx context.Context, key string, value string) error {
	err := r.client.Set(ctx, key, value, 0).Err()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error setting key %s: %v", key, err))
		return err
	}
	return nil
}

func (r *redisClient) Publish(ctx context.Context, channel string, payload string) error {
	err := r.client.Publish(ctx, channel, payload).Err()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error publishing to channel %s: %v", channel, err))
		return err
	}
	return nil
}

// Subscribe delivers the payload of every message published on channel until
// ctx is cancelled. The returned channel is closed on cancellation.
func (r *redisClient) Subscribe(ctx context.Context, channel string) <-chan string {
	out := make(chan string)
	pubsub := r.client.Subscribe(ctx, channel)

	go func() {
		defer close(out)
		defer func() {
			if err := pubsub.Close(); err != nil {
				logrus.Warn(fmt.Sprintf("Error closing subscription on %s: %v", channel, err))
			}
		}()

		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				select {
				case out <- msg.Payload:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
