package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefix for pending flash notices
	FlashKeyPrefix = "flash:notice:"

	// A notice not consumed within this window is discarded
	flashTTL = 5 * time.Minute
)

// FlashService stores one-shot user notices in Redis, keyed by a per-browser
// token. A notice survives exactly one redirect: reading it deletes it.
type FlashService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewFlashService(redisClient *redis.Client, log *logrus.Logger) *FlashService {
	return &FlashService{
		redisClient: redisClient,
		log:         log,
	}
}

// Set stores a notice for the token, replacing any pending one.
func (s *FlashService) Set(ctx context.Context, token string, message string) error {
	key := FlashKeyPrefix + token
	if err := s.redisClient.Set(ctx, key, message, flashTTL).Err(); err != nil {
		s.log.Warnf("Failed to store flash notice: %+v", err)
		return fmt.Errorf("store flash notice: %w", err)
	}
	return nil
}

// Pop returns and removes the pending notice for the token. Returns an empty
// string when no notice is pending.
func (s *FlashService) Pop(ctx context.Context, token string) (string, error) {
	key := FlashKeyPrefix + token
	message, err := s.redisClient.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		s.log.Warnf("Failed to read flash notice: %+v", err)
		return "", fmt.Errorf("read flash notice: %w", err)
	}
	return message, nil
}
