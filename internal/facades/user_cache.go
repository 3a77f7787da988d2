package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"appointment-booking-api/internal/logger"
	"appointment-booking-api/internal/models"
)

// UserCacheFacade caches user records in Redis, keyed by username.
// Token resolution hits this on every authenticated request; users are
// immutable after signup, so no invalidation is needed.
type UserCacheFacade struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached users
}

// NewUserCacheFacade creates a new facade instance with the given TTL
func NewUserCacheFacade(client *redis.Client, expiration time.Duration) *UserCacheFacade {
	return &UserCacheFacade{
		client: client,
		exp:    expiration,
	}
}

// Get fetches a cached user by username. Returns nil, nil on cache miss.
func (f *UserCacheFacade) Get(ctx context.Context, username string) (*models.UserDB, error) {
	key := fmt.Sprintf("user:%s", username)

	val, err := f.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var user models.UserDB
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", user.ID,
		"error", nil,
	)

	return &user, nil
}

// Set caches a user record with expiration
func (f *UserCacheFacade) Set(ctx context.Context, user *models.UserDB) error {
	key := fmt.Sprintf("user:%s", user.Username)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	err = f.client.Set(ctx, key, data, f.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}
