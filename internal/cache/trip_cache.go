// Package cache keeps trip records in Redis so the booking form can
// recompute quotes without hitting MySQL on every change.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"travelagency/internal/domain/models"

	"github.com/redis/go-redis/v9"
)

const tripKeyPrefix = "trip:"

// TripCache is safe to use with a nil client; every call then misses.
type TripCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewTripCache(client *redis.Client, ttl time.Duration) *TripCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &TripCache{Client: client, TTL: ttl}
}

func tripKey(id int64) string {
	return tripKeyPrefix + strconv.FormatInt(id, 10)
}

// Get reports ok=false on a miss or when caching is disabled.
func (c *TripCache) Get(ctx context.Context, id int64) (models.Trip, bool, error) {
	if c == nil || c.Client == nil {
		return models.Trip{}, false, nil
	}
	raw, err := c.Client.Get(ctx, tripKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Trip{}, false, nil
	}
	if err != nil {
		return models.Trip{}, false, err
	}
	var t models.Trip
	if err := json.Unmarshal(raw, &t); err != nil {
		return models.Trip{}, false, err
	}
	return t, true, nil
}

func (c *TripCache) Set(ctx context.Context, t models.Trip) error {
	if c == nil || c.Client == nil {
		return nil
	}
	raw, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, tripKey(t.ID), raw, c.TTL).Err()
}

func (c *TripCache) Invalidate(ctx context.Context, id int64) error {
	if c == nil || c.Client == nil {
		return nil
	}
	return c.Client.Del(ctx, tripKey(id)).Err()
}
