package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/staybooking/config"
	"github.com/Domenick1991/staybooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client      *redis.Client
	listingsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, listingsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:      redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		listingsTTL: listingsTTL,
	}
}

func (c *RedisCache) GetListings(ctx context.Context) ([]domain.Listing, error) {
	data, err := c.client.Get(ctx, listingsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var listings []domain.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (c *RedisCache) SetListings(ctx context.Context, listings []domain.Listing) error {
	payload, err := json.Marshal(listings)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, listingsKey(), payload, c.listingsTTL).Err()
}

// AcquireAdmissionLock serializes booking admission per listing: the
// availability check and the insert both run under this lock, so two
// overlapping requests cannot pass the check simultaneously. The TTL
// bounds how long a crashed request can keep the listing locked.
func (c *RedisCache) AcquireAdmissionLock(ctx context.Context, listingID int64, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, admissionLockKey(listingID), "locked", ttl).Result()
}

func (c *RedisCache) ReleaseAdmissionLock(ctx context.Context, listingID int64) error {
	return c.client.Del(ctx, admissionLockKey(listingID)).Err()
}

func listingsKey() string {
	return "cache:listings"
}

func admissionLockKey(listingID int64) string {
	return fmt.Sprintf("lock:listing:%d", listingID)
}
