package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is a snapshot of the backing services the scheduler depends
// on: the appointment store and the two redis databases (generic cache and
// the session-token cache).
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Cache     bool      `json:"cache"`
	AuthCache bool      `json:"authCache"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest snapshot. Before the first probe
// completes it reports everything down with a zero CheckedAt.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

func probe(ctx context.Context, mongoClient *mongo.Client, cache, authCache *redis.Client) HealthStatus {
	return HealthStatus{
		Mongo:     mongoClient.Ping(ctx, nil) == nil,
		Cache:     cache.Ping(ctx).Err() == nil,
		AuthCache: authCache.Ping(ctx).Err() == nil,
		CheckedAt: time.Now(),
	}
}

// StartHealthMonitor probes the backing services once a minute and keeps the
// in-memory snapshot current for the health endpoint.
func StartHealthMonitor(mongoClient *mongo.Client, cache, authCache *redis.Client) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			status := probe(ctx, mongoClient, cache, authCache)
			cancel()

			healthMu.Lock()
			currentHealth = status
			healthMu.Unlock()
		}
	}()
}
