package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"

	"github.com/segyhp/finance-planner/internal/config"
)

// OpenDatabase connects with the configured driver and brings the schema up to date
func OpenDatabase(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect(cfg.Driver, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Driver, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// OpenCache returns a redis-backed cache, or an in-process one when redis is unreachable.
// The redis client is returned for the caller to close; it is nil on fallback.
func OpenCache(ctx context.Context, cfg config.RedisConfig) (CacheRepository, *redis.Client) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("Redis unavailable at %s, using in-memory cache: %v", client.Options().Addr, err)
		client.Close()
		return NewMemoryCache(), nil
	}

	return NewRedisCache(client), client
}
