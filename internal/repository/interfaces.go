package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/segyhp/finance-planner/internal/domain"
)

// ScenarioRepository defines the interface for saved scenario operations
type ScenarioRepository interface {
	// Create stores a new scenario
	Create(ctx context.Context, scenario *domain.Scenario) error

	// GetByID retrieves a scenario owned by a user.
	// Returns ErrNotFound when it does not exist or belongs to someone else.
	GetByID(ctx context.Context, userID string, id uuid.UUID) (*domain.Scenario, error)

	// ListByUser retrieves a user's scenarios, newest first
	ListByUser(ctx context.Context, userID string) ([]*domain.Scenario, error)

	// Delete removes a scenario owned by a user
	Delete(ctx context.Context, userID string, id uuid.UUID) error

	// DeleteOlderThan removes scenarios last updated before cutoff and returns how many were removed
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// CacheRepository stores serialized calculation results
type CacheRepository interface {
	// Get returns ErrCacheMiss when the key is absent or expired
	Get(ctx context.Context, key string) ([]byte, error)

	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Ping(ctx context.Context) error
}
