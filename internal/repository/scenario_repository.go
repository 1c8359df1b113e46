package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/segyhp/finance-planner/internal/domain"
)

// scenarioRow is the stored form of a scenario; payload holds the sealed inputs and result
type scenarioRow struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Kind      string    `db:"kind"`
	Name      string    `db:"name"`
	Payload   []byte    `db:"payload"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type scenarioRepository struct {
	db     *sqlx.DB
	sealer Sealer
}

func NewScenarioRepository(db *sqlx.DB, sealer Sealer) ScenarioRepository {
	if sealer == nil {
		sealer = plainSealer{}
	}
	return &scenarioRepository{db: db, sealer: sealer}
}

func (r *scenarioRepository) Create(ctx context.Context, scenario *domain.Scenario) error {
	if scenario.ID == uuid.Nil {
		scenario.ID = uuid.New()
	}

	now := time.Now().UTC()
	if scenario.CreatedAt.IsZero() {
		scenario.CreatedAt = now
	}
	scenario.UpdatedAt = now

	payload, err := json.Marshal(domain.ScenarioPayload{
		Inputs: scenario.Inputs,
		Result: scenario.Result,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal scenario payload: %w", err)
	}

	sealed, err := r.sealer.Seal(payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSeal, err)
	}

	query := r.db.Rebind(`
		INSERT INTO scenarios (id, user_id, kind, name, payload, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)

	_, err = r.db.ExecContext(ctx, query,
		scenario.ID.String(),
		scenario.UserID,
		scenario.Kind,
		scenario.Name,
		sealed,
		scenario.CreatedAt.UTC(),
		scenario.UpdatedAt,
	)

	return err
}

func (r *scenarioRepository) GetByID(ctx context.Context, userID string, id uuid.UUID) (*domain.Scenario, error) {
	query := r.db.Rebind(`
		SELECT id, user_id, kind, name, payload, created_at, updated_at
		FROM scenarios
		WHERE id = ? AND user_id = ?
	`)

	var row scenarioRow
	err := r.db.GetContext(ctx, &row, query, id.String(), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return r.toDomain(&row)
}

func (r *scenarioRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Scenario, error) {
	query := r.db.Rebind(`
		SELECT id, user_id, kind, name, payload, created_at, updated_at
		FROM scenarios
		WHERE user_id = ?
		ORDER BY created_at DESC, id
	`)

	var rows []scenarioRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, err
	}

	scenarios := make([]*domain.Scenario, 0, len(rows))
	for i := range rows {
		scenario, err := r.toDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, scenario)
	}

	return scenarios, nil
}

func (r *scenarioRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	query := r.db.Rebind(`DELETE FROM scenarios WHERE id = ? AND user_id = ?`)

	result, err := r.db.ExecContext(ctx, query, id.String(), userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *scenarioRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := r.db.Rebind(`DELETE FROM scenarios WHERE updated_at < ?`)

	result, err := r.db.ExecContext(ctx, query, cutoff.UTC())
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *scenarioRepository) toDomain(row *scenarioRow) (*domain.Scenario, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid scenario id %q: %w", row.ID, err)
	}

	raw, err := r.sealer.Open(row.Payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSeal, err)
	}

	var payload domain.ScenarioPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario payload: %w", err)
	}

	return &domain.Scenario{
		ID:        id,
		UserID:    row.UserID,
		Kind:      row.Kind,
		Name:      row.Name,
		Inputs:    payload.Inputs,
		Result:    payload.Result,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
