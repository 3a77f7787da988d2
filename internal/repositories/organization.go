package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"appointment-booking-api/internal/logger"
	"appointment-booking-api/internal/models"
)

// OrganizationReadRepository handles organization read operations.
// Every query is scoped to the owning user: a foreign id behaves like an absent id.
type OrganizationReadRepository struct {
	db *sqlx.DB
}

func NewOrganizationReadRepository(db *sqlx.DB) *OrganizationReadRepository {
	return &OrganizationReadRepository{db: db}
}

// GetByIDAndUser returns the organization owned by userID, or nil if absent
func (r *OrganizationReadRepository) GetByIDAndUser(ctx context.Context, id, userID int64) (*models.OrganizationDB, error) {
	const query = `
		SELECT id, name, user_id, created_at, updated_at
		FROM organizations
		WHERE id = $1 AND user_id = $2
	`

	var org models.OrganizationDB
	err := r.db.GetContext(ctx, &org, query, id, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &org, nil
}

// Exists reports whether an organization exists, regardless of owner.
// Appointment booking is organization-scoped, not owner-scoped.
func (r *OrganizationReadRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM organizations WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, id)

	logger.Log.Infow(
		"query", query,
		"args", []any{id},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// ListByUser returns the organizations owned by userID, oldest first
func (r *OrganizationReadRepository) ListByUser(ctx context.Context, userID int64, skip, limit int) ([]models.OrganizationDB, error) {
	const query = `
		SELECT id, name, user_id, created_at, updated_at
		FROM organizations
		WHERE user_id = $1
		ORDER BY id
		OFFSET $2 LIMIT $3
	`

	orgs := make([]models.OrganizationDB, 0)
	err := r.db.SelectContext(ctx, &orgs, query, userID, skip, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, skip, limit},
		"result", len(orgs),
		"error", err,
	)

	return orgs, err
}

// OrganizationWriteRepository handles organization write operations
type OrganizationWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewOrganizationWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *OrganizationWriteRepository {
	return &OrganizationWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new organization stamped with the owning user
func (r *OrganizationWriteRepository) Save(ctx context.Context, name string, userID int64) (*models.OrganizationDB, error) {
	const query = `
		INSERT INTO organizations (name, user_id, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, name, user_id, created_at, updated_at
	`

	var org models.OrganizationDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &org, query, name, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &org, nil
}

// UpdateName replaces the mutable name field and refreshes updated_at.
// Returns nil if the organization is not owned by userID.
func (r *OrganizationWriteRepository) UpdateName(ctx context.Context, id, userID int64, name string) (*models.OrganizationDB, error) {
	const query = `
		UPDATE organizations
		SET name = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, name, user_id, created_at, updated_at
	`

	var org models.OrganizationDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &org, query, id, userID, name)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, userID, name},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &org, nil
}

// Delete removes the organization owned by userID and returns its last state.
// Returns nil if the organization is not owned by userID.
func (r *OrganizationWriteRepository) Delete(ctx context.Context, id, userID int64) (*models.OrganizationDB, error) {
	const query = `
		DELETE FROM organizations
		WHERE id = $1 AND user_id = $2
		RETURNING id, name, user_id, created_at, updated_at
	`

	var org models.OrganizationDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &org, query, id, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}
	return executor
}
