package catalog

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/spoolkeep/spoolkeep-backend/internal/adapter/postgres"
	"github.com/spoolkeep/spoolkeep-backend/internal/domain"
)

const diameterColumns = "id, user_id, value, created_at, updated_at"

// DiameterRepo provides diameter persistence backed by PostgreSQL.
type DiameterRepo struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

// NewDiameters creates the diameter repository.
func NewDiameters(pool *pgxpool.Pool) *DiameterRepo {
	return &DiameterRepo{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// GetByID returns a diameter by primary key filtered by user_id.
func (r *DiameterRepo) GetByID(ctx context.Context, userID uuid.UUID, id int64) (domain.Diameter, error) {
	sql, args, err := r.qb.Select("id", "user_id", "value", "created_at", "updated_at").
		From("diameters").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return domain.Diameter{}, fmt.Errorf("build get diameter query: %w", err)
	}

	querier := r.pool

	d, err := scanDiameter(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Diameter{}, postgres.MapError(err, "diameter", id)
	}

	return d, nil
}

// List returns all diameters belonging to a user, smallest first.
func (r *DiameterRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.Diameter, error) {
	sql, args, err := r.qb.Select("id", "user_id", "value", "created_at", "updated_at").
		From("diameters").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("value ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list diameters query: %w", err)
	}

	querier := r.pool

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list diameters: %w", err)
	}
	defer rows.Close()

	diameters, err := scanDiameters(rows)
	if err != nil {
		return nil, fmt.Errorf("list diameters: %w", err)
	}

	return diameters, nil
}

// Create inserts a new diameter and returns the persisted record.
// A value already present for the user results in domain.ErrAlreadyExists.
func (r *DiameterRepo) Create(ctx context.Context, d domain.Diameter) (domain.Diameter, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	sql, args, err := r.qb.Insert("diameters").
		Columns("user_id", "value", "created_at", "updated_at").
		Values(d.UserID, d.Value, now, now).
		Suffix("RETURNING " + diameterColumns).
		ToSql()
	if err != nil {
		return domain.Diameter{}, fmt.Errorf("build create diameter query: %w", err)
	}

	querier := r.pool

	created, err := scanDiameter(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Diameter{}, postgres.MapError(err, "diameter", 0)
	}

	return created, nil
}

// Update applies a partial patch to a diameter.
func (r *DiameterRepo) Update(ctx context.Context, userID uuid.UUID, id int64, patch domain.DiameterPatch) (domain.Diameter, error) {
	b := r.qb.Update("diameters").
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond))

	if patch.Value != nil {
		b = b.Set("value", *patch.Value)
	}

	sql, args, err := b.
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + diameterColumns).
		ToSql()
	if err != nil {
		return domain.Diameter{}, fmt.Errorf("build update diameter query: %w", err)
	}

	querier := r.pool

	updated, err := scanDiameter(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Diameter{}, postgres.MapError(err, "diameter", id)
	}

	return updated, nil
}

// Delete removes a diameter by ID. Returns false when the diameter does not
// exist or belongs to another user.
func (r *DiameterRepo) Delete(ctx context.Context, userID uuid.UUID, id int64) (bool, error) {
	sql, args, err := r.qb.Delete("diameters").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete diameter query: %w", err)
	}

	querier := r.pool

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "diameter", id)
	}

	return tag.RowsAffected() > 0, nil
}

func scanDiameter(row pgx.Row) (domain.Diameter, error) {
	var d domain.Diameter
	if err := row.Scan(&d.ID, &d.UserID, &d.Value, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return domain.Diameter{}, err
	}
	return d, nil
}

func scanDiameters(rows pgx.Rows) ([]domain.Diameter, error) {
	var diameters []domain.Diameter
	for rows.Next() {
		d, err := scanDiameter(rows)
		if err != nil {
			return nil, err
		}
		diameters = append(diameters, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if diameters == nil {
		diameters = []domain.Diameter{}
	}

	return diameters, nil
}
