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

const colorColumns = "id, user_id, name, code, created_at, updated_at"

// ColorRepo provides color persistence backed by PostgreSQL.
type ColorRepo struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

// NewColors creates the color repository.
func NewColors(pool *pgxpool.Pool) *ColorRepo {
	return &ColorRepo{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// GetByID returns a color by primary key filtered by user_id.
func (r *ColorRepo) GetByID(ctx context.Context, userID uuid.UUID, id int64) (domain.Color, error) {
	sql, args, err := r.qb.Select("id", "user_id", "name", "code", "created_at", "updated_at").
		From("colors").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return domain.Color{}, fmt.Errorf("build get color query: %w", err)
	}

	querier := r.pool

	c, err := scanColor(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Color{}, postgres.MapError(err, "color", id)
	}

	return c, nil
}

// List returns all colors belonging to a user, ordered by name.
func (r *ColorRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.Color, error) {
	sql, args, err := r.qb.Select("id", "user_id", "name", "code", "created_at", "updated_at").
		From("colors").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("lower(name) ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list colors query: %w", err)
	}

	querier := r.pool

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}
	defer rows.Close()

	colors, err := scanColors(rows)
	if err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}

	return colors, nil
}

// Create inserts a new color and returns the persisted record.
// A (name, code) pair already present for the user results in
// domain.ErrAlreadyExists.
func (r *ColorRepo) Create(ctx context.Context, c domain.Color) (domain.Color, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	sql, args, err := r.qb.Insert("colors").
		Columns("user_id", "name", "code", "created_at", "updated_at").
		Values(c.UserID, c.Name, c.Code, now, now).
		Suffix("RETURNING " + colorColumns).
		ToSql()
	if err != nil {
		return domain.Color{}, fmt.Errorf("build create color query: %w", err)
	}

	querier := r.pool

	created, err := scanColor(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Color{}, postgres.MapError(err, "color", 0)
	}

	return created, nil
}

// Update applies a partial patch to a color.
func (r *ColorRepo) Update(ctx context.Context, userID uuid.UUID, id int64, patch domain.ColorPatch) (domain.Color, error) {
	b := r.qb.Update("colors").
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond))

	if patch.Name != nil {
		b = b.Set("name", *patch.Name)
	}
	if patch.Code != nil {
		b = b.Set("code", *patch.Code)
	}

	sql, args, err := b.
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + colorColumns).
		ToSql()
	if err != nil {
		return domain.Color{}, fmt.Errorf("build update color query: %w", err)
	}

	querier := r.pool

	updated, err := scanColor(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Color{}, postgres.MapError(err, "color", id)
	}

	return updated, nil
}

// Delete removes a color by ID. Returns false when the color does not exist
// or belongs to another user.
func (r *ColorRepo) Delete(ctx context.Context, userID uuid.UUID, id int64) (bool, error) {
	sql, args, err := r.qb.Delete("colors").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete color query: %w", err)
	}

	querier := r.pool

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "color", id)
	}

	return tag.RowsAffected() > 0, nil
}

func scanColor(row pgx.Row) (domain.Color, error) {
	var c domain.Color
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Code, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return domain.Color{}, err
	}
	return c, nil
}

func scanColors(rows pgx.Rows) ([]domain.Color, error) {
	var colors []domain.Color
	for rows.Next() {
		c, err := scanColor(rows)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if colors == nil {
		colors = []domain.Color{}
	}

	return colors, nil
}
