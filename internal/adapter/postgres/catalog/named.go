// Package catalog implements the catalog repositories (manufacturers,
// materials, storage locations, colors, diameters) using PostgreSQL.
// Manufacturers, materials and storage locations share one name-only
// shape, so a single table-parameterized repo serves all three.
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

// NamedRepo provides persistence for one name-only catalog table.
type NamedRepo struct {
	pool   *pgxpool.Pool
	qb     sq.StatementBuilderType
	table  string
	entity string
}

// NewManufacturers creates the manufacturer repository.
func NewManufacturers(pool *pgxpool.Pool) *NamedRepo {
	return newNamed(pool, "manufacturers", "manufacturer")
}

// NewMaterials creates the material repository.
func NewMaterials(pool *pgxpool.Pool) *NamedRepo {
	return newNamed(pool, "materials", "material")
}

// NewStorageLocations creates the storage location repository.
func NewStorageLocations(pool *pgxpool.Pool) *NamedRepo {
	return newNamed(pool, "storage_locations", "storage location")
}

func newNamed(pool *pgxpool.Pool, table, entity string) *NamedRepo {
	return &NamedRepo{
		pool:   pool,
		qb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		table:  table,
		entity: entity,
	}
}

const namedColumns = "id, user_id, name, created_at, updated_at"

// GetByID returns an item by primary key filtered by user_id.
func (r *NamedRepo) GetByID(ctx context.Context, userID uuid.UUID, id int64) (domain.NamedItem, error) {
	sql, args, err := r.qb.Select("id", "user_id", "name", "created_at", "updated_at").
		From(r.table).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return domain.NamedItem{}, fmt.Errorf("build get %s query: %w", r.entity, err)
	}

	querier := r.pool

	item, err := scanNamedItem(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.NamedItem{}, postgres.MapError(err, r.entity, id)
	}

	return item, nil
}

// List returns all items belonging to a user, ordered by name.
func (r *NamedRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.NamedItem, error) {
	sql, args, err := r.qb.Select("id", "user_id", "name", "created_at", "updated_at").
		From(r.table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("lower(name) ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s query: %w", r.entity, err)
	}

	querier := r.pool

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.entity, err)
	}
	defer rows.Close()

	items, err := scanNamedItems(rows)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.entity, err)
	}

	return items, nil
}

// Create inserts a new item and returns the persisted record.
// A name already present for the user results in domain.ErrAlreadyExists.
func (r *NamedRepo) Create(ctx context.Context, item domain.NamedItem) (domain.NamedItem, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	sql, args, err := r.qb.Insert(r.table).
		Columns("user_id", "name", "created_at", "updated_at").
		Values(item.UserID, item.Name, now, now).
		Suffix("RETURNING " + namedColumns).
		ToSql()
	if err != nil {
		return domain.NamedItem{}, fmt.Errorf("build create %s query: %w", r.entity, err)
	}

	querier := r.pool

	created, err := scanNamedItem(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.NamedItem{}, postgres.MapError(err, r.entity, 0)
	}

	return created, nil
}

// Update applies a partial patch. Returns domain.ErrNotFound if the item
// does not exist or belongs to another user.
func (r *NamedRepo) Update(ctx context.Context, userID uuid.UUID, id int64, patch domain.NamedItemPatch) (domain.NamedItem, error) {
	b := r.qb.Update(r.table).
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond))

	if patch.Name != nil {
		b = b.Set("name", *patch.Name)
	}

	sql, args, err := b.
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + namedColumns).
		ToSql()
	if err != nil {
		return domain.NamedItem{}, fmt.Errorf("build update %s query: %w", r.entity, err)
	}

	querier := r.pool

	updated, err := scanNamedItem(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.NamedItem{}, postgres.MapError(err, r.entity, id)
	}

	return updated, nil
}

// Delete removes an item by ID. Returns false when the item does not exist
// or belongs to another user.
func (r *NamedRepo) Delete(ctx context.Context, userID uuid.UUID, id int64) (bool, error) {
	sql, args, err := r.qb.Delete(r.table).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete %s query: %w", r.entity, err)
	}

	querier := r.pool

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, r.entity, id)
	}

	return tag.RowsAffected() > 0, nil
}

func scanNamedItem(row pgx.Row) (domain.NamedItem, error) {
	var item domain.NamedItem
	if err := row.Scan(&item.ID, &item.UserID, &item.Name, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return domain.NamedItem{}, err
	}
	return item, nil
}

func scanNamedItems(rows pgx.Rows) ([]domain.NamedItem, error) {
	var items []domain.NamedItem
	for rows.Next() {
		item, err := scanNamedItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if items == nil {
		items = []domain.NamedItem{}
	}

	return items, nil
}
