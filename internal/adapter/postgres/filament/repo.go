// Package filament implements the Filament repository using PostgreSQL.
// Queries are built with squirrel and executed through pgx.
package filament

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

const table = "filaments"

var columns = []string{
	"id", "user_id", "name", "material", "color_name", "color_code",
	"manufacturer", "diameter", "total_weight", "remaining_percentage",
	"location", "price", "purchase_date", "opened_date", "last_dried_date",
	"dryer_count", "lot_number", "notes", "created_at", "updated_at",
}

// Repo provides filament persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

// New creates a new filament repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a filament by primary key filtered by user_id.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID, id int64) (domain.Filament, error) {
	sql, args, err := r.qb.Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return domain.Filament{}, fmt.Errorf("build get filament query: %w", err)
	}

	querier := r.pool

	f, err := scanFilament(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Filament{}, postgres.MapError(err, "filament", id)
	}

	return f, nil
}

// List returns all filaments belonging to a user, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.Filament, error) {
	sql, args, err := r.qb.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list filaments query: %w", err)
	}

	querier := r.pool

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list filaments: %w", err)
	}
	defer rows.Close()

	filaments, err := scanFilaments(rows)
	if err != nil {
		return nil, fmt.Errorf("list filaments: %w", err)
	}

	return filaments, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new filament and returns the persisted record.
func (r *Repo) Create(ctx context.Context, f domain.Filament) (domain.Filament, error) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	sql, args, err := r.qb.Insert(table).
		Columns("user_id", "name", "material", "color_name", "color_code",
			"manufacturer", "diameter", "total_weight", "remaining_percentage",
			"location", "price", "purchase_date", "opened_date", "last_dried_date",
			"dryer_count", "lot_number", "notes", "created_at", "updated_at").
		Values(f.UserID, f.Name, f.Material, f.ColorName, f.ColorCode,
			f.Manufacturer, f.Diameter, f.TotalWeight, f.RemainingPercentage,
			f.Location, f.Price, f.PurchaseDate, f.OpenedDate, f.LastDriedDate,
			f.DryerCount, f.LotNumber, f.Notes, now, now).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return domain.Filament{}, fmt.Errorf("build create filament query: %w", err)
	}

	querier := r.pool

	created, err := scanFilament(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Filament{}, postgres.MapError(err, "filament", 0)
	}

	return created, nil
}

// Update applies a partial patch to a filament. Only non-nil patch fields
// change; updated_at is always bumped. Returns domain.ErrNotFound if the
// filament does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID uuid.UUID, id int64, patch domain.FilamentPatch) (domain.Filament, error) {
	b := r.qb.Update(table).
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond))

	if patch.Name != nil {
		b = b.Set("name", *patch.Name)
	}
	if patch.Material != nil {
		b = b.Set("material", *patch.Material)
	}
	if patch.ColorName != nil {
		b = b.Set("color_name", *patch.ColorName)
	}
	if patch.ColorCode != nil {
		b = b.Set("color_code", *patch.ColorCode)
	}
	if patch.Manufacturer != nil {
		b = b.Set("manufacturer", *patch.Manufacturer)
	}
	if patch.Diameter != nil {
		b = b.Set("diameter", *patch.Diameter)
	}
	if patch.TotalWeight != nil {
		b = b.Set("total_weight", *patch.TotalWeight)
	}
	if patch.RemainingPercentage != nil {
		b = b.Set("remaining_percentage", *patch.RemainingPercentage)
	}
	if patch.Location != nil {
		b = b.Set("location", *patch.Location)
	}
	if patch.Price != nil {
		b = b.Set("price", *patch.Price)
	}
	if patch.PurchaseDate != nil {
		b = b.Set("purchase_date", *patch.PurchaseDate)
	}
	if patch.OpenedDate != nil {
		b = b.Set("opened_date", *patch.OpenedDate)
	}
	if patch.LastDriedDate != nil {
		b = b.Set("last_dried_date", *patch.LastDriedDate)
	}
	if patch.DryerCount != nil {
		b = b.Set("dryer_count", *patch.DryerCount)
	}
	if patch.LotNumber != nil {
		b = b.Set("lot_number", *patch.LotNumber)
	}
	if patch.Notes != nil {
		b = b.Set("notes", *patch.Notes)
	}

	sql, args, err := b.
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return domain.Filament{}, fmt.Errorf("build update filament query: %w", err)
	}

	querier := r.pool

	updated, err := scanFilament(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Filament{}, postgres.MapError(err, "filament", id)
	}

	return updated, nil
}

// Delete removes a filament by ID. Returns false when the filament does not
// exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, id int64) (bool, error) {
	sql, args, err := r.qb.Delete(table).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete filament query: %w", err)
	}

	querier := r.pool

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "filament", id)
	}

	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func joinColumns() string {
	s := columns[0]
	for _, c := range columns[1:] {
		s += ", " + c
	}
	return s
}

// scanFilament scans a single filament row.
func scanFilament(row pgx.Row) (domain.Filament, error) {
	var f domain.Filament

	if err := row.Scan(
		&f.ID, &f.UserID, &f.Name, &f.Material, &f.ColorName, &f.ColorCode,
		&f.Manufacturer, &f.Diameter, &f.TotalWeight, &f.RemainingPercentage,
		&f.Location, &f.Price, &f.PurchaseDate, &f.OpenedDate, &f.LastDriedDate,
		&f.DryerCount, &f.LotNumber, &f.Notes, &f.CreatedAt, &f.UpdatedAt,
	); err != nil {
		return domain.Filament{}, err
	}

	return f, nil
}

// scanFilaments scans multiple rows into a domain.Filament slice.
func scanFilaments(rows pgx.Rows) ([]domain.Filament, error) {
	var filaments []domain.Filament
	for rows.Next() {
		f, err := scanFilament(rows)
		if err != nil {
			return nil, err
		}
		filaments = append(filaments, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if filaments == nil {
		filaments = []domain.Filament{}
	}

	return filaments, nil
}
