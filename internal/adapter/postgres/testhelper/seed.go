package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spoolkeep/spoolkeep-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// NewUserID returns a fresh owner ID. Inventory rows are keyed by user_id
// with no users table behind them, so a random UUID is a valid owner.
func NewUserID() uuid.UUID {
	return uuid.New()
}

// SeedFilament inserts a filament with sensible defaults and returns the
// persisted record.
func SeedFilament(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Filament {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)

	f := domain.Filament{
		UserID:              userID,
		Name:                "Test Spool " + suffix,
		Material:            "PLA",
		ColorName:           "Black",
		Diameter:            1.75,
		TotalWeight:         1,
		RemainingPercentage: 100,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO filaments (user_id, name, material, color_name, diameter,
		                        total_weight, remaining_percentage, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		f.UserID, f.Name, f.Material, f.ColorName, f.Diameter,
		f.TotalWeight, f.RemainingPercentage, f.CreatedAt, f.UpdatedAt,
	).Scan(&f.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedFilament insert: %v", err)
	}

	return f
}

// SeedManufacturer inserts a manufacturer and returns the persisted record.
func SeedManufacturer(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.NamedItem {
	t.Helper()
	return seedNamed(t, pool, "manufacturers", userID, "Maker "+uniqueSuffix())
}

// SeedMaterial inserts a material and returns the persisted record.
func SeedMaterial(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.NamedItem {
	t.Helper()
	return seedNamed(t, pool, "materials", userID, "Material "+uniqueSuffix())
}

// SeedStorageLocation inserts a storage location and returns the persisted record.
func SeedStorageLocation(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.NamedItem {
	t.Helper()
	return seedNamed(t, pool, "storage_locations", userID, "Shelf "+uniqueSuffix())
}

func seedNamed(t *testing.T, pool *pgxpool.Pool, table string, userID uuid.UUID, name string) domain.NamedItem {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.NamedItem{
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO `+table+` (user_id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		item.UserID, item.Name, item.CreatedAt, item.UpdatedAt,
	).Scan(&item.ID)
	if err != nil {
		t.Fatalf("testhelper: seed %s insert: %v", table, err)
	}

	return item
}

// SeedColor inserts a color and returns the persisted record.
func SeedColor(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Color {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Color{
		UserID:    userID,
		Name:      "Color " + uniqueSuffix(),
		Code:      "#1A2B3C",
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO colors (user_id, name, code, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		c.UserID, c.Name, c.Code, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedColor insert: %v", err)
	}

	return c
}

// SeedDiameter inserts a diameter and returns the persisted record.
func SeedDiameter(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, value float64) domain.Diameter {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	d := domain.Diameter{
		UserID:    userID,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO diameters (user_id, value, created_at, updated_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		d.UserID, d.Value, d.CreatedAt, d.UpdatedAt,
	).Scan(&d.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedDiameter insert: %v", err)
	}

	return d
}
