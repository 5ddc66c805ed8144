// Command import bulk-loads an inventory file straight into PostgreSQL,
// bypassing the HTTP API. It reads a CSV or JSON file, runs it through
// the same import pipeline the API uses, and prints the aggregate result.
//
// Flags:
//
//	--user    owner UUID the imported records belong to (required)
//	--entity  filament|manufacturer|material|storage-location|color|diameter
//	--file    path to the CSV or JSON file (required)
//	--format  csv|json (default: inferred from the file extension)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spoolkeep/spoolkeep-backend/internal/adapter/postgres"
	pgcatalog "github.com/spoolkeep/spoolkeep-backend/internal/adapter/postgres/catalog"
	pgfilament "github.com/spoolkeep/spoolkeep-backend/internal/adapter/postgres/filament"
	"github.com/spoolkeep/spoolkeep-backend/internal/app"
	"github.com/spoolkeep/spoolkeep-backend/internal/bulk"
	"github.com/spoolkeep/spoolkeep-backend/internal/config"
	"github.com/spoolkeep/spoolkeep-backend/internal/service/catalog"
	"github.com/spoolkeep/spoolkeep-backend/internal/service/filament"
	"github.com/spoolkeep/spoolkeep-backend/pkg/ctxutil"
)

func main() {
	userFlag := flag.String("user", "", "owner UUID the imported records belong to")
	entityFlag := flag.String("entity", "filament", "entity kind to import")
	fileFlag := flag.String("file", "", "path to the CSV or JSON file")
	formatFlag := flag.String("format", "", "csv or json (default: inferred from extension)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		logger.Error("--user must be a valid UUID", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *fileFlag == "" {
		logger.Error("--file is required")
		os.Exit(1)
	}

	format := *formatFlag
	if format == "" {
		format = inferFormat(*fileFlag)
	}
	if format != "csv" && format != "json" {
		logger.Error("unsupported format", slog.String("format", format))
		os.Exit(1)
	}

	raw, err := os.ReadFile(*fileFlag)
	if err != nil {
		logger.Error("read file", slog.String("error", err.Error()))
		os.Exit(1)
	}
	data := string(raw)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	ctx = ctxutil.WithUserID(ctx, userID)

	res, err := runImport(ctx, logger, pool, cfg.Inventory, *entityFlag, format, data)
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import finished",
		slog.String("entity", *entityFlag),
		slog.Int("created", res.Created),
		slog.Int("duplicates", res.Duplicates),
		slog.Int("errors", res.Errors),
	)
}

func runImport(ctx context.Context, logger *slog.Logger, pool *pgxpool.Pool, inv config.InventoryConfig, entity, format, data string) (bulk.Result, error) {
	var input catalog.ImportInput
	if format == "csv" {
		input.CSVData = &data
	} else {
		input.JSONData = &data
	}

	switch entity {
	case "filament":
		in := filament.ImportInput{CSVData: input.CSVData, JSONData: input.JSONData}
		return filament.NewService(logger, pgfilament.New(pool), inv).Import(ctx, in)
	case "manufacturer":
		return catalog.NewNamedSet(logger, pgcatalog.NewManufacturers(pool), "manufacturer", inv).Import(ctx, input)
	case "material":
		return catalog.NewNamedSet(logger, pgcatalog.NewMaterials(pool), "material", inv).Import(ctx, input)
	case "storage-location":
		return catalog.NewNamedSet(logger, pgcatalog.NewStorageLocations(pool), "storage-location", inv).Import(ctx, input)
	case "color":
		return catalog.NewColorSet(logger, pgcatalog.NewColors(pool), inv).Import(ctx, input)
	case "diameter":
		return catalog.NewDiameterSet(logger, pgcatalog.NewDiameters(pool), inv).Import(ctx, input)
	default:
		return bulk.Result{}, fmt.Errorf("unknown entity %q", entity)
	}
}

func inferFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	default:
		return "csv"
	}
}
