//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	pgcatalog "github.com/spoolkeep/spoolkeep-backend/internal/adapter/postgres/catalog"
	pgfilament "github.com/spoolkeep/spoolkeep-backend/internal/adapter/postgres/filament"
	"github.com/spoolkeep/spoolkeep-backend/internal/adapter/postgres/testhelper"
	authpkg "github.com/spoolkeep/spoolkeep-backend/internal/auth"
	"github.com/spoolkeep/spoolkeep-backend/internal/config"
	"github.com/spoolkeep/spoolkeep-backend/internal/service/catalog"
	"github.com/spoolkeep/spoolkeep-backend/internal/service/filament"
	"github.com/spoolkeep/spoolkeep-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// setupTestServer builds the complete application over a containerized
// database: real repositories, real services, the production router.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	inv := config.InventoryConfig{
		ImportMaxRows: 10000,
		ExportMaxRows: 10000,
		BatchMaxIDs:   500,
	}

	jwt := authpkg.NewJWTManager(
		"e2e-test-secret-key-0123456789abcdef", "spoolkeep", 15*time.Minute)

	handlers := rest.Handlers{
		Health:           rest.NewHealthHandler(pool, "e2e"),
		Filaments:        rest.NewFilamentHandler(filament.NewService(logger, pgfilament.New(pool), inv), logger),
		Manufacturers:    rest.NewNamedHandler(catalog.NewNamedSet(logger, pgcatalog.NewManufacturers(pool), "manufacturer", inv), logger, "manufacturer"),
		Materials:        rest.NewNamedHandler(catalog.NewNamedSet(logger, pgcatalog.NewMaterials(pool), "material", inv), logger, "material"),
		StorageLocations: rest.NewNamedHandler(catalog.NewNamedSet(logger, pgcatalog.NewStorageLocations(pool), "storage-location", inv), logger, "storage-location"),
		Colors:           rest.NewColorHandler(catalog.NewColorSet(logger, pgcatalog.NewColors(pool), inv), logger),
		Diameters:        rest.NewDiameterHandler(catalog.NewDiameterSet(logger, pgcatalog.NewDiameters(pool), inv), logger),
	}

	router := rest.NewRouter(handlers, jwt, logger, config.CORSConfig{AllowedOrigins: "*"})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwt,
	}
}

// newUser mints a token for a fresh owner. There is no users table:
// any UUID is a valid owner, which keeps E2E runs isolated from each
// other for free.
func (ts *testServer) newUser(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	userID := uuid.New()
	token, err := ts.jwt.GenerateAccessToken(userID)
	require.NoError(t, err)
	return userID, token
}

// doJSON issues an authenticated JSON request and decodes the response
// body into a generic map. An empty token sends the request anonymously.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

// doJSONList is doJSON for endpoints that return a top-level array.
func (ts *testServer) doJSONList(t *testing.T, method, path, token string) (int, []map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

// getRaw issues an authenticated GET and returns the raw body, for the
// export endpoints.
func (ts *testServer) getRaw(t *testing.T, path, token string) (int, http.Header, string) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header, string(raw)
}
