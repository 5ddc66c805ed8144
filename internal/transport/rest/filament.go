package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/spoolkeep/spoolkeep-backend/internal/bulk"
	"github.com/spoolkeep/spoolkeep-backend/internal/domain"
	"github.com/spoolkeep/spoolkeep-backend/internal/service/filament"
)

type filamentService interface {
	Create(ctx context.Context, input filament.CreateInput) (domain.Filament, error)
	Get(ctx context.Context, id int64) (domain.Filament, error)
	List(ctx context.Context) ([]domain.Filament, error)
	Update(ctx context.Context, id int64, patch domain.FilamentPatch) (domain.Filament, error)
	Delete(ctx context.Context, id int64) error
	Import(ctx context.Context, input filament.ImportInput) (bulk.Result, error)
	ExportCSV(ctx context.Context) (string, error)
	ExportJSON(ctx context.Context) ([]byte, error)
	BatchUpdate(ctx context.Context, input filament.BatchUpdateInput) (bulk.BatchResult[domain.Filament], error)
	BatchDelete(ctx context.Context, input filament.BatchDeleteInput) (bulk.BatchResult[int64], error)
}

// FilamentHandler serves the spool inventory endpoints.
type FilamentHandler struct {
	svc filamentService
	log *slog.Logger
}

// NewFilamentHandler creates a FilamentHandler.
func NewFilamentHandler(svc filamentService, logger *slog.Logger) *FilamentHandler {
	return &FilamentHandler{
		svc: svc,
		log: logger.With("handler", "filament"),
	}
}

// Routes returns the filament subrouter.
func (h *FilamentHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Post("/import", h.Import)
	r.Get("/export", h.Export)
	r.Post("/batch-update", h.BatchUpdate)
	r.Post("/batch-delete", h.BatchDelete)
	r.Get("/{id}", h.Get)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

// List handles GET /filaments.
func (h *FilamentHandler) List(w http.ResponseWriter, r *http.Request) {
	filaments, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, filaments)
}

// Create handles POST /filaments.
func (h *FilamentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input filament.CreateInput
	if !decodeBody(w, r, &input) {
		return
	}

	created, err := h.svc.Create(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Get handles GET /filaments/{id}.
func (h *FilamentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	f, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

// Update handles PATCH /filaments/{id}.
func (h *FilamentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var patch domain.FilamentPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, patch)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /filaments/{id}.
func (h *FilamentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

// Import handles POST /filaments/import.
func (h *FilamentHandler) Import(w http.ResponseWriter, r *http.Request) {
	var input filament.ImportInput
	if !decodeBody(w, r, &input) {
		return
	}

	res, err := h.svc.Import(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toImportResponse(res))
}

// Export handles GET /filaments/export?format=csv|json. CSV is the
// default format.
func (h *FilamentHandler) Export(w http.ResponseWriter, r *http.Request) {
	switch format := r.URL.Query().Get("format"); format {
	case "", "csv":
		doc, err := h.svc.ExportCSV(r.Context())
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		writeCSV(w, "filaments.csv", doc)
	case "json":
		data, err := h.svc.ExportJSON(r.Context())
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(data) //nolint:errcheck
	default:
		writeError(w, http.StatusBadRequest, "unsupported format: "+format)
	}
}

// BatchUpdate handles POST /filaments/batch-update.
func (h *FilamentHandler) BatchUpdate(w http.ResponseWriter, r *http.Request) {
	var input filament.BatchUpdateInput
	if !decodeBody(w, r, &input) {
		return
	}

	res, err := h.svc.BatchUpdate(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBatchUpdateResponse(res))
}

// BatchDelete handles POST /filaments/batch-delete.
func (h *FilamentHandler) BatchDelete(w http.ResponseWriter, r *http.Request) {
	var input filament.BatchDeleteInput
	if !decodeBody(w, r, &input) {
		return
	}

	res, err := h.svc.BatchDelete(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBatchDeleteResponse(res))
}
