package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/spoolkeep/spoolkeep-backend/internal/bulk"
	"github.com/spoolkeep/spoolkeep-backend/internal/domain"
	"github.com/spoolkeep/spoolkeep-backend/internal/service/catalog"
)

type namedService interface {
	Create(ctx context.Context, input catalog.CreateNamedInput) (domain.NamedItem, error)
	Get(ctx context.Context, id int64) (domain.NamedItem, error)
	List(ctx context.Context) ([]domain.NamedItem, error)
	Update(ctx context.Context, id int64, patch domain.NamedItemPatch) (domain.NamedItem, error)
	Delete(ctx context.Context, id int64) error
	Import(ctx context.Context, input catalog.ImportInput) (bulk.Result, error)
	ExportCSV(ctx context.Context) (string, error)
	ExportJSON(ctx context.Context) ([]byte, error)
	BatchUpdate(ctx context.Context, input catalog.BatchUpdateNamedInput) (bulk.BatchResult[domain.NamedItem], error)
	BatchDelete(ctx context.Context, input catalog.BatchDeleteInput) (bulk.BatchResult[int64], error)
}

// NamedHandler serves one name-only catalog: manufacturers, materials,
// or storage locations. The three mount the same handler with different
// services.
type NamedHandler struct {
	svc    namedService
	log    *slog.Logger
	entity string
}

// NewNamedHandler creates a NamedHandler. entity names the kind in logs
// and export filenames ("manufacturer", "material", "storage-location").
func NewNamedHandler(svc namedService, logger *slog.Logger, entity string) *NamedHandler {
	return &NamedHandler{
		svc:    svc,
		log:    logger.With("handler", entity),
		entity: entity,
	}
}

// Routes returns the catalog subrouter.
func (h *NamedHandler) Routes() chi.Router {
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

func (h *NamedHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *NamedHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input catalog.CreateNamedInput
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

func (h *NamedHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *NamedHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var patch domain.NamedItemPatch
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

func (h *NamedHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func (h *NamedHandler) Import(w http.ResponseWriter, r *http.Request) {
	var input catalog.ImportInput
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

func (h *NamedHandler) Export(w http.ResponseWriter, r *http.Request) {
	switch format := r.URL.Query().Get("format"); format {
	case "", "csv":
		doc, err := h.svc.ExportCSV(r.Context())
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		writeCSV(w, h.entity+"s.csv", doc)
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

func (h *NamedHandler) BatchUpdate(w http.ResponseWriter, r *http.Request) {
	var input catalog.BatchUpdateNamedInput
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

func (h *NamedHandler) BatchDelete(w http.ResponseWriter, r *http.Request) {
	var input catalog.BatchDeleteInput
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
