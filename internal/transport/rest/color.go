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

type colorService interface {
	Create(ctx context.Context, input catalog.CreateColorInput) (domain.Color, error)
	Get(ctx context.Context, id int64) (domain.Color, error)
	List(ctx context.Context) ([]domain.Color, error)
	Update(ctx context.Context, id int64, patch domain.ColorPatch) (domain.Color, error)
	Delete(ctx context.Context, id int64) error
	Import(ctx context.Context, input catalog.ImportInput) (bulk.Result, error)
	ExportCSV(ctx context.Context) (string, error)
	ExportJSON(ctx context.Context) ([]byte, error)
	BatchUpdate(ctx context.Context, input catalog.BatchUpdateColorInput) (bulk.BatchResult[domain.Color], error)
	BatchDelete(ctx context.Context, input catalog.BatchDeleteInput) (bulk.BatchResult[int64], error)
}

// ColorHandler serves the color catalog endpoints.
type ColorHandler struct {
	svc colorService
	log *slog.Logger
}

// NewColorHandler creates a ColorHandler.
func NewColorHandler(svc colorService, logger *slog.Logger) *ColorHandler {
	return &ColorHandler{
		svc: svc,
		log: logger.With("handler", "color"),
	}
}

// Routes returns the color subrouter.
func (h *ColorHandler) Routes() chi.Router {
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

func (h *ColorHandler) List(w http.ResponseWriter, r *http.Request) {
	colors, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, colors)
}

func (h *ColorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input catalog.CreateColorInput
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

func (h *ColorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ColorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var patch domain.ColorPatch
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

func (h *ColorHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func (h *ColorHandler) Import(w http.ResponseWriter, r *http.Request) {
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

func (h *ColorHandler) Export(w http.ResponseWriter, r *http.Request) {
	switch format := r.URL.Query().Get("format"); format {
	case "", "csv":
		doc, err := h.svc.ExportCSV(r.Context())
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		writeCSV(w, "colors.csv", doc)
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

func (h *ColorHandler) BatchUpdate(w http.ResponseWriter, r *http.Request) {
	var input catalog.BatchUpdateColorInput
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

func (h *ColorHandler) BatchDelete(w http.ResponseWriter, r *http.Request) {
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
