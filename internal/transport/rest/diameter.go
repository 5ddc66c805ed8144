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

type diameterService interface {
	Create(ctx context.Context, input catalog.CreateDiameterInput) (domain.Diameter, error)
	Get(ctx context.Context, id int64) (domain.Diameter, error)
	List(ctx context.Context) ([]domain.Diameter, error)
	Update(ctx context.Context, id int64, patch domain.DiameterPatch) (domain.Diameter, error)
	Delete(ctx context.Context, id int64) error
	Import(ctx context.Context, input catalog.ImportInput) (bulk.Result, error)
	ExportCSV(ctx context.Context) (string, error)
	ExportJSON(ctx context.Context) ([]byte, error)
	BatchUpdate(ctx context.Context, input catalog.BatchUpdateDiameterInput) (bulk.BatchResult[domain.Diameter], error)
	BatchDelete(ctx context.Context, input catalog.BatchDeleteInput) (bulk.BatchResult[int64], error)
}

// DiameterHandler serves the diameter catalog endpoints.
type DiameterHandler struct {
	svc diameterService
	log *slog.Logger
}

// NewDiameterHandler creates a DiameterHandler.
func NewDiameterHandler(svc diameterService, logger *slog.Logger) *DiameterHandler {
	return &DiameterHandler{
		svc: svc,
		log: logger.With("handler", "diameter"),
	}
}

// Routes returns the diameter subrouter.
func (h *DiameterHandler) Routes() chi.Router {
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

func (h *DiameterHandler) List(w http.ResponseWriter, r *http.Request) {
	diameters, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, diameters)
}

func (h *DiameterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input catalog.CreateDiameterInput
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

func (h *DiameterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	d, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *DiameterHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var patch domain.DiameterPatch
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

func (h *DiameterHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func (h *DiameterHandler) Import(w http.ResponseWriter, r *http.Request) {
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

func (h *DiameterHandler) Export(w http.ResponseWriter, r *http.Request) {
	switch format := r.URL.Query().Get("format"); format {
	case "", "csv":
		doc, err := h.svc.ExportCSV(r.Context())
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		writeCSV(w, "diameters.csv", doc)
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

func (h *DiameterHandler) BatchUpdate(w http.ResponseWriter, r *http.Request) {
	var input catalog.BatchUpdateDiameterInput
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

func (h *DiameterHandler) BatchDelete(w http.ResponseWriter, r *http.Request) {
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
