package draft

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"onboard/internal/platform/metrics"
	dErrors "onboard/pkg/domain-errors"
	"onboard/pkg/platform/httputil"
	"onboard/pkg/platform/sentinel"
)

// maxDraftBytes bounds a draft payload; drafts hold form text, not files.
const maxDraftBytes = 1 << 20

// Handler exposes the draft slots over HTTP.
type Handler struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewHandler constructs the draft handler. metrics may be nil.
func NewHandler(store Store, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{store: store, logger: logger, metrics: m}
}

// Routes mounts the draft endpoints on a fresh router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{slot}", h.load)
	r.Put("/{slot}", h.save)
	r.Delete("/{slot}", h.clear)
	return r
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	slot, ok := h.slot(w, r)
	if !ok {
		return
	}

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxDraftBytes+1))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "could not read draft payload"))
		return
	}
	if len(payload) > maxDraftBytes {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "draft payload too large"))
		return
	}

	if err := h.store.Save(r.Context(), slot, payload); err != nil {
		h.logger.ErrorContext(r.Context(), "draft save failed", "slot", slot, "error", err)
		httputil.WriteError(w, dErrors.Wrap(dErrors.CodeUnavailable, "draft could not be saved", err))
		return
	}

	h.metrics.RecordDraftSave()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) {
	slot, ok := h.slot(w, r)
	if !ok {
		return
	}

	payload, err := h.store.Load(r.Context(), slot)
	if errors.Is(err, sentinel.ErrNotFound) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "no draft saved for this slot"))
		return
	}
	if err != nil {
		h.logger.ErrorContext(r.Context(), "draft load failed", "slot", slot, "error", err)
		httputil.WriteError(w, dErrors.Wrap(dErrors.CodeUnavailable, "draft could not be loaded", err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	slot, ok := h.slot(w, r)
	if !ok {
		return
	}

	if err := h.store.Clear(r.Context(), slot); err != nil {
		h.logger.ErrorContext(r.Context(), "draft clear failed", "slot", slot, "error", err)
		httputil.WriteError(w, dErrors.Wrap(dErrors.CodeUnavailable, "draft could not be cleared", err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) slot(w http.ResponseWriter, r *http.Request) (Slot, bool) {
	slot := Slot(chi.URLParam(r, "slot"))
	if !slot.Valid() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "unknown draft slot"))
		return "", false
	}
	return slot, true
}
