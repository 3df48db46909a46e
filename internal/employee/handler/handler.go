// Package handler exposes the employee submission endpoint. It parses the
// multipart form into a snapshot, hands it to the submission service, and
// clears the draft slots once the submission fully completes.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"onboard/internal/draft"
	"onboard/internal/employee/service"
	"onboard/pkg/platform/httputil"
)

// Handler serves the employee submission routes.
type Handler struct {
	service *service.Service
	drafts  draft.Store
	logger  *slog.Logger
}

// New constructs the employee handler. drafts may be nil when no draft store
// is configured.
func New(svc *service.Service, drafts draft.Store, logger *slog.Logger) *Handler {
	return &Handler{service: svc, drafts: drafts, logger: logger}
}

// Routes mounts the employee endpoints on a fresh router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.submit)
	return r
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	snap, err := parseSubmission(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.service.Submit(r.Context(), snap)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	// Drafts are cleared only after the whole pipeline succeeded; a failed
	// clear is logged and swallowed so it never masks the accepted result.
	if h.drafts != nil {
		for _, slot := range draft.Slots {
			if err := h.drafts.Clear(r.Context(), slot); err != nil {
				h.logger.WarnContext(r.Context(), "draft clear after submission failed", "slot", slot, "error", err)
			}
		}
	}

	httputil.WriteJSON(w, http.StatusCreated, result)
}
