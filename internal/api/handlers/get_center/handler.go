package get_center

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Glow-BookingService/internal/api/handlers"
	"github.com/m04kA/Glow-BookingService/internal/service/catalog"
)

const (
	msgMissingSlug    = "Center slug is required."
	msgCenterNotFound = "Center not found."
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/centers/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if slug == "" {
		h.logger.Warn("GET /centers/{slug} - Missing slug")
		handlers.RespondBadRequest(w, msgMissingSlug)
		return
	}

	center, err := h.service.GetCenterBySlug(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrCenterNotFound):
			h.logger.Warn("GET /centers/{slug} - Center not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgCenterNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /centers/{slug} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingSlug)

		default:
			h.logger.Error("GET /centers/{slug} - Failed to get center: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /centers/{slug} - Center retrieved successfully: slug=%s", slug)
	handlers.RespondData(w, http.StatusOK, center)
}
