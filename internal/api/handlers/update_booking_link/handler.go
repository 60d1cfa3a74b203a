package update_booking_link

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/tenants"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingTenantID    = "отсутствует ID тенанта"
	msgInvalidSlug        = "ссылка должна быть не короче 3 символов и содержать только строчные буквы, цифры и дефисы"
	msgSlugTaken          = "эта ссылка уже занята"
	msgTenantNotFound     = "аккаунт не найден"
)

// UpdateBookingLinkRequest HTTP request model
type UpdateBookingLinkRequest struct {
	Slug string `json:"slug"`
}

// UpdateBookingLinkResponse HTTP response model
type UpdateBookingLinkResponse struct {
	Slug string `json:"slug"`
}

type Handler struct {
	service TenantsService
	logger  Logger
}

func NewHandler(service TenantsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/booking-link
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("PUT /booking-link - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	var req UpdateBookingLinkRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /booking-link - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slug, err := h.service.UpdateSlug(r.Context(), tenantID, req.Slug)
	if err != nil {
		switch {
		case errors.Is(err, tenants.ErrInvalidSlug):
			h.logger.Warn("PUT /booking-link - Invalid slug %q: tenant_id=%s", req.Slug, tenantID)
			handlers.RespondBadRequest(w, msgInvalidSlug)

		case errors.Is(err, tenants.ErrSlugTaken):
			h.logger.Warn("PUT /booking-link - Slug taken %q: tenant_id=%s", req.Slug, tenantID)
			handlers.RespondConflict(w, msgSlugTaken)

		case errors.Is(err, tenants.ErrTenantNotFound):
			h.logger.Warn("PUT /booking-link - Tenant not found: tenant_id=%s", tenantID)
			handlers.RespondNotFound(w, msgTenantNotFound)

		default:
			h.logger.Error("PUT /booking-link - Failed to update slug: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /booking-link - Slug updated: tenant_id=%s, slug=%s", tenantID, slug)
	handlers.RespondJSON(w, http.StatusOK, &UpdateBookingLinkResponse{Slug: slug})
}
