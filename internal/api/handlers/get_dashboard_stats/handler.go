package get_dashboard_stats

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/accounts"
)

const (
	msgMissingTenantID = "отсутствует ID тенанта"
	msgTenantNotFound  = "аккаунт не найден"
)

// DashboardStatsResponse HTTP response model
type DashboardStatsResponse struct {
	TotalAppointments   int `json:"totalAppointments"`
	PendingAppointments int `json:"pendingAppointments"`
	TotalServices       int `json:"totalServices"`
	TrialDaysLeft       int `json:"trialDaysLeft"`
}

type Handler struct {
	service AccountsService
	logger  Logger
}

func NewHandler(service AccountsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("GET /dashboard - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	stats, err := h.service.GetDashboardStats(r.Context(), tenantID)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrTenantNotFound):
			h.logger.Warn("GET /dashboard - Tenant not found: tenant_id=%s", tenantID)
			handlers.RespondNotFound(w, msgTenantNotFound)

		default:
			h.logger.Error("GET /dashboard - Failed to get stats: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &DashboardStatsResponse{
		TotalAppointments:   stats.TotalAppointments,
		PendingAppointments: stats.PendingAppointments,
		TotalServices:       stats.TotalServices,
		TrialDaysLeft:       stats.TrialDaysLeft,
	})
}
