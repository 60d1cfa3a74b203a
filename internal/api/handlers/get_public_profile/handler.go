package get_public_profile

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/tenants"
)

const msgTenantNotFound = "бизнес не найден"

// PublicServiceResponse HTTP модель услуги в публичной витрине
type PublicServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// PublicDayHoursResponse HTTP модель часов работы одного дня
type PublicDayHoursResponse struct {
	DayOfWeek int    `json:"dayOfWeek"`
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime,omitempty"`
	CloseTime string `json:"closeTime,omitempty"`
}

// PublicProfileResponse HTTP response model
type PublicProfileResponse struct {
	BusinessName  string                   `json:"businessName"`
	Services      []PublicServiceResponse  `json:"services"`
	BusinessHours []PublicDayHoursResponse `json:"businessHours"`
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

// Handle GET /api/v1/public/{tenant}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	segment := mux.Vars(r)["tenant"]

	profile, err := h.service.GetPublicProfile(r.Context(), segment)
	if err != nil {
		switch {
		case errors.Is(err, tenants.ErrTenantNotFound):
			h.logger.Warn("GET /public/{tenant} - Tenant not found: segment=%s", segment)
			handlers.RespondNotFound(w, msgTenantNotFound)

		default:
			h.logger.Error("GET /public/{tenant} - Failed to get profile: segment=%s, error=%v", segment, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromProfile(profile))
}

func fromProfile(profile *tenants.PublicProfile) *PublicProfileResponse {
	resp := &PublicProfileResponse{
		BusinessName:  profile.BusinessName,
		Services:      make([]PublicServiceResponse, 0, len(profile.Services)),
		BusinessHours: make([]PublicDayHoursResponse, 0, len(profile.BusinessHours)),
	}

	for _, svc := range profile.Services {
		resp.Services = append(resp.Services, PublicServiceResponse{
			ID:              svc.ID,
			Name:            svc.Name,
			Description:     svc.Description,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
		})
	}

	for _, day := range profile.BusinessHours {
		dayResp := PublicDayHoursResponse{
			DayOfWeek: day.DayOfWeek,
			IsOpen:    day.IsOpen,
		}
		if day.OpenTime != nil {
			dayResp.OpenTime = day.OpenTime.String()
		}
		if day.CloseTime != nil {
			dayResp.CloseTime = day.CloseTime.String()
		}
		resp.BusinessHours = append(resp.BusinessHours, dayResp)
	}

	return resp
}
