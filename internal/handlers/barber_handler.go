package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/berberbook/booking-api/internal/domain/appointment"
	"github.com/berberbook/booking-api/internal/httperr"
	"github.com/berberbook/booking-api/internal/httpresp"
	"github.com/berberbook/booking-api/internal/models"
)

// BarberHandler is the browse surface customers use when picking a barber
// and a service to book.
type BarberHandler struct {
	repo domain.Repository
}

func NewBarberHandler(repo domain.Repository) *BarberHandler {
	return &BarberHandler{repo: repo}
}

func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.repo.ListUsersByRole(c.Request.Context(), models.RoleBarber)
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not list barbers.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Services(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Barber id must be numeric.")
		return
	}

	services, err := h.repo.ListServicesForBarber(c.Request.Context(), uint(id))
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}
