package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/berberbook/booking-api/internal/audit"
	domain "github.com/berberbook/booking-api/internal/domain/appointment"
	"github.com/berberbook/booking-api/internal/httperr"
	"github.com/berberbook/booking-api/internal/httpresp"
	"github.com/berberbook/booking-api/internal/middleware"
	"github.com/berberbook/booking-api/internal/models"
)

// ServiceHandler maintains a barber's priced service catalog.
type ServiceHandler struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewServiceHandler(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ServiceHandler {
	return &ServiceHandler{
		repo:  repo,
		audit: audit,
	}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"gte=0"`
	DurationMin int     `json:"duration_min" binding:"required,min=1"`
}

type UpdateServicePriceRequest struct {
	NewPrice *float64 `json:"new_price" binding:"required,gte=0"`
}

// --------- Handlers ---------

func (h *ServiceHandler) Create(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	svc := models.Service{
		BarberID:    barberID,
		Name:        req.Name,
		Price:       req.Price,
		DurationMin: req.DurationMin,
	}

	if err := h.repo.CreateService(c.Request.Context(), &svc); err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &barberID,
		Action:   "service_added",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) ListMine(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	services, err := h.repo.ListServicesForBarber(c.Request.Context(), barberID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) UpdatePrice(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Service id must be numeric.")
		return
	}

	svc, err := h.repo.GetServiceByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Could not load service.")
		return
	}

	// Only the owning barber may reprice.
	if svc.BarberID != barberID {
		httperr.Forbidden(c, "forbidden", "You do not own this service.")
		return
	}

	var req UpdateServicePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	svc.Price = *req.NewPrice

	if err := h.repo.UpdateService(c.Request.Context(), svc); err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &barberID,
		Action:   "service_price_updated",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	httpresp.OK(c, svc)
}
