package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/berberbook/booking-api/internal/httperr"
	"github.com/berberbook/booking-api/internal/httpresp"
	"github.com/berberbook/booking-api/internal/middleware"
	"github.com/berberbook/booking-api/internal/models"
	ucAppointment "github.com/berberbook/booking-api/internal/usecase/appointment"
)

type AppointmentHandler struct {
	createUC   *ucAppointment.CreateAppointment
	cancelUC   *ucAppointment.CancelAppointment
	completeUC *ucAppointment.CompleteAppointment
	listUC     *ucAppointment.ListMyAppointments
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	listUC *ucAppointment.ListMyAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:   createUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
		listUC:     listUC,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	BarberID        uint   `json:"barber_id" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required"`
	ServiceType     string `json:"service_type" binding:"required"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		CustomerID:  customerID,
		BarberID:    req.BarberID,
		Date:        req.AppointmentDate,
		ServiceType: req.ServiceType,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Appointment id must be numeric.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), customerID, uint(id))
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Appointment id must be numeric.")
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), barberID, uint(id))
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(models.Role)

	aps, err := h.listUC.Execute(c.Request.Context(), userID, role)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.List(c, aps)
}

// writeAppointmentError maps lifecycle business errors onto HTTP outcomes.
func writeAppointmentError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "appointment_not_found":
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
	case "barber_not_found":
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
	case "forbidden":
		httperr.Forbidden(c, "forbidden", "You do not own this appointment.")
	case "invalid_state":
		httperr.BadRequest(c, "invalid_state", "Appointment is no longer pending.")
	case "invalid_date":
		httperr.BadRequest(c, "invalid_date", "Date must match "+ucAppointment.DateTimeLayout+".")
	default:
		httperr.Internal(c, "appointment_error", "Could not process appointment.")
	}
}
