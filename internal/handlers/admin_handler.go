package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/berberbook/booking-api/internal/audit"
	domain "github.com/berberbook/booking-api/internal/domain/appointment"
	"github.com/berberbook/booking-api/internal/httperr"
	"github.com/berberbook/booking-api/internal/httpresp"
	"github.com/berberbook/booking-api/internal/middleware"
	"github.com/berberbook/booking-api/internal/models"
)

// AdminHandler manages the barber roster. All routes are admin-gated.
type AdminHandler struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAdminHandler(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AdminHandler {
	return &AdminHandler{
		repo:  repo,
		audit: audit,
	}
}

// --------- Requests ---------

type AddBarberRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *AdminHandler) AddBarber(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req AddBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process password.")
		return
	}

	barber := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hashed),
		Role:         models.RoleBarber,
	}

	// Same uniqueness rule as self-registration.
	if err := h.repo.CreateUser(c.Request.Context(), &barber); err != nil {
		if httperr.IsBusiness(err, "duplicate_email") {
			httperr.Conflict(c, "duplicate_email", "A user with this email already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_barber", "Could not create barber.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &adminID,
		Action:   "barber_added",
		Entity:   "user",
		EntityID: &barber.ID,
	})

	c.JSON(http.StatusCreated, gin.H{"user": userJSON(&barber)})
}

func (h *AdminHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.repo.ListUsersByRole(c.Request.Context(), models.RoleBarber)
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not list barbers.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *AdminHandler) DeleteBarber(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Barber id must be numeric.")
		return
	}
	barberID := uint(id)

	user, err := h.repo.GetUserByID(c.Request.Context(), barberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "barber_not_found", "Barber not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_barber", "Could not load barber.")
		return
	}

	if user.Role != models.RoleBarber {
		httperr.BadRequest(c, "invalid_target", "Only barbers can be deleted.")
		return
	}

	if err := h.repo.DeleteBarberCascade(c.Request.Context(), barberID); err != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Could not delete barber.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &adminID,
		Action:   "barber_deleted",
		Entity:   "user",
		EntityID: &barberID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
