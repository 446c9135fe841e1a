package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/berberbook/booking-api/internal/domain/appointment"
	"github.com/berberbook/booking-api/internal/httperr"
	"github.com/berberbook/booking-api/internal/middleware"
	"github.com/berberbook/booking-api/internal/models"
)

type MeHandler struct {
	repo domain.Repository
}

func NewMeHandler(repo domain.Repository) *MeHandler {
	return &MeHandler{repo: repo}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	user, err := h.repo.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userJSON(user)})
}

// Dashboard routes the session to its role's landing view.
func (h *MeHandler) Dashboard(c *gin.Context) {
	role := c.MustGet(middleware.ContextUserRole).(models.Role)

	var view string
	switch role {
	case models.RoleBarber:
		view = "schedule"
	case models.RoleCustomer:
		view = "booking"
	case models.RoleAdmin:
		view = "roster"
	default:
		httperr.Forbidden(c, "forbidden", "Unrecognized role.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"role": role,
		"view": view,
	})
}
