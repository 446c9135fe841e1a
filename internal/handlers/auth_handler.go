package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/berberbook/booking-api/internal/audit"
	domain "github.com/berberbook/booking-api/internal/domain/appointment"
	"github.com/berberbook/booking-api/internal/httperr"
	"github.com/berberbook/booking-api/internal/middleware"
	"github.com/berberbook/booking-api/internal/models"
	"github.com/berberbook/booking-api/internal/session"
)

type AuthHandler struct {
	repo     domain.Repository
	sessions *session.Manager
	audit    *audit.Dispatcher
}

func NewAuthHandler(
	repo domain.Repository,
	sessions *session.Manager,
	audit *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{
		repo:     repo,
		sessions: sessions,
		audit:    audit,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Register creates a customer account. It never authenticates the new user;
// the client logs in afterwards.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process password.")
		return
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hashed),
		Role:         models.RoleCustomer,
	}

	if err := h.repo.CreateUser(c.Request.Context(), &user); err != nil {
		if httperr.IsBusiness(err, "duplicate_email") {
			httperr.Conflict(c, "duplicate_email", "A user with this email already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Could not create account.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &user.ID,
		Action:   "customer_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"user": userJSON(&user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, err := h.repo.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same answer as a wrong password; no email oracle.
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not log in.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	token, err := h.sessions.Issue(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not log in.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userJSON(user),
		"token": token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	claims := c.MustGet(middleware.ContextClaims).(*session.Claims)

	if err := h.sessions.Revoke(c.Request.Context(), claims); err != nil {
		httperr.Internal(c, "failed_to_logout", "Could not destroy session.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

func userJSON(user *models.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"email":      user.Email,
		"role":       user.Role,
	}
}
