package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/detailing-scheduler/internal/httperr"
	"github.com/BruksfildServices01/detailing-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/detailing-scheduler/internal/middleware"
	"github.com/BruksfildServices01/detailing-scheduler/internal/models"
	"github.com/BruksfildServices01/detailing-scheduler/internal/usecase/auth"
)

type Authenticator interface {
	Login(ctx context.Context, username, password string) (*auth.LoginResult, error)
}

type UserFinder interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
}

type AuthHandler struct {
	auth  Authenticator
	users UserFinder
}

func NewAuthHandler(auth Authenticator, users UserFinder) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, "Username and password are required.", err)
		return
	}

	res, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err, "internal_error", "Login failed.")
		return
	}

	httpresp.OK(c, gin.H{
		"token":     res.Token,
		"expiresAt": res.ExpiresAt.UTC().Format(time.RFC3339),
		"user":      res.User,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := c.MustGet(middleware.ContextUserID).(uint)
	if !ok {
		httperr.Unauthorized(c, "invalid_user_id_type", "Invalid session.")
		return
	}

	u, err := h.users.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		httperr.Internal(c, "internal_error", "Failed to load user.")
		return
	}

	httpresp.OK(c, u)
}
