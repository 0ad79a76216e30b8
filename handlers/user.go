package handlers

import (
	"errors"
	"net/http"

	"wanderly/middleware"
	"wanderly/models"
	"wanderly/services/user"
	"wanderly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes accounts and travel profiles over HTTP.
type UserHandler struct {
	Service user.UserService
	Logger  *zap.Logger
}

// NewUserHandler returns a UserHandler.
func NewUserHandler(svc user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{Service: svc, Logger: logger}
}

// Register handles POST /api/auth/register.
func (h *UserHandler) Register(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	u, token, err := h.Service.Register(c.Request.Context(), input.Email, input.Name, input.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"user": u, "token": token})
	case errors.Is(err, user.ErrEmailTaken):
		utils.JSONError(c, http.StatusConflict, "Registration failed", err.Error())
	default:
		h.Logger.Error("Registration failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Registration failed", "unexpected error")
	}
}

// SignIn handles POST /api/auth/signin.
func (h *UserHandler) SignIn(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	u, token, err := h.Service.SignIn(c.Request.Context(), input.Email, input.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"user": u, "token": token})
	case errors.Is(err, user.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "Sign in failed", err.Error())
	default:
		h.Logger.Error("Sign in failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Sign in failed", "unexpected error")
	}
}

// GetMe handles GET /api/users/me.
func (h *UserHandler) GetMe(c *gin.Context) {
	u, err := h.Service.GetUserByID(c.Request.Context(), middleware.Actor(c))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, u)
	case errors.Is(err, user.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "User not found", err.Error())
	default:
		h.Logger.Error("Failed to load user", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load user", "unexpected error")
	}
}

// SaveProfile handles PUT /api/profile.
func (h *UserHandler) SaveProfile(c *gin.Context) {
	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	saved, err := h.Service.SaveProfile(c.Request.Context(), middleware.Actor(c), profile)
	if err != nil {
		h.Logger.Error("Failed to save profile", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save profile", "unexpected error")
		return
	}
	c.JSON(http.StatusOK, saved)
}

// GetProfile handles GET /api/profile/:userId.
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.Service.GetProfile(c.Request.Context(), c.Param("userId"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, profile)
	case errors.Is(err, user.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Profile not found", err.Error())
	default:
		h.Logger.Error("Failed to load profile", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load profile", "unexpected error")
	}
}
