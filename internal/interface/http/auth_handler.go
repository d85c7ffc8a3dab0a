package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/procrm-api/internal/application"
	repo "github.com/oksasatya/procrm-api/internal/domain/repository"
	"github.com/oksasatya/procrm-api/internal/interface/middleware"
	"github.com/oksasatya/procrm-api/pkg/response"
	"github.com/oksasatya/procrm-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrDetails(c, http.StatusBadRequest, "Invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Err(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"user":      res.User,
		"token":     res.Token,
		"expiresAt": res.ExpiresAt,
	})
}

// Signup POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrDetails(c, http.StatusBadRequest, "Missing required fields", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Signup(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, repo.ErrEmailTaken) {
			response.Err(c, http.StatusBadRequest, "Email already registered")
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("signup failed")
		}
		response.Err(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"user":      res.User,
		"token":     res.Token,
		"expiresAt": res.ExpiresAt,
	})
}

// Me GET /api/auth/me (protected)
func (h *AuthHandler) Me(c *gin.Context) {
	email := c.GetString(middleware.CtxUserEmailKey)
	user, err := h.Svc.Profile(email)
	if err != nil {
		response.Err(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	response.OK(c, http.StatusOK, gin.H{"user": user})
}
