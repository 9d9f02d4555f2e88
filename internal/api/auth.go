package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bhojanbuddy/backend/internal/middleware"
	"github.com/bhojanbuddy/backend/internal/service"
	"github.com/bhojanbuddy/backend/internal/types"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	auth    *service.AuthService
	limiter *middleware.RateLimiter
}

func NewAuthHandler(auth *service.AuthService, limiter *middleware.RateLimiter) *AuthHandler {
	return &AuthHandler{
		auth:    auth,
		limiter: limiter,
	}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	if h.limiter != nil {
		auth.Use(h.limiter.ByClientIP())
	}
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

// TokenResponse is returned on successful registration or login.
type TokenResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.PreferredMode != nil && !req.PreferredMode.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "preferred_mode must be beast or swasthya"})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.auth.GenerateToken(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, TokenResponse{
		Token:  token,
		UserID: user.ID.String(),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.auth.GenerateToken(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		Token:  token,
		UserID: user.ID.String(),
	})
}
