package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bhojanbuddy/backend/internal/middleware"
	"github.com/bhojanbuddy/backend/internal/service"
	"github.com/bhojanbuddy/backend/internal/types"
)

// UserHandler serves profile reads and the partial profile update.
type UserHandler struct {
	users *service.UserService
	auth  middleware.TokenValidator
}

func NewUserHandler(users *service.UserService, auth middleware.TokenValidator) *UserHandler {
	return &UserHandler{
		users: users,
		auth:  auth,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	users.Use(middleware.AuthMiddleware(h.auth))
	{
		users.GET("/me", h.Me)
		users.PUT("/me", h.UpdateMe)
		users.GET("/:id", h.Get)
	}
}

func (h *UserHandler) Me(c *gin.Context) {
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.users.Get(c.Request.Context(), callerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Get looks up any profile by id. This is the one read endpoint without an
// ownership guard.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var patch types.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if patch.PreferredMode != nil && !patch.PreferredMode.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "preferred_mode must be beast or swasthya"})
		return
	}

	user, err := h.users.Update(c.Request.Context(), callerID, &patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
