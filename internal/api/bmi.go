package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bhojanbuddy/backend/internal/middleware"
	"github.com/bhojanbuddy/backend/internal/service"
	"github.com/bhojanbuddy/backend/internal/types"
)

// BMIHandler serves BMI record creation and history.
type BMIHandler struct {
	bmi  *service.BMIService
	auth middleware.TokenValidator
}

func NewBMIHandler(bmi *service.BMIService, auth middleware.TokenValidator) *BMIHandler {
	return &BMIHandler{
		bmi:  bmi,
		auth: auth,
	}
}

func (h *BMIHandler) RegisterRoutes(router *gin.RouterGroup) {
	bmi := router.Group("/bmi")
	bmi.Use(middleware.AuthMiddleware(h.auth))
	{
		bmi.POST("", h.Create)
		bmi.GET("/:user_id", h.History)
	}
}

func (h *BMIHandler) Create(c *gin.Context) {
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req types.NewBMIRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Mode != "" && !req.Mode.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be beast or swasthya"})
		return
	}

	record, err := h.bmi.Create(c.Request.Context(), callerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (h *BMIHandler) History(c *gin.Context) {
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	records, err := h.bmi.History(c.Request.Context(), callerID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}
