package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bhojanbuddy/backend/internal/middleware"
	"github.com/bhojanbuddy/backend/internal/models"
	"github.com/bhojanbuddy/backend/internal/service"
	"github.com/bhojanbuddy/backend/internal/types"
)

// FoodHandler serves food-log creation and history.
type FoodHandler struct {
	food *service.FoodService
	auth middleware.TokenValidator
}

func NewFoodHandler(food *service.FoodService, auth middleware.TokenValidator) *FoodHandler {
	return &FoodHandler{
		food: food,
		auth: auth,
	}
}

func (h *FoodHandler) RegisterRoutes(router *gin.RouterGroup) {
	foods := router.Group("/foods")
	foods.Use(middleware.AuthMiddleware(h.auth))
	{
		foods.POST("/log", h.Log)
		foods.GET("/history/:user_id", h.History)
	}
}

// foodLogForm is the multipart form for a food-log submission. Nutrition
// fields left off the form bind to nil and are stored as NULL.
type foodLogForm struct {
	UserID   string `form:"user_id" binding:"required"`
	FoodName string `form:"food_name" binding:"required"`
	Mode     string `form:"mode"`

	Calories     *float64 `form:"calories"`
	Protein      *float64 `form:"protein"`
	Carbs        *float64 `form:"carbs"`
	Fat          *float64 `form:"fat"`
	SaturatedFat *float64 `form:"saturated_fat"`
	Fiber        *float64 `form:"fiber"`
	Sugar        *float64 `form:"sugar"`
	Cholesterol  *float64 `form:"cholesterol"`
	Sodium       *float64 `form:"sodium"`
	Calcium      *float64 `form:"calcium"`
	Iron         *float64 `form:"iron"`
}

func (h *FoodHandler) Log(c *gin.Context) {
	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var form foodLogForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := uuid.Parse(form.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	mode := models.Mode(form.Mode)
	if form.Mode != "" && !mode.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be beast or swasthya"})
		return
	}

	req := types.NewFoodEntry{
		UserID:       userID,
		FoodName:     form.FoodName,
		Mode:         mode,
		Calories:     form.Calories,
		Protein:      form.Protein,
		Carbs:        form.Carbs,
		Fat:          form.Fat,
		SaturatedFat: form.SaturatedFat,
		Fiber:        form.Fiber,
		Sugar:        form.Sugar,
		Cholesterol:  form.Cholesterol,
		Sodium:       form.Sodium,
		Calcium:      form.Calcium,
		Iron:         form.Iron,
	}

	var upload *service.ImageUpload
	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed image upload"})
			return
		}
		defer file.Close()
		upload = &service.ImageUpload{
			Filename: fileHeader.Filename,
			Reader:   file,
		}
	}

	entry, err := h.food.Log(c.Request.Context(), callerID, &req, upload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *FoodHandler) History(c *gin.Context) {
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

	entries, err := h.food.History(c.Request.Context(), callerID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
