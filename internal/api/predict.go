package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bhojanbuddy/backend/internal/middleware"
	"github.com/bhojanbuddy/backend/internal/service"
)

// PredictHandler serves the classification-confidence flow. The endpoint is
// unauthenticated, so the optional rate limiter is keyed by client IP.
type PredictHandler struct {
	predict *service.PredictService
	limiter *middleware.RateLimiter
}

func NewPredictHandler(predict *service.PredictService, limiter *middleware.RateLimiter) *PredictHandler {
	return &PredictHandler{
		predict: predict,
		limiter: limiter,
	}
}

func (h *PredictHandler) RegisterRoutes(router *gin.RouterGroup) {
	if h.limiter != nil {
		router.POST("/predict", h.limiter.ByClientIP(), h.Predict)
	} else {
		router.POST("/predict", h.Predict)
	}
	router.GET("/predict", h.Usage)
}

func (h *PredictHandler) Predict(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no image uploaded"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed image upload"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed image upload"})
		return
	}

	result, err := h.predict.Predict(c.Request.Context(), fileHeader.Filename, image)
	if err != nil {
		respondError(c, err)
		return
	}

	if result.Status == service.StatusUncertain {
		c.JSON(http.StatusOK, gin.H{
			"status":  result.Status,
			"options": result.Options,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          result.Status,
		"predicted_label": result.PredictedLabel,
		"confidence":      result.Confidence,
		"nutrition":       result.Nutrition,
	})
}

// Usage answers GET probes with instructions instead of a 405.
func (h *PredictHandler) Usage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "This endpoint requires a POST request with an image file",
		"usage": gin.H{
			"method":       "POST",
			"content-type": "multipart/form-data",
			"form-data": gin.H{
				"image": "(file) - The food image to analyze",
			},
		},
	})
}
