package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bhojanbuddy/backend/internal/service"
)

// FeedbackHandler records user corrections to classification results. No
// authentication is required.
type FeedbackHandler struct {
	log *service.FeedbackLog
}

func NewFeedbackHandler(log *service.FeedbackLog) *FeedbackHandler {
	return &FeedbackHandler{log: log}
}

func (h *FeedbackHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/feedback", h.Create)
	router.GET("/feedback", h.Usage)
}

// feedbackRequest binds every field as a pointer so a missing field can be
// told apart from a zero value and named in the error.
type feedbackRequest struct {
	ImageName      *string  `json:"image_name"`
	CorrectLabel   *string  `json:"correct_label"`
	PredictedLabel *string  `json:"predicted_label"`
	Confidence     *float64 `json:"confidence"`
}

func (r *feedbackRequest) missingFields() []string {
	var missing []string
	if r.ImageName == nil {
		missing = append(missing, "image_name")
	}
	if r.CorrectLabel == nil {
		missing = append(missing, "correct_label")
	}
	if r.PredictedLabel == nil {
		missing = append(missing, "predicted_label")
	}
	if r.Confidence == nil {
		missing = append(missing, "confidence")
	}
	return missing
}

func (h *FeedbackHandler) Create(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if missing := req.missingFields(); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "missing required fields: " + strings.Join(missing, ", "),
		})
		return
	}

	record := service.FeedbackRecord{
		ImageName:      *req.ImageName,
		CorrectLabel:   *req.CorrectLabel,
		PredictedLabel: *req.PredictedLabel,
		Confidence:     *req.Confidence,
	}
	if err := h.log.Append(c.Request.Context(), record); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feedback recorded."})
}

// Usage answers GET probes with instructions instead of a 405.
func (h *FeedbackHandler) Usage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "This endpoint requires a POST request with JSON data",
		"usage": gin.H{
			"method":       "POST",
			"content-type": "application/json",
			"json_body": gin.H{
				"image_name":      "Name of the image file",
				"correct_label":   "The correct food label",
				"predicted_label": "The label predicted by the model",
				"confidence":      "The confidence score of the prediction",
			},
		},
	})
}
