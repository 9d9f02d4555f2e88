package types

import (
	"github.com/google/uuid"

	"github.com/bhojanbuddy/backend/internal/models"
)

// RegisterRequest carries a new account. Optional profile attributes may be
// omitted and stay NULL.
type RegisterRequest struct {
	Email         string       `json:"email" binding:"required,email"`
	FullName      string       `json:"full_name" binding:"required"`
	Password      string       `json:"password" binding:"required,min=6"`
	Age           *int         `json:"age"`
	Gender        *string      `json:"gender"`
	Height        *float64     `json:"height"`
	Weight        *float64     `json:"weight"`
	PreferredMode *models.Mode `json:"preferred_mode"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserPatch is a partial profile update. A nil field was absent from the
// request and leaves the stored value untouched.
type UserPatch struct {
	FullName      *string      `json:"full_name"`
	Email         *string      `json:"email"`
	Password      *string      `json:"password"`
	Age           *int         `json:"age"`
	Gender        *string      `json:"gender"`
	Height        *float64     `json:"height"`
	Weight        *float64     `json:"weight"`
	PreferredMode *models.Mode `json:"preferred_mode"`
}

// NewBMIRecord is a BMI submission. The bmi value and category are computed
// client-side and persisted as supplied.
type NewBMIRecord struct {
	UserID      uuid.UUID   `json:"user_id" binding:"required"`
	Height      float64     `json:"height" binding:"required"`
	Weight      float64     `json:"weight" binding:"required"`
	BMI         float64     `json:"bmi" binding:"required"`
	BMICategory string      `json:"bmi_category" binding:"required"`
	Mode        models.Mode `json:"mode"`
}

// NewFoodEntry is a food-log submission. Nutrition fields not supplied by
// the client stay nil and are persisted as NULL. The handler layer parses
// the multipart form into this struct.
type NewFoodEntry struct {
	UserID   uuid.UUID
	FoodName string
	Mode     models.Mode

	Calories     *float64
	Protein      *float64
	Carbs        *float64
	Fat          *float64
	SaturatedFat *float64
	Fiber        *float64
	Sugar        *float64
	Cholesterol  *float64
	Sodium       *float64
	Calcium      *float64
	Iron         *float64
}
