package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodEntry is one logged food item. Every nutrition field is independently
// nullable: a field not supplied at log time stays NULL and serializes as
// null, never as zero. Entries are immutable once created.
type FoodEntry struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	FoodName  string    `gorm:"not null" json:"food_name"`
	Mode      Mode      `gorm:"type:varchar(16);default:'swasthya'" json:"mode"`
	ImagePath *string   `json:"image_path"`

	Calories *float64 `json:"calories"` // kcal
	Protein  *float64 `json:"protein"`  // g
	Carbs    *float64 `json:"carbs"`    // g
	Fat      *float64 `json:"fat"`      // g

	SaturatedFat *float64 `json:"saturated_fat"` // g
	Fiber        *float64 `json:"fiber"`         // g
	Sugar        *float64 `json:"sugar"`         // g
	Cholesterol  *float64 `json:"cholesterol"`   // mg
	Sodium       *float64 `json:"sodium"`        // mg
	Calcium      *float64 `json:"calcium"`       // mg
	Iron         *float64 `json:"iron"`          // mg

	CreatedAt time.Time `json:"created_at"`
}

func (e *FoodEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
