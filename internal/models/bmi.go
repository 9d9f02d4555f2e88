package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BMIRecord is a single BMI measurement. Records are immutable once created;
// there is no update or delete path. The BMI value and category arrive
// pre-computed from the client and are stored as supplied.
type BMIRecord struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID      uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Height      float64   `json:"height"` // cm
	Weight      float64   `json:"weight"` // kg
	BMI         float64   `json:"bmi"`
	BMICategory string    `json:"bmi_category"`
	Mode        Mode      `gorm:"type:varchar(16);default:'swasthya'" json:"mode"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r *BMIRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
