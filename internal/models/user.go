package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Mode selects the tracking regime a user or record belongs to. It affects
// nothing beyond storage and display.
type Mode string

const (
	ModeBeast    Mode = "beast"
	ModeSwasthya Mode = "swasthya"
)

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m == ModeBeast || m == ModeSwasthya
}

type User struct {
	ID            uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	FullName      string         `gorm:"not null" json:"full_name"`
	Email         string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string         `gorm:"not null" json:"-"`
	Age           *int           `json:"age"`
	Gender        *string        `json:"gender"`
	Height        *float64       `json:"height"`
	Weight        *float64       `json:"weight"`
	PreferredMode Mode           `gorm:"type:varchar(16);default:'swasthya'" json:"preferred_mode"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
