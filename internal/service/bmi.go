package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bhojanbuddy/backend/internal/models"
	"github.com/bhojanbuddy/backend/internal/types"
)

// BMIService persists BMI submissions and serves per-user history. Records
// are owned by exactly one user and immutable once written.
type BMIService struct {
	db *gorm.DB
}

func NewBMIService(db *gorm.DB) *BMIService {
	return &BMIService{db: db}
}

// Create stores a BMI record for the caller. The submitted user_id must be
// the caller's own id; the check runs before anything is persisted. The bmi
// value and category are stored as supplied, without recomputation.
func (s *BMIService) Create(ctx context.Context, callerID uuid.UUID, req *types.NewBMIRecord) (*models.BMIRecord, error) {
	if req.UserID != callerID {
		return nil, ErrForbidden
	}

	record := models.BMIRecord{
		UserID:      req.UserID,
		Height:      req.Height,
		Weight:      req.Weight,
		BMI:         req.BMI,
		BMICategory: req.BMICategory,
		Mode:        models.ModeSwasthya,
	}
	if req.Mode != "" {
		record.Mode = req.Mode
	}

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

// History returns the caller's records, newest first.
func (s *BMIService) History(ctx context.Context, callerID, userID uuid.UUID) ([]models.BMIRecord, error) {
	if userID != callerID {
		return nil, ErrForbidden
	}

	var records []models.BMIRecord
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}
