package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bhojanbuddy/backend/internal/models"
	"github.com/bhojanbuddy/backend/internal/types"
)

// ImageUpload is an attached image as received from the client.
type ImageUpload struct {
	Filename string
	Reader   io.Reader
}

// FoodService persists food-log entries and serves per-user history.
type FoodService struct {
	db     *gorm.DB
	images ImageStore
}

func NewFoodService(db *gorm.DB, images ImageStore) *FoodService {
	return &FoodService{db: db, images: images}
}

// Log creates a food entry for the caller. The submitted user_id must match
// the caller; the check runs before the image is persisted or the entry
// written. An attached image is saved first under
// {user_id}_{timestamp}_{original filename}; if entry creation fails
// afterwards the file is left behind rather than rolled back.
func (s *FoodService) Log(ctx context.Context, callerID uuid.UUID, req *types.NewFoodEntry, image *ImageUpload) (*models.FoodEntry, error) {
	if req.UserID != callerID {
		return nil, ErrForbidden
	}

	var imagePath *string
	if image != nil {
		name := fmt.Sprintf("%s_%s_%s",
			req.UserID,
			time.Now().Format("20060102_150405"),
			filepath.Base(image.Filename),
		)
		path, err := s.images.Save(ctx, name, image.Reader)
		if err != nil {
			return nil, fmt.Errorf("failed to save image: %w", err)
		}
		imagePath = &path
	}

	entry := models.FoodEntry{
		UserID:       req.UserID,
		FoodName:     req.FoodName,
		Mode:         models.ModeSwasthya,
		ImagePath:    imagePath,
		Calories:     req.Calories,
		Protein:      req.Protein,
		Carbs:        req.Carbs,
		Fat:          req.Fat,
		SaturatedFat: req.SaturatedFat,
		Fiber:        req.Fiber,
		Sugar:        req.Sugar,
		Cholesterol:  req.Cholesterol,
		Sodium:       req.Sodium,
		Calcium:      req.Calcium,
		Iron:         req.Iron,
	}
	if req.Mode != "" {
		entry.Mode = req.Mode
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}

	return &entry, nil
}

// History returns the caller's entries, newest first.
func (s *FoodService) History(ctx context.Context, callerID, userID uuid.UUID) ([]models.FoodEntry, error) {
	if userID != callerID {
		return nil, ErrForbidden
	}

	var entries []models.FoodEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}
